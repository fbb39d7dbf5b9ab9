// Package scheduler runs a task on a fixed interval until its context ends.
package scheduler

import (
	"context"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task each interval. Errors are logged under name and do not stop
// the loop. It blocks until ctx is done.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	if interval <= 0 {
		log.Printf("[%s] disabled (interval=%s)", name, interval)
		<-ctx.Done()
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := task(ctx); err != nil {
				log.Printf("[%s] error: %v", name, err)
			}
		}
	}
}
