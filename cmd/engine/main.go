package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/config"
	"github.com/pilibhitjob/PilibhitJob/internal/events"
	"github.com/pilibhitjob/PilibhitJob/internal/httpapi"
	"github.com/pilibhitjob/PilibhitJob/internal/scheduler"
	"github.com/pilibhitjob/PilibhitJob/internal/source"
)

const heartbeatInterval = 25 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using process environment")
	}

	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running with data dir %s", dataDir)
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(dataDir, config.ShippedPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(config.ApplyEnv(cfg))
	for _, w := range vr.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !vr.OK() {
		log.Fatalf("%s (%s)", vr.Error(), userCfgPath)
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	fetcher := source.New(source.Config{
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Timeout(),
		MaxBytes:  cfg.Source.MaxBytes,
	}, source.NewHostLimiter(cfg.Source.RequestsPerSecond, 1))

	var opts []board.Option
	if cfg.Board.Guidance != "" {
		opts = append(opts, board.WithGuidance(cfg.Board.Guidance))
	}
	ctrl := board.New(fetcher, cfg.Source.URL, opts...)

	hub := events.NewHub()
	ctrl.Subscribe(events.BoardObserver(hub))

	mux := httpapi.NewMux(httpapi.Deps{
		Board:       ctrl,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		StaticDir:   "web",
	})

	token, err := randomToken(32)
	if err != nil {
		log.Fatal(err)
	}
	tokenPath := filepath.Join(dataDir, "shutdown.token")
	if err := os.WriteFile(tokenPath, []byte(token), 0o600); err != nil {
		log.Fatalf("write shutdown token: %v", err)
	}
	defer os.Remove(tokenPath)

	srv := &http.Server{
		Handler:           httpapi.NewHandler(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (config=%s)", ln.Addr(), userCfgPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// /shutdown closes the server directly; stop unblocks the watcher below.
		defer stop()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// A failed load is a board state, not a process failure.
		_ = ctrl.Load(gctx)
		return nil
	})
	g.Go(func() error {
		scheduler.Every(gctx, heartbeatInterval, "heartbeat", events.Heartbeat(hub, ctrl.Current))
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("engine stopped: %v", err)
		return
	}
	log.Printf("engine stopped")
}
