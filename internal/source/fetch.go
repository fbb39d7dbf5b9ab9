// Package source fetches the published job sheet over HTTP.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

const defaultMaxBytes = 8 << 20

// StatusError is returned when the sheet URL answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// ErrTooLarge is returned when the body exceeds Config.MaxBytes.
var ErrTooLarge = errors.New("source: response body too large")

type Config struct {
	UserAgent string
	Timeout   time.Duration // 0 means no client timeout
	MaxBytes  int64
}

// Client performs the single GET of the CSV export.
type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *HostLimiter
}

func New(cfg Config, limiter *HostLimiter) *Client {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if limiter == nil {
		limiter = NewHostLimiter(0, 1)
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

// WithHTTPClient swaps the underlying client (tests use httptest servers).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.hc = hc
	return c
}

// FetchCSV returns the body of url as text. Content-Type is not checked.
func (c *Client) FetchCSV(ctx context.Context, url string) (string, error) {
	if err := c.limiter.WaitURL(ctx, url); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("source: build request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		log.Printf("[source] fetch error url=%s err=%v", url, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[source] non-2xx url=%s status=%s", url, resp.Status)
		return "", &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("source: read body: %w", err)
	}
	if int64(len(b)) > c.cfg.MaxBytes {
		return "", ErrTooLarge
	}

	log.Printf("[source] fetched url=%s size=%s dur_ms=%d",
		url, humanize.Bytes(uint64(len(b))), time.Since(start).Milliseconds())
	return string(b), nil
}
