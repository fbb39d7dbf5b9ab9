package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pilibhitjob/PilibhitJob/internal/source"
)

func TestFetchCSV_OK(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("Job Title\nDev\n"))
	}))
	defer srv.Close()

	c := source.New(source.Config{UserAgent: "board-test"}, nil)
	body, err := c.FetchCSV(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchCSV: %v", err)
	}
	if body != "Job Title\nDev\n" {
		t.Errorf("body = %q", body)
	}
	if gotUA != "board-test" {
		t.Errorf("User-Agent = %q, want board-test", gotUA)
	}
}

func TestFetchCSV_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := source.New(source.Config{}, nil).FetchCSV(context.Background(), srv.URL)
	var se *source.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", se.StatusCode)
	}
	if err.Error() != "HTTP error! status: 404" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestFetchCSV_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	_, err := source.New(source.Config{MaxBytes: 16}, nil).FetchCSV(context.Background(), srv.URL)
	if !errors.Is(err, source.ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestFetchCSV_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := source.New(source.Config{}, nil).FetchCSV(ctx, srv.URL); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}

func TestHostLimiter_Unlimited(t *testing.T) {
	hl := source.NewHostLimiter(0, 0)
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		if err := hl.WaitURL(ctx, "https://docs.google.com/x"); err != nil {
			t.Fatalf("WaitURL: %v", err)
		}
	}
}

func TestHostLimiter_RespectsContext(t *testing.T) {
	hl := source.NewHostLimiter(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := hl.WaitURL(ctx, "https://docs.google.com/a"); err != nil {
		t.Fatalf("first WaitURL: %v", err)
	}
	if err := hl.WaitURL(ctx, "https://docs.google.com/b"); err == nil {
		t.Fatal("second WaitURL should fail before the next token")
	}
	if err := hl.WaitURL(context.Background(), "https://other.example/"); err != nil {
		t.Fatalf("other host WaitURL: %v", err)
	}
}
