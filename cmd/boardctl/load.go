package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pilibhitjob/PilibhitJob/internal/config"
	"github.com/pilibhitjob/PilibhitJob/internal/domain"
	"github.com/pilibhitjob/PilibhitJob/internal/sheet"
	"github.com/pilibhitjob/PilibhitJob/internal/source"
)

// path is the file boardctl reads and writes: --config, else the same
// data-dir config.yml the engine serves from.
func (o *rootOptions) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.UserPath(config.DataDir())
}

// readConfig loads the config file. A missing engine config falls back to the
// shipped one, and a missing file otherwise falls back to defaults.
func readConfig(opts *rootOptions) (config.Config, string, error) {
	path := opts.path()
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) && opts.configPath == "" {
		path = config.ShippedPath
		cfg, err = config.Load(path)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, path, fmt.Errorf("load %s: %w", path, err)
	}
	return config.ApplyEnv(cfg), path, nil
}

// loadConfig returns the validated config for a fetch; --url alone is enough.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, _, err := readConfig(opts)
	if err != nil {
		return cfg, err
	}
	if opts.url != "" {
		cfg.Source.URL = opts.url
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	if !vr.OK() {
		return cfg, vr
	}
	return cfg, nil
}

func fetchJobs(ctx context.Context, cfg config.Config) ([]domain.JobRecord, error) {
	client := source.New(source.Config{
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Timeout(),
		MaxBytes:  cfg.Source.MaxBytes,
	}, source.NewHostLimiter(cfg.Source.RequestsPerSecond, 1))

	raw, err := client.FetchCSV(ctx, cfg.Source.URL)
	if err != nil {
		return nil, err
	}
	return sheet.Load(raw), nil
}
