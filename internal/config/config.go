package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDataDir   = "PILIBHITJOB_DATA_DIR"
	EnvSourceURL = "PILIBHITJOB_SOURCE_URL"
	EnvPort      = "PILIBHITJOB_PORT"
)

type Config struct {
	App struct {
		Host string `yaml:"host" json:"host"`
		Port int    `yaml:"port" json:"port"`
	} `yaml:"app" json:"app"`

	Source struct {
		URL               string  `yaml:"url" json:"url"`
		TimeoutSeconds    int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		UserAgent         string  `yaml:"user_agent" json:"user_agent"`
		MaxBytes          int64   `yaml:"max_bytes" json:"max_bytes"`
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	} `yaml:"source" json:"source"`

	Board struct {
		Title    string `yaml:"title" json:"title"`
		Guidance string `yaml:"guidance" json:"guidance"`
	} `yaml:"board" json:"board"`
}

// Default is used when neither the data dir nor the repo ships a config.yml.
func Default() Config {
	var cfg Config
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 38471
	cfg.Source.TimeoutSeconds = 30
	cfg.Source.UserAgent = "PilibhitJob/1.0 (+board)"
	cfg.Source.MaxBytes = 8 << 20
	cfg.Source.RequestsPerSecond = 1
	cfg.Board.Title = "Pilibhit Jobs"
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// ApplyEnv overrides file values with PILIBHITJOB_* variables.
func ApplyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv(EnvSourceURL)); v != "" {
		cfg.Source.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	return cfg
}

// Addr is the listen address.
func (c Config) Addr() string {
	return c.App.Host + ":" + strconv.Itoa(c.App.Port)
}

// Timeout is the fetch timeout; zero means wait indefinitely.
func (c Config) Timeout() time.Duration {
	if c.Source.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}
