package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

func (v Validation) Error() string {
	return "config validation failed:\n- " + strings.Join(v.Errors, "\n- ")
}

// NormalizeAndValidate trims string fields and reports problems.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.Host = strings.TrimSpace(out.App.Host)
	out.Source.URL = strings.TrimSpace(out.Source.URL)
	out.Source.UserAgent = strings.TrimSpace(out.Source.UserAgent)
	out.Board.Title = strings.TrimSpace(out.Board.Title)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.App.Host == "" {
		res.addWarn("app.host is empty; the board will listen on all interfaces.")
	}

	// source sanity
	if out.Source.URL == "" {
		res.addErr("source.url is required")
	} else if u, err := url.Parse(out.Source.URL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		res.addErr("source.url must be an absolute http(s) URL: %q", out.Source.URL)
	} else if u.Scheme == "http" {
		res.addWarn("source.url uses plain http.")
	}
	if out.Source.TimeoutSeconds < 0 {
		res.addErr("source.timeout_seconds must be >= 0")
	} else if out.Source.TimeoutSeconds == 0 {
		res.addWarn("source.timeout_seconds is 0; the initial fetch may wait forever.")
	}
	if out.Source.MaxBytes < 0 {
		res.addErr("source.max_bytes must be >= 0")
	}
	if out.Source.RequestsPerSecond < 0 {
		res.addErr("source.requests_per_second must be >= 0")
	}

	if out.Board.Title == "" {
		res.addWarn("board.title is empty; using the default title.")
		out.Board.Title = Default().Board.Title
	}

	return out, res
}

// Validate returns a non-nil error when cfg has errors.
func Validate(cfg Config) error {
	if _, vr := NormalizeAndValidate(cfg); !vr.OK() {
		return vr
	}
	return nil
}
