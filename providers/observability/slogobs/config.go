package slogobs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by [New] before options are applied.
const (
	EnvLogLevel  = "CALC_LOG_LEVEL"
	EnvLogFormat = "CALC_LOG_FORMAT"
)

// Format selects how records are written.
type Format string

const (
	// FormatCompact writes one line per record with the attributes as a
	// sorted JSON object:
	//
	//	2026-10-19 10:40:35 DEBUG Span ended -> {"calculator.call":"add(1, 2) = 3",...}
	FormatCompact Format = "compact"

	// FormatPretty writes a header line and one indented line per attribute.
	FormatPretty Format = "pretty"

	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// Option overrides a setting taken from the environment.
type Option func(*config)

type config struct {
	format Format
	level  slog.Level
	output io.Writer
	// problems collects unusable environment values; New logs them once the
	// handler exists.
	problems []string
}

func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput redirects records away from stdout.
func WithOutput(output io.Writer) Option {
	return func(c *config) {
		c.output = output
	}
}

// loadConfig starts from compact/INFO/stdout, applies CALC_LOG_FORMAT and
// CALC_LOG_LEVEL, then opts.
func loadConfig(opts ...Option) *config {
	cfg := &config{
		format: FormatCompact,
		level:  slog.LevelInfo,
		output: os.Stdout,
	}

	if raw := os.Getenv(EnvLogFormat); raw != "" {
		if format, ok := parseFormat(raw); ok {
			cfg.format = format
		} else {
			cfg.problems = append(cfg.problems, fmt.Sprintf("%s=%q is not compact, pretty or json", EnvLogFormat, raw))
		}
	}
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if level, ok := parseLevel(raw); ok {
			cfg.level = level
		} else {
			cfg.problems = append(cfg.problems, fmt.Sprintf("%s=%q is not DEBUG, INFO, WARN or ERROR", EnvLogLevel, raw))
		}
	}

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func parseFormat(s string) (Format, bool) {
	switch format := Format(strings.ToLower(strings.TrimSpace(s))); format {
	case FormatCompact, FormatPretty, FormatJSON:
		return format, true
	default:
		return FormatCompact, false
	}
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// levelLabel folds custom levels to the nearest named one below them.
func levelLabel(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
