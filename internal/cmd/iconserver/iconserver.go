// Package iconserver parses icon server flags and launches the HTTP server.
package iconserver

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/lucide/internal/platform/cmd"
	"github.com/louisbranch/lucide/internal/platform/log"
	"github.com/louisbranch/lucide/internal/server"
)

// Config holds the iconserver command configuration.
type Config struct {
	HTTPAddr   string        `env:"ICONSERVER_HTTP_ADDR" envDefault:"localhost:8090"`
	RateLimit  int           `env:"ICONSERVER_RATE_LIMIT" envDefault:"600"`
	RateWindow time.Duration `env:"ICONSERVER_RATE_WINDOW" envDefault:"1m"`
	Tracing    bool          `env:"ICONSERVER_TRACING" envDefault:"true"`
	Log        log.Config
}

// ParseConfig parses the process environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return ParseConfigWithEnv(fs, args, nil)
}

// ParseConfigWithEnv is ParseConfig reading LUCIDE_ variables from
// environment rather than the process.
func ParseConfigWithEnv(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigWithEnv(&cfg, environment); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests allowed per client IP per window (negative disables)")
	fs.DurationVar(&cfg.RateWindow, "rate-window", cfg.RateWindow, "Rate limit window")
	fs.BoolVar(&cfg.Tracing, "tracing", cfg.Tracing, "Wrap HTTP handlers with OpenTelemetry spans")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format (json or console)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the icon server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconServer, func(ctx context.Context) error {
		logCfg := cfg.Log
		logCfg.Service = entrypoint.ServiceIconServer
		logger, err := log.New(logCfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		srv, err := server.New(server.Config{
			HTTPAddr:   cfg.HTTPAddr,
			RateLimit:  cfg.RateLimit,
			RateWindow: cfg.RateWindow,
			Tracing:    cfg.Tracing,
			Logger:     log.WithComponent(logger, "http"),
		})
		if err != nil {
			return fmt.Errorf("init icon server: %w", err)
		}
		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve icons: %w", err)
		}
		return nil
	})
}
