package iconserver

import (
	"context"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/louisbranch/lucide/internal/platform/log"
)

func logConfig(level string) log.Config {
	return log.Config{Level: level, Format: "json", Output: io.Discard}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("iconserver", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8090" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8090")
	}
	if cfg.RateLimit != 600 {
		t.Fatalf("RateLimit = %d, want 600", cfg.RateLimit)
	}
	if cfg.RateWindow != time.Minute {
		t.Fatalf("RateWindow = %v, want 1m", cfg.RateWindow)
	}
	if !cfg.Tracing {
		t.Fatal("Tracing = false, want true")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("Log = %+v, want info/json", cfg.Log)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("LUCIDE_ICONSERVER_HTTP_ADDR", "127.0.0.1:9100")
	t.Setenv("LUCIDE_ICONSERVER_RATE_WINDOW", "30s")
	t.Setenv("LUCIDE_LOG_LEVEL", "debug")

	fs := flag.NewFlagSet("iconserver", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.RateWindow != 30*time.Second {
		t.Fatalf("RateWindow = %v", cfg.RateWindow)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestParseConfigWithEnvIgnoresProcessEnv(t *testing.T) {
	t.Setenv("LUCIDE_ICONSERVER_HTTP_ADDR", "127.0.0.1:9100")

	fs := flag.NewFlagSet("iconserver", flag.ContinueOnError)
	cfg, err := ParseConfigWithEnv(fs, nil, map[string]string{
		"LUCIDE_ICONSERVER_RATE_LIMIT": "42",
		"LUCIDE_ICONSERVER_TRACING":    "false",
	})
	if err != nil {
		t.Fatalf("ParseConfigWithEnv() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8090" {
		t.Fatalf("HTTPAddr = %q, want default", cfg.HTTPAddr)
	}
	if cfg.RateLimit != 42 {
		t.Fatalf("RateLimit = %d, want 42", cfg.RateLimit)
	}
	if cfg.Tracing {
		t.Fatal("Tracing = true, want false")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LUCIDE_ICONSERVER_HTTP_ADDR", "127.0.0.1:9100")

	fs := flag.NewFlagSet("iconserver", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9200", "-rate-limit", "-1", "-log-format", "console"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9200" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9200")
	}
	if cfg.RateLimit != -1 {
		t.Fatalf("RateLimit = %d, want -1", cfg.RateLimit)
	}
	if cfg.Log.Format != "console" {
		t.Fatalf("Log.Format = %q", cfg.Log.Format)
	}
}

func TestParseConfigRejectsMalformedEnv(t *testing.T) {
	t.Setenv("LUCIDE_ICONSERVER_RATE_LIMIT", "lots")

	fs := flag.NewFlagSet("iconserver", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for malformed rate limit")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("iconserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Log: logConfig("loud")})
	if err == nil {
		t.Fatal("expected error for bad log level")
	}
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{HTTPAddr: "127.0.0.1:0", RateLimit: -1, Log: logConfig("error")}
	if err := Run(ctx, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
