package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"TEST_PORT" envDefault:"123"`
	Name string `env:"TEST_NAME"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_PORT", "999")
	t.Setenv("LUCIDE_TEST_PORT", "456")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 456 {
		t.Fatalf("expected prefixed port 456, got %d", cfg.Port)
	}
}

func TestParseEnvWithLookup(t *testing.T) {
	t.Setenv("LUCIDE_TEST_NAME", "from-process")

	var cfg envTestConfig
	if err := ParseEnvWithLookup(&cfg, map[string]string{"LUCIDE_TEST_NAME": "from-map"}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Name != "from-map" {
		t.Fatalf("expected explicit environment to win, got %q", cfg.Name)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("LUCIDE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
