package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the module.
const EnvPrefix = "LUCIDE_"

// ParseEnv loads configuration from LUCIDE_-prefixed environment variables.
// Struct tags name the variable without the prefix.
func ParseEnv(target any) error {
	return ParseEnvWithLookup(target, nil)
}

// ParseEnvWithLookup is ParseEnv with an explicit environment. A nil map
// reads the process environment.
func ParseEnvWithLookup(target any, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
