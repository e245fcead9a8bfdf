// Package log builds the zerolog loggers used by the module's commands.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config captures logger options. It is usually embedded in a command config
// and filled from LUCIDE_LOG_* variables.
type Config struct {
	Level   string    `env:"LOG_LEVEL" envDefault:"info"`
	Format  string    `env:"LOG_FORMAT" envDefault:"json"`
	Service string    `env:"-"`
	Output  io.Writer `env:"-"`
}

// New builds a logger from cfg. Unknown levels and formats are rejected so a
// typo in the environment fails at startup.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	switch strings.ToLower(cfg.Format) {
	case "", "json":
	case "console":
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q: want json or console", cfg.Format)
	}

	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str(FieldService, cfg.Service)
	}
	return ctx.Logger(), nil
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str(FieldComponent, component).Logger()
}
