// Command icongen regenerates icons/catalog_gen.go from an upstream Lucide
// icons directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/louisbranch/lucide/internal/codegen"
	"github.com/louisbranch/lucide/internal/platform/cmd"
)

// config holds icongen settings; LUCIDE_ICONS_DIR seeds -src.
type config struct {
	Src string `env:"ICONS_DIR"`
	Out string `env:"ICONGEN_OUT" envDefault:"catalog_gen.go"`
	Pkg string `env:"ICONGEN_PKG" envDefault:"icons"`
}

func main() {
	err := cmd.RunWithTelemetry(context.Background(), cmd.ServiceIconGen, func(context.Context) error {
		return run(os.Args[1:], os.Stdout, os.Stderr)
	})
	if err != nil {
		fatal(err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var cfg config
	flags := flag.NewFlagSet("icongen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	if err := cmd.ParseConfig(&cfg); err != nil {
		return err
	}
	flags.StringVar(&cfg.Src, "src", cfg.Src, "upstream Lucide icons directory (<name>.svg + <name>.json)")
	flags.StringVar(&cfg.Out, "out", cfg.Out, "output path for the generated catalog")
	flags.StringVar(&cfg.Pkg, "pkg", cfg.Pkg, "package name of the generated file")
	if err := cmd.ParseArgs(flags, args); err != nil {
		return err
	}
	if cfg.Src == "" {
		return errors.New("icon source directory is required (-src or LUCIDE_ICONS_DIR)")
	}

	entries, err := codegen.LoadDir(cfg.Src)
	if err != nil {
		return err
	}
	src, err := codegen.Generate(cfg.Pkg, entries)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.Out, src); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %d icons to %s\n", len(entries), cfg.Out)
	return nil
}

func writeOutput(output string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := renameio.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// fatal reports a generation error and exits immediately.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
