// Package main starts the icon server.
//
// The process serves the generated catalog as SVG, PNG and sprite sheets so
// non-Go frontends can use the same icons the Go packages render.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	iconservercmd "github.com/louisbranch/lucide/internal/cmd/iconserver"
	"github.com/louisbranch/lucide/internal/platform/config"
)

func main() {
	cfg, err := iconservercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := iconservercmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("failed to serve: %v", err)
	}
}
