package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davren/signpost/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	startPath := flag.String("path", "", "path to open first (optional)")
	theme := flag.String("theme", "", "theme name (optional, overrides config and saved preference)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		StartPath:  *startPath,
		Theme:      *theme,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "signpost: %v\n", err)
		return 1
	}
	return 0
}
