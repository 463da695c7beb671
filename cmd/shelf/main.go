package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quill8/shelf/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	serverURL := flag.String("server", "", "catalog server URL (optional, overrides config)")
	pageSize := flag.Int("page-size", 0, "books per page (optional, overrides config)")
	refreshSeconds := flag.Int("refresh", 0, "background refresh interval in seconds (optional, 0 disables)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ServerURL:  *serverURL,
	}
	if *pageSize > 0 {
		opts.PageSize = *pageSize
	}
	if *refreshSeconds > 0 {
		opts.RefreshSec = *refreshSeconds
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		return 1
	}
	return 0
}
