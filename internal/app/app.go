// Package app wires shelf's pieces together: configuration, logging, the
// catalog client, the collection cache, the mutation coordinator, and the
// terminal UI.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/quill8/shelf/internal/config"
	"github.com/quill8/shelf/internal/library"
	"github.com/quill8/shelf/internal/mutate"
	"github.com/quill8/shelf/internal/prefs"
	"github.com/quill8/shelf/internal/state"
	"github.com/quill8/shelf/internal/ui"
)

// Options configure the shelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	ServerURL  string // overrides config when set
	PageSize   int    // overrides config when > 0
	RefreshSec int    // overrides config when > 0; background refresh cadence
}

// noticeQueueSize bounds how many undelivered notices can pile up while the
// UI is busy; beyond that the oldest intent is already stale.
const noticeQueueSize = 8

// Run boots the shelf TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	if opts.RefreshSec > 0 {
		cfg.RefreshSeconds = opts.RefreshSec
	}

	logger := newLogger(cfg.LogPath())
	logger.Info().Str("server", cfg.ServerURL).Int("page_size", cfg.PageSize).Msg("starting shelf")

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := library.NewClient(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	cache := state.New(ctx, client.ListBooks, logger)

	notices := make(chan mutate.Notice, noticeQueueSize)
	notifier := mutate.NotifierFunc(func(n mutate.Notice) {
		select {
		case notices <- n:
		default:
		}
	})
	coord := mutate.New(client, cache, notifier, logger)

	// First load: the initial snapshot is just the first invalidation.
	cache.Invalidate()

	if cfg.RefreshSeconds > 0 {
		StartRefresher(ctx, cache, cfg.RefreshSeconds, logger)
	}

	uiOpts := ui.Options{
		Context:     ctx,
		Cache:       cache,
		Coordinator: coord,
		Notices:     notices,
		PageSize:    cfg.PageSize,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		Logger:      logger,
	}
	return ui.Run(uiOpts)
}

// newLogger opens the diagnostic log file. The terminal belongs to Bubble
// Tea, so a broken log path degrades to a no-op logger rather than writing
// to stdout.
func newLogger(path string) zerolog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).With().Timestamp().Logger()
}
