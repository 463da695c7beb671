// Package config loads shelf's configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings shelf needs to reach the catalog service and
// lay out the list view.
type Config struct {
	ServerURL      string
	PageSize       int
	RefreshSeconds int // background refresh cadence; zero disables
	LogDir         string
}

const (
	defaultConfigPath = "~/.config/shelf/config.toml"
	defaultLogDir     = "~/.local/state/shelf"
	defaultServerURL  = "127.0.0.1:8000"
	defaultPageSize   = 6
)

// Load locates and parses the config file, falling back to defaults when it
// is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ServerURL: defaultServerURL,
		PageSize:  defaultPageSize,
		LogDir:    mustExpand(defaultLogDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL      string `toml:"server_url"`
		PageSize       int    `toml:"page_size"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		LogDir         string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.ServerURL); url != "" {
		cfg.ServerURL = url
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshSeconds = raw.RefreshSeconds
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	return cfg, nil
}

// LogPath returns the path of the diagnostic log file. The TUI owns stdout,
// so this file is the only place runtime diagnostics go.
func (c Config) LogPath() string {
	dir := strings.TrimSpace(c.LogDir)
	if dir == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "shelf.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
