package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != defaultServerURL {
		t.Fatalf("ServerURL = %q, want %q", cfg.ServerURL, defaultServerURL)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if cfg.RefreshSeconds != 0 {
		t.Fatalf("RefreshSeconds = %d, want 0 (disabled)", cfg.RefreshSeconds)
	}
	if !strings.HasSuffix(cfg.LogPath(), "shelf.log") {
		t.Fatalf("LogPath = %q, want a shelf.log path", cfg.LogPath())
	}
}

func TestLoad_ParsesFileAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "server_url = \"books.local:9000\"\npage_size = 12\nrefresh_seconds = 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != "books.local:9000" {
		t.Fatalf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.PageSize != 12 {
		t.Fatalf("PageSize = %d, want 12", cfg.PageSize)
	}
	if cfg.RefreshSeconds != 30 {
		t.Fatalf("RefreshSeconds = %d, want 30", cfg.RefreshSeconds)
	}
	if cfg.LogDir == "" {
		t.Fatalf("LogDir not defaulted")
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("server_url = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error for malformed file")
	}
}

func TestLoad_IgnoresInvalidPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("page_size = -3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want default %d", cfg.PageSize, defaultPageSize)
	}
}
