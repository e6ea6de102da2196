package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yt-converter.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  url: http://converter.local:8080
poll:
  interval: 500ms
http:
  timeout: 5s
download_dir: /data/music
language: pt
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerURL != "http://converter.local:8080" {
		t.Errorf("Expected server url from file, got %s", cfg.ServerURL)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("Expected poll interval 500ms, got %s", cfg.PollInterval)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %s", cfg.RequestTimeout)
	}
	if cfg.DownloadDir != "/data/music" {
		t.Errorf("Expected download dir /data/music, got %s", cfg.DownloadDir)
	}
	if cfg.Language != "pt" {
		t.Errorf("Expected language pt, got %s", cfg.Language)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  url: http://from-file:5000
`)
	t.Setenv("YTCONVERTER_SERVER_URL", "http://from-env:5000")
	t.Setenv("YTCONVERTER_POLL_INTERVAL", "2s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerURL != "http://from-env:5000" {
		t.Errorf("Expected env to override file, got %s", cfg.ServerURL)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Errorf("Expected poll interval from env, got %s", cfg.PollInterval)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Search mode with no file present
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("Expected default server url %s, got %s", DefaultServerURL, cfg.ServerURL)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Errorf("Expected default poll interval %s, got %s", DefaultPollInterval, cfg.PollInterval)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %s, got %s", DefaultRequestTimeout, cfg.RequestTimeout)
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, cfg.Language)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing explicit config file, got nil")
	}
}

func TestLoad_InvalidIntervalFallsBack(t *testing.T) {
	path := writeConfig(t, `
poll:
  interval: 0s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Errorf("Expected non-positive interval to fall back to %s, got %s", DefaultPollInterval, cfg.PollInterval)
	}
}
