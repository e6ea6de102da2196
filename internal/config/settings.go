package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL          = "server_url"
	KeyPollIntervalMs     = "poll_interval_ms"
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Poll interval bounds in milliseconds
const (
	MinPollIntervalMs = 250
	MaxPollIntervalMs = 10000
)

// DefaultAutoRevealComplete controls revealing saved files in the file manager
const DefaultAutoRevealComplete = true

// Settings manages desktop preferences. Values not yet stored fall back to
// the startup Config.
type Settings struct {
	app      fyne.App
	defaults *Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults *Config) *Settings {
	if defaults == nil {
		defaults = Defaults()
	}
	return &Settings{app: app, defaults: defaults}
}

// GetServerURL returns the conversion service base URL
func (s *Settings) GetServerURL() string {
	return s.app.Preferences().StringWithFallback(KeyServerURL, s.defaults.ServerURL)
}

// SetServerURL sets the conversion service base URL
func (s *Settings) SetServerURL(url string) {
	if url == "" {
		s.app.Preferences().RemoveValue(KeyServerURL)
		return
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetPollInterval returns the progress polling cadence
func (s *Settings) GetPollInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyPollIntervalMs)
	if ms <= 0 {
		return s.defaults.PollInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// SetPollInterval sets the progress polling cadence
func (s *Settings) SetPollInterval(interval time.Duration) {
	ms := int(interval / time.Millisecond)
	if ms < MinPollIntervalMs {
		ms = MinPollIntervalMs
	}
	if ms > MaxPollIntervalMs {
		ms = MaxPollIntervalMs
	}
	s.app.Preferences().SetInt(KeyPollIntervalMs, ms)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir != "" {
		return dir
	}
	if s.defaults.DownloadDir != "" {
		return s.defaults.DownloadDir
	}

	// Use system default Downloads directory
	defaultDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		defaultDir = "/tmp/downloads"
	}
	s.SetDownloadDirectory(defaultDir)
	return defaultDir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, s.defaults.Language)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal saved files
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal saved files
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
