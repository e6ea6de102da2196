package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-converter/internal/config"
)

func TestSettingsDialog_LoadAndApply(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app, &config.Config{
		ServerURL:    "http://localhost:5000",
		PollInterval: time.Second,
		DownloadDir:  "/tmp/converted",
		Language:     "en",
	})

	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()

	if sd.serverURLEntry.Text != "http://localhost:5000" {
		t.Errorf("Expected server url to be loaded, got %s", sd.serverURLEntry.Text)
	}
	if sd.pollIntervalEntry.Text != "1000" {
		t.Errorf("Expected poll interval 1000, got %s", sd.pollIntervalEntry.Text)
	}

	sd.serverURLEntry.SetText(" http://converter.lan:8080 ")
	sd.pollIntervalEntry.SetText("2500")
	sd.downloadDirEntry.SetText("/srv/music")
	sd.languageSelect.SetSelected("pt")
	sd.autoRevealCheck.SetChecked(false)
	sd.apply()

	if got := settings.GetServerURL(); got != "http://converter.lan:8080" {
		t.Errorf("Expected trimmed server url, got %s", got)
	}
	if got := settings.GetPollInterval(); got != 2500*time.Millisecond {
		t.Errorf("Expected poll interval 2.5s, got %s", got)
	}
	if got := settings.GetDownloadDirectory(); got != "/srv/music" {
		t.Errorf("Expected download dir /srv/music, got %s", got)
	}
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected language pt, got %s", got)
	}
	if settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal disabled")
	}

	// Invalid interval is ignored
	sd.pollIntervalEntry.SetText("soon")
	sd.apply()
	if got := settings.GetPollInterval(); got != 2500*time.Millisecond {
		t.Errorf("Expected invalid interval to be ignored, got %s", got)
	}
}
