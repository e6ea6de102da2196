package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-converter/internal/config"
	"github.com/ytget/yt-converter/internal/convert"
	"github.com/ytget/yt-converter/internal/platform"
	"github.com/ytget/yt-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-converter"
	AppName = "YT Converter"

	WindowWidth  = 640
	WindowHeight = 320
)

func main() {
	fmt.Printf("YT Converter v%s starting...\n", version)

	cfg, err := config.Load(os.Getenv("YTCONVERTER_CONFIG"))
	if err != nil {
		log.Printf("Config not loaded, using defaults: %v", err)
		cfg = config.Defaults()
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewConverterTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp, cfg)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	api, err := convert.NewAPIClient(settings.GetServerURL(), cfg.RequestTimeout)
	if err != nil {
		log.Printf("Invalid server URL %q, falling back to %s: %v", settings.GetServerURL(), cfg.ServerURL, err)
		api, err = convert.NewAPIClient(cfg.ServerURL, cfg.RequestTimeout)
		if err != nil {
			log.Fatalf("Cannot create conversion client: %v", err)
		}
	}

	converterSvc := convert.NewService(api, settings.GetPollInterval())
	defer converterSvc.Close()

	ui.NewRootUI(myWindow, converterSvc, settings)

	myWindow.ShowAndRun()
}
