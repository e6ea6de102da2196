package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-converter/internal/config"
	"github.com/ytget/yt-converter/internal/convert"
	"github.com/ytget/yt-converter/internal/model"
	"github.com/ytget/yt-converter/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	converter    convert.Converter
	settings     *config.Settings
	localization *Localization

	urlEntry   *widget.Entry
	convertBtn *widget.Button

	// Exactly one of the three sections is visible at a time
	progressSection *fyne.Container
	progressBar     *widget.ProgressBar
	progressLabel   *widget.Label

	downloadSection *fyne.Container
	downloadLabel   *widget.Label
	downloadBtn     *widget.Button
	openFileBtn     *widget.Button
	browserLink     *widget.Hyperlink

	errorSection *fyne.Container
	errorLabel   *widget.Label

	// last rendered snapshot, only touched on the UI goroutine
	current model.ConversionTask
	saving  bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, converter convert.Converter, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		converter:    converter,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.createMenu()
	ui.setupUI()
	ui.render(converter.Snapshot())

	// Set up callback for conversion updates
	ui.converter.SetUpdateCallback(ui.onTaskUpdate)

	log.Printf("RootUI initialized with converter: %v", ui.converter != nil)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	// Trigger conversion when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onConvertClick()
	}

	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.convertBtn, ui.urlEntry)

	// Progress panel
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string { return "" }
	ui.progressLabel = widget.NewLabel(fmt.Sprintf(ProgressLabelFormat, 0))
	ui.progressSection = container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyConverting)),
		container.NewBorder(nil, nil, nil, ui.progressLabel, ui.progressBar),
	)

	// Download panel
	ui.downloadLabel = widget.NewLabel("")
	ui.downloadLabel.Importance = widget.SuccessImportance
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeySaveFile), ui.onDownloadClick)
	ui.openFileBtn = widget.NewButton(ui.localization.GetText(KeyOpenFile), ui.onOpenFileClick)
	ui.browserLink = widget.NewHyperlink(ui.localization.GetText(KeyOpenInBrowser), nil)
	ui.downloadSection = container.NewVBox(
		ui.downloadLabel,
		container.NewHBox(ui.downloadBtn, ui.openFileBtn, ui.browserLink),
	)

	// Error panel
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorSection = container.NewVBox(ui.errorLabel)

	content := container.NewVBox(
		topPanel,
		widget.NewSeparator(),
		ui.progressSection,
		ui.downloadSection,
		ui.errorSection,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts rebuilds the content with the current language, keeping
// the typed URL and the rendered state
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	typed := ui.urlEntry.Text
	ui.setupUI()
	ui.urlEntry.SetText(typed)
	ui.render(ui.current)
}

// onConvertClick handles the convert button click
func (ui *RootUI) onConvertClick() {
	if !ui.current.State.Panels().SubmitEnabled {
		return
	}
	urlText := ui.urlEntry.Text

	// Disabled right away; the next render decides whether it stays so
	ui.convertBtn.Disable()

	go func() {
		err := ui.converter.Submit(context.Background(), urlText)
		switch {
		case err == nil:
		case errors.Is(err, convert.ErrBusy):
			log.Printf("Ignoring submit while a conversion is running")
		default:
			log.Printf("Conversion not started: %v", err)
		}
	}()
}

// onTaskUpdate receives service updates from any goroutine
func (ui *RootUI) onTaskUpdate(task model.ConversionTask) {
	fyne.Do(func() {
		ui.render(task)
	})
}

// render maps a snapshot onto the panels. Must run on the UI goroutine.
func (ui *RootUI) render(task model.ConversionTask) {
	ui.current = task
	panels := task.State.Panels()

	setVisible(ui.progressSection, panels.Progress)
	setVisible(ui.downloadSection, panels.Download)
	setVisible(ui.errorSection, panels.Error)

	if panels.SubmitEnabled {
		ui.convertBtn.Enable()
	} else {
		ui.convertBtn.Disable()
	}

	ui.progressBar.SetValue(float64(task.Percent) / 100)
	ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, task.Percent))

	if panels.Download {
		ui.downloadLabel.SetText(ui.downloadText(task))
		if link, ok := ui.converter.DownloadURL(); ok {
			if parsed, err := url.Parse(link); err == nil {
				ui.browserLink.SetURL(parsed)
			}
		}
		if ui.saving {
			ui.downloadBtn.Disable()
		} else {
			ui.downloadBtn.Enable()
		}
		setVisible(ui.openFileBtn, task.OutputPath != "")
	}

	if panels.Error {
		ui.errorLabel.SetText(IconError + " " + ui.errorText(task))
	}
}

// downloadText describes the completed task
func (ui *RootUI) downloadText(task model.ConversionTask) string {
	if task.OutputPath != "" {
		return IconDone + " " + ui.localization.GetText(KeySavedTo) + MiddleDotSeparator + task.GetDisplayTitle()
	}
	return IconDone + " " + ui.localization.GetText(KeyReadyToDownload)
}

// errorText localizes the failure; server-provided messages are shown as is
func (ui *RootUI) errorText(task model.ConversionTask) string {
	switch task.Failure {
	case model.FailureValidation:
		return ui.localization.GetText(KeyPleaseEnterURL)
	case model.FailureConversion:
		return ui.localization.GetText(KeyConversionFailed)
	case model.FailureTracking:
		return ui.localization.GetText(KeyTrackingFailed)
	case model.FailureSubmit:
		if task.LastError == "" || task.LastError == convert.MsgConversionFailed {
			return ui.localization.GetText(KeyConversionFailed)
		}
		return task.LastError
	default:
		return task.LastError
	}
}

// onDownloadClick saves the artifact into the configured directory
func (ui *RootUI) onDownloadClick() {
	if !ui.current.HasTask() || ui.saving {
		return
	}
	ui.saving = true
	ui.downloadBtn.Disable()

	dir := ui.settings.GetDownloadDirectory()
	reveal := ui.settings.GetAutoRevealOnComplete()

	go func() {
		path, err := ui.converter.Download(context.Background(), dir)

		fyne.Do(func() {
			ui.saving = false
			ui.downloadBtn.Enable()

			if err != nil {
				log.Printf("Error saving file: %v", err)
				ui.showPopUp(ui.localization.GetText(KeyErrorSavingFile) + ": " + err.Error())
				return
			}
			if reveal {
				ui.onRevealFile(path)
			}
		})
	}()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showPopUp(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFileClick opens the saved file with the default application
func (ui *RootUI) onOpenFileClick() {
	path := ui.current.OutputPath
	if path == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		ui.showPopUp(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.converter.SetPollInterval(ui.settings.GetPollInterval())
		ui.onLanguageChange(ui.settings.GetLanguage())
	})
}

// showPopUp shows a transient message over the window
func (ui *RootUI) showPopUp(message string) {
	popUp := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popUp.Show()
	go func() {
		<-time.After(PopUpAutoHide)
		fyne.Do(popUp.Hide)
	}()
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
