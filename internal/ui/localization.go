package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyConvert           = "convert"
	KeySaveFile          = "save_file"
	KeyOpenInBrowser     = "open_in_browser"
	KeyOpenFile          = "open_file"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyServerURL         = "server_url"
	KeyPollInterval      = "poll_interval"
	KeyDownloadDirectory = "download_directory"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyConverting        = "converting"
	KeyReadyToDownload   = "ready_to_download"
	KeySavedTo           = "saved_to"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyConversionFailed  = "conversion_failed"
	KeyTrackingFailed    = "tracking_failed"
	KeyErrorSavingFile   = "error_saving_file"
	KeyErrorOpeningFile  = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Converter",
		KeyConvert:           "Convert",
		KeySaveFile:          "Save MP3",
		KeyOpenInBrowser:     "Open in browser",
		KeyOpenFile:          "Open",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyServerURL:         "Server URL",
		KeyPollInterval:      "Poll Interval (ms)",
		KeyDownloadDirectory: "Download Directory",
		KeyAutoReveal:        "Reveal saved files",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Enter video URL (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Server URL changes apply after restart",
		KeyConverting:        "Converting...",
		KeyReadyToDownload:   "Conversion complete",
		KeySavedTo:           "Saved",
		KeyPleaseEnterURL:    "Please enter a video URL",
		KeyConversionFailed:  "Conversion failed",
		KeyTrackingFailed:    "Failed to track progress",
		KeyErrorSavingFile:   "Error saving file",
		KeyErrorOpeningFile:  "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Конвертер",
		KeyConvert:           "Конвертировать",
		KeySaveFile:          "Сохранить MP3",
		KeyOpenInBrowser:     "Открыть в браузере",
		KeyOpenFile:          "Открыть",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyServerURL:         "Адрес сервера",
		KeyPollInterval:      "Интервал опроса (мс)",
		KeyDownloadDirectory: "Папка загрузки",
		KeyAutoReveal:        "Показывать сохранённые файлы",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "Введите URL видео (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Адрес сервера применится после перезапуска",
		KeyConverting:        "Конвертация...",
		KeyReadyToDownload:   "Конвертация завершена",
		KeySavedTo:           "Сохранено",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL видео",
		KeyConversionFailed:  "Ошибка конвертации",
		KeyTrackingFailed:    "Не удалось отследить прогресс",
		KeyErrorSavingFile:   "Ошибка сохранения файла",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Converter",
		KeyConvert:           "Converter",
		KeySaveFile:          "Salvar MP3",
		KeyOpenInBrowser:     "Abrir no navegador",
		KeyOpenFile:          "Abrir",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyServerURL:         "URL do servidor",
		KeyPollInterval:      "Intervalo de consulta (ms)",
		KeyDownloadDirectory: "Diretório de Download",
		KeyAutoReveal:        "Mostrar arquivos salvos",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "Digite URL do vídeo (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "A URL do servidor vale após reiniciar",
		KeyConverting:        "Convertendo...",
		KeyReadyToDownload:   "Conversão concluída",
		KeySavedTo:           "Salvo",
		KeyPleaseEnterURL:    "Por favor, digite a URL do vídeo",
		KeyConversionFailed:  "Falha na conversão",
		KeyTrackingFailed:    "Falha ao acompanhar o progresso",
		KeyErrorSavingFile:   "Erro ao salvar arquivo",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
	}
}
