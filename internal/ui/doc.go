package ui

// Package ui contains the Fyne-based desktop user interface. RootUI renders
// the conversion client's state as one of four panels and forwards user
// actions to the convert.Converter. All UI strings are localized via
// Localization.
