package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ConverterTheme tints the panel colors and tightens spacing of the default theme
type ConverterTheme struct {
	base fyne.Theme
}

// NewConverterTheme creates the application theme
func NewConverterTheme() fyne.Theme {
	return &ConverterTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *ConverterTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // download panel
	case theme.ColorNameError:
		if variant == theme.VariantDark {
			return color.RGBA{R: 239, G: 83, B: 80, A: 255}
		}
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // convert button, progress bar
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *ConverterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *ConverterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes
func (t *ConverterTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 3
	}
	return t.base.Size(name)
}
