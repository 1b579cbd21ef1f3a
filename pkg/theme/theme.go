package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var _ fyne.Theme = PlotTheme{}

// PlotTheme is the light default theme with a pure white background, so the
// black plot primitives keep full contrast.
type PlotTheme struct{}

func (m PlotTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.White
	case theme.ColorNameSeparator:
		return color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (m PlotTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m PlotTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m PlotTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}
