package theme

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestBackgroundIsWhite(t *testing.T) {
	th := PlotTheme{}
	for _, v := range []fyne.ThemeVariant{theme.VariantDark, theme.VariantLight} {
		got := th.Color(theme.ColorNameBackground, v)
		r, g, b, a := got.RGBA()
		if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
			t.Errorf("background for variant %d = %v, want white", v, got)
		}
	}
}

func TestForegroundIsLightVariant(t *testing.T) {
	th := PlotTheme{}
	want := theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight)
	got := th.Color(theme.ColorNameForeground, theme.VariantDark)
	if color.RGBAModel.Convert(got) != color.RGBAModel.Convert(want) {
		t.Errorf("foreground = %v, want %v", got, want)
	}
}
