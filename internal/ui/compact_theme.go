package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme keeps the window chrome tight around the fixed-size chart and
// pins the light palette the chart stylesheet is designed for
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color ignores the requested variant; the chart surface is always light
func (t *CompactTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return color.White
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff} // matches axis labels
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff} // the chart's line colour
	case theme.ColorNameSeparator:
		return color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
