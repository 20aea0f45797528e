package views

import (
	"image/color"

	"advanced-notepad/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// editorTheme recolours and resizes the text area from the presentation
// state. Anything it does not override comes from the default theme.
type editorTheme struct {
	palette  models.Palette
	fontSize float32
	dark     bool
}

func newEditorTheme(state models.PresentationState) *editorTheme {
	return &editorTheme{
		palette:  state.Palette(),
		fontSize: float32(state.FontSize),
		dark:     state.DarkMode,
	}
}

func (t *editorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return t.palette.Background
	case theme.ColorNameForeground:
		return t.palette.Foreground
	case theme.ColorNamePrimary:
		// the entry cursor is drawn in the primary colour
		return t.palette.Caret
	case theme.ColorNameSelection:
		return t.palette.Selection
	}
	return theme.DefaultTheme().Color(name, t.variant())
}

func (t *editorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *editorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *editorTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.fontSize
	}
	return theme.DefaultTheme().Size(name)
}

func (t *editorTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}
