package models

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// FontSizes lists the sizes offered in the Font Size menu
var FontSizes = []int{12, 16, 20, 24, 28, 32, 36}

var ErrUnsupportedFontSize = errors.New("unsupported font size")

var (
	lightPalette = Palette{
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Caret:      color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Selection:  color.NRGBA{R: 0xb8, G: 0xcf, B: 0xe5, A: 0xff},
	}
	darkPalette = Palette{
		Background: color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Caret:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Selection:  color.NRGBA{R: 0x5a, G: 0x6e, B: 0x8c, A: 0xff},
	}
)

// Palette holds the editor colours derived from the theme flag
type Palette struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Caret      color.NRGBA
	Selection  color.NRGBA
}

// PresentationState carries view-only settings. It never touches the Document.
type PresentationState struct {
	FontSize int
	DarkMode bool
}

// NewPresentationState validates the initial font size against FontSizes
func NewPresentationState(fontSize int, darkMode bool) (*PresentationState, error) {
	ps := &PresentationState{DarkMode: darkMode}
	if err := ps.SetFontSize(fontSize); err != nil {
		return nil, err
	}
	return ps, nil
}

// SetFontSize accepts only the sizes in FontSizes
func (ps *PresentationState) SetFontSize(size int) error {
	if !IsSupportedFontSize(size) {
		return fmt.Errorf("%w: %d", ErrUnsupportedFontSize, size)
	}
	ps.FontSize = size
	return nil
}

// ToggleDarkMode flips the theme flag
func (ps *PresentationState) ToggleDarkMode() {
	ps.DarkMode = !ps.DarkMode
}

// Palette derives the editor colours from DarkMode
func (ps *PresentationState) Palette() Palette {
	if ps.DarkMode {
		return darkPalette
	}
	return lightPalette
}

func IsSupportedFontSize(size int) bool {
	return slices.Contains(FontSizes, size)
}
