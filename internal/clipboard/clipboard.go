package clipboard

import (
	"fmt"

	"advanced-notepad/internal/config"
	"advanced-notepad/internal/logger"

	systemclip "github.com/atotto/clipboard"
	"fyne.io/fyne/v2"
)

// Clipboard is the capability the editor needs for cut, copy and paste
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// New picks the backend named in the configuration
func New(backend string, window fyne.Window) (Clipboard, error) {
	switch backend {
	case config.ClipboardApp:
		return FromFyne(window.Clipboard()), nil
	case config.ClipboardSystem:
		if systemclip.Unsupported {
			return nil, fmt.Errorf("system clipboard is not available on this platform")
		}
		return System{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}

// System talks to the OS clipboard directly
type System struct{}

func (System) Read() (string, error) {
	return systemclip.ReadAll()
}

func (System) Write(text string) error {
	return systemclip.WriteAll(text)
}

type fyneClipboard struct {
	cb fyne.Clipboard
}

// FromFyne wraps the toolkit clipboard
func FromFyne(cb fyne.Clipboard) Clipboard {
	return &fyneClipboard{cb: cb}
}

func (f *fyneClipboard) Read() (string, error) {
	return f.cb.Content(), nil
}

func (f *fyneClipboard) Write(text string) error {
	f.cb.SetContent(text)
	return nil
}

type fyneAdapter struct {
	cb     Clipboard
	logger logger.Logger
}

// ForFyne exposes a Clipboard to widgets that expect a fyne.Clipboard.
// Backend failures are logged; a failed read pastes nothing.
func ForFyne(cb Clipboard, log logger.Logger) fyne.Clipboard {
	if f, ok := cb.(*fyneClipboard); ok {
		return f.cb
	}
	return &fyneAdapter{cb: cb, logger: log}
}

func (a *fyneAdapter) Content() string {
	text, err := a.cb.Read()
	if err != nil {
		a.logger.Error("Clipboard", err, map[string]interface{}{"op": "read"})
		return ""
	}
	return text
}

func (a *fyneAdapter) SetContent(text string) {
	if err := a.cb.Write(text); err != nil {
		a.logger.Error("Clipboard", err, map[string]interface{}{"op": "write"})
	}
}

// Memory is an in-process clipboard
type Memory struct {
	text string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Read() (string, error) {
	return m.text, nil
}

func (m *Memory) Write(text string) error {
	m.text = text
	return nil
}
