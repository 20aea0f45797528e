package components

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const untitled = "Untitled"

// StatusBar shows the word count, the current file and the last status message
type StatusBar struct {
	container   *fyne.Container
	wordsLabel  *widget.Label
	fileLabel   *widget.Label
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.wordsLabel = widget.NewLabel("Words: 0")
	sb.fileLabel = widget.NewLabel(untitled)
	sb.fileLabel.Truncation = fyne.TextTruncateEllipsis
	sb.statusLabel = widget.NewLabel("Ready")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil,
		nil,
		container.NewHBox(sb.wordsLabel, widget.NewSeparator()),
		container.NewHBox(widget.NewSeparator(), sb.statusLabel),
		sb.fileLabel,
	)
}

func (sb *StatusBar) SetWordCount(count int) {
	sb.wordsLabel.SetText(fmt.Sprintf("Words: %d", count))
}

// SetFileName shows the base name of path, or Untitled when path is empty
func (sb *StatusBar) SetFileName(path string) {
	if path == "" {
		sb.fileLabel.SetText(untitled)
		return
	}
	sb.fileLabel.SetText(filepath.Base(path))
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) WordCountText() string {
	return sb.wordsLabel.Text
}

func (sb *StatusBar) FileName() string {
	return sb.fileLabel.Text
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
