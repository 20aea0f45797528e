package controllers

import (
	"fmt"
	"path/filepath"

	"advanced-notepad/internal/clipboard"
	"advanced-notepad/internal/commands"
	"advanced-notepad/internal/debug"
	"advanced-notepad/internal/logger"
	"advanced-notepad/internal/models"
	"advanced-notepad/internal/services"
	"advanced-notepad/internal/watch"

	"fyne.io/fyne/v2"
	"github.com/dustin/go-humanize"
)

const component = "MainController"

// View is the rendering side the controller drives. Every method is called
// on the UI goroutine.
type View interface {
	SetCommandHandler(handler commands.Handler)
	SetContentChangedHandler(handler func(text string))

	SetContent(text string)
	SetWordCount(count int)
	SetFileName(name string)
	UpdateStatus(status string)
	ApplyPresentation(state models.PresentationState)

	Cut(cb fyne.Clipboard)
	Copy(cb fyne.Clipboard)
	Paste(cb fyne.Clipboard)

	ShowError(title string, err error)
	ShowOpenDialog(location string, callback func(fyne.URIReadCloser, error))
	ShowSaveDialog(location, fileName string, callback func(fyne.URIWriteCloser, error))
	ShowFindReplace(onReplace func(req services.ReplaceRequest) bool)
}

// Watcher follows the file currently backing the document
type Watcher interface {
	Watch(path string) error
}

// MainController is the command dispatcher of the editor session. It owns
// the document and presentation state and runs entirely on the UI goroutine.
type MainController struct {
	document     *models.Document
	presentation *models.PresentationState
	files        *services.FileService
	clipboard    clipboard.Clipboard

	view    View
	watcher Watcher
	logger  logger.Logger
	timing  debug.TimingTracker

	table    *commands.Table
	lastDir  string
	exitFunc func()
}

func NewMainController(
	document *models.Document,
	presentation *models.PresentationState,
	files *services.FileService,
	cb clipboard.Clipboard,
	dc debug.Coordinator,
) *MainController {
	mc := &MainController{
		document:     document,
		presentation: presentation,
		files:        files,
		clipboard:    cb,
		logger:       dc.Logger(),
		timing:       dc.TimingTracker(),
		table:        commands.NewTable(),
		exitFunc:     func() {},
	}

	mc.registerCommands()
	mc.document.OnChange(mc.onDocumentChanged)

	return mc
}

// SetMainView connects the view and renders the current state into it
func (mc *MainController) SetMainView(view View) {
	mc.view = view

	view.SetCommandHandler(mc.Dispatch)
	view.SetContentChangedHandler(mc.document.SetText)

	text := mc.document.Text()
	view.SetContent(text)
	view.SetWordCount(services.CountWords(text))
	view.SetFileName(mc.document.Path())
	view.ApplyPresentation(*mc.presentation)
}

func (mc *MainController) SetWatcher(w Watcher) {
	mc.watcher = w
}

// SetExitHandler installs the function run by the Exit command. It is
// expected not to return.
func (mc *MainController) SetExitHandler(fn func()) {
	mc.exitFunc = fn
}

// Dispatch performs the action bound to cmd
func (mc *MainController) Dispatch(cmd commands.Command) {
	mc.logger.Debug(component, "command dispatched", map[string]interface{}{
		"command": cmd.String(),
	})

	if !mc.table.Exec(cmd) {
		mc.logger.Warning(component, "no handler for command", map[string]interface{}{
			"command": cmd.String(),
		})
	}
}

// OpenPath loads path directly, bypassing the file dialog
func (mc *MainController) OpenPath(path string) error {
	content, err := mc.files.Load(path)
	if err != nil {
		mc.handleError("Error opening file", err)
		return err
	}

	mc.applyLoaded(path, content)
	return nil
}

// HandleExternalChange reacts to another program touching the open file
func (mc *MainController) HandleExternalChange(event watch.Event) {
	current := mc.document.Path()
	if current == "" {
		return
	}
	if abs, err := filepath.Abs(current); err != nil || abs != event.Path {
		return
	}

	name := filepath.Base(current)

	switch event.Kind {
	case watch.Removed:
		mc.updateStatus(fmt.Sprintf("%s was moved or deleted on disk", name))
	case watch.Modified:
		onDisk, err := mc.files.Load(current)
		if err != nil || onDisk == mc.document.Text() {
			return
		}
		mc.updateStatus(fmt.Sprintf("%s changed on disk", name))
	}
}

func (mc *MainController) registerCommands() {
	mc.table.Register(commands.New, func(commands.Command) { mc.newDocument() })
	mc.table.Register(commands.Open, func(commands.Command) { mc.openDocument() })
	mc.table.Register(commands.Save, func(commands.Command) { mc.saveDocument() })
	mc.table.Register(commands.Exit, func(commands.Command) { mc.exit() })
	mc.table.Register(commands.Cut, func(commands.Command) { mc.view.Cut(mc.fyneClipboard()) })
	mc.table.Register(commands.Copy, func(commands.Command) { mc.view.Copy(mc.fyneClipboard()) })
	mc.table.Register(commands.Paste, func(commands.Command) { mc.view.Paste(mc.fyneClipboard()) })
	mc.table.Register(commands.FindReplace, func(commands.Command) { mc.view.ShowFindReplace(mc.replaceAll) })
	mc.table.Register(commands.ToggleDarkMode, func(commands.Command) { mc.toggleDarkMode() })
	mc.table.Register(commands.SetFontSize, mc.setFontSize)
}

func (mc *MainController) newDocument() {
	mc.document.Reset()
	mc.document.SetPath("")
	mc.view.SetFileName("")
	mc.watchCurrent()
	mc.updateStatus("New document")
}

func (mc *MainController) openDocument() {
	mc.view.ShowOpenDialog(mc.lastDir, func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError("Error opening file", &services.IOError{Op: services.OpRead, Err: err})
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		content, err := mc.files.LoadFrom(reader)
		if err != nil {
			mc.handleError("Error opening file", err)
			return
		}

		mc.applyLoaded(path, content)
	})
}

func (mc *MainController) saveDocument() {
	fileName := "untitled.txt"
	if path := mc.document.Path(); path != "" {
		fileName = filepath.Base(path)
	}

	mc.view.ShowSaveDialog(mc.lastDir, fileName, func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.handleError("Error saving file", &services.IOError{Op: services.OpWrite, Err: err})
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()
		content := mc.document.Text()
		if err := mc.files.SaveTo(writer, content); err != nil {
			mc.handleError("Error saving file", err)
			return
		}

		mc.rememberPath(path)
		mc.updateStatus(fmt.Sprintf("Saved %s (%s)", filepath.Base(path), humanize.Bytes(uint64(len(content)))))
	})
}

func (mc *MainController) exit() {
	mc.logger.Info(component, "exit requested", nil)
	mc.exitFunc()
}

func (mc *MainController) replaceAll(req services.ReplaceRequest) bool {
	if req.Find == "" {
		return false
	}

	ctx := mc.timing.StartTiming("replace_all")
	updated, err := req.Apply(mc.document.Text())
	mc.timing.EndTiming(ctx)

	if err != nil {
		mc.handleError("Find & Replace", err)
		return false
	}

	mc.document.SetText(updated)
	mc.updateStatus("Replace All finished")
	return true
}

func (mc *MainController) toggleDarkMode() {
	mc.presentation.ToggleDarkMode()
	mc.view.ApplyPresentation(*mc.presentation)
}

func (mc *MainController) setFontSize(cmd commands.Command) {
	if err := mc.presentation.SetFontSize(cmd.FontSize); err != nil {
		mc.handleError("Font Size", err)
		return
	}
	mc.view.ApplyPresentation(*mc.presentation)
}

func (mc *MainController) applyLoaded(path, content string) {
	mc.document.SetText(content)
	mc.rememberPath(path)
	mc.updateStatus(fmt.Sprintf("Opened %s (%s)", filepath.Base(path), humanize.Bytes(uint64(len(content)))))
}

func (mc *MainController) rememberPath(path string) {
	mc.document.SetPath(path)
	mc.lastDir = filepath.Dir(path)
	mc.view.SetFileName(path)
	mc.watchCurrent()
}

func (mc *MainController) watchCurrent() {
	if mc.watcher == nil {
		return
	}
	if err := mc.watcher.Watch(mc.document.Path()); err != nil {
		mc.logger.Warning(component, "cannot watch file", map[string]interface{}{
			"path":  mc.document.Path(),
			"error": err.Error(),
		})
	}
}

func (mc *MainController) onDocumentChanged(text string) {
	if mc.view == nil {
		return
	}
	mc.view.SetContent(text)
	mc.view.SetWordCount(services.CountWords(text))
}

func (mc *MainController) fyneClipboard() fyne.Clipboard {
	return clipboard.ForFyne(mc.clipboard, mc.logger)
}

func (mc *MainController) updateStatus(status string) {
	if mc.view != nil {
		mc.view.UpdateStatus(status)
	}
}

func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{
		"title": title,
	})

	if mc.view != nil {
		mc.view.ShowError(title, err)
	}
}
