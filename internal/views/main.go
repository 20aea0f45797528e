package views

import (
	"fmt"

	"advanced-notepad/internal/commands"
	"advanced-notepad/internal/models"
	"advanced-notepad/internal/services"
	"advanced-notepad/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// keyBindings are the editor-wide shortcuts, all on the platform modifier
var keyBindings = map[fyne.KeyName]commands.ID{
	fyne.KeyN: commands.New,
	fyne.KeyO: commands.Open,
	fyne.KeyS: commands.Save,
	fyne.KeyQ: commands.Exit,
	fyne.KeyH: commands.FindReplace,
}

// MainView renders the editor window. It holds no document state; every
// user action goes out through the command handler and every change comes
// back through the setters. All methods run on the UI goroutine.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	editor        *editor
	themed        *container.ThemeOverride
	statusBar     *components.StatusBar
	findReplace   *components.FindReplace

	darkModeItem  *fyne.MenuItem
	fontSizeItems map[int]*fyne.MenuItem
	mainMenu      *fyne.MainMenu

	commandHandler commands.Handler
	contentHandler func(string)
}

// NewMainView builds the window content and menus
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window:        window,
		fontSizeItems: make(map[int]*fyne.MenuItem),
	}

	view.initializeComponents()
	view.buildLayout()
	view.buildMenus()
	view.registerShortcuts()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.editor = newEditor()
	mv.editor.onShortcut = mv.handleEditorShortcut
	mv.editor.OnChanged = func(text string) {
		if mv.contentHandler != nil {
			mv.contentHandler(text)
		}
	}

	mv.themed = container.NewThemeOverride(mv.editor, newEditorTheme(models.PresentationState{FontSize: models.FontSizes[0]}))
	mv.statusBar = components.NewStatusBar()
	mv.findReplace = components.NewFindReplace(mv.window)
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.themed,
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) buildMenus() {
	fileMenu := fyne.NewMenu("File",
		mv.commandItem("New", commands.New),
		mv.commandItem("Open...", commands.Open),
		mv.commandItem("Save...", commands.Save),
		fyne.NewMenuItemSeparator(),
		mv.commandItem("Exit", commands.Exit),
	)
	// Exit owns the quit path so the shutdown sequence always runs
	fileMenu.Items[len(fileMenu.Items)-1].IsQuit = true

	editMenu := fyne.NewMenu("Edit",
		mv.commandItem("Cut", commands.Cut),
		mv.commandItem("Copy", commands.Copy),
		mv.commandItem("Paste", commands.Paste),
		fyne.NewMenuItemSeparator(),
		mv.commandItem("Find & Replace...", commands.FindReplace),
	)

	mv.darkModeItem = mv.commandItem("Toggle Dark Mode", commands.ToggleDarkMode)
	viewMenu := fyne.NewMenu("View", mv.darkModeItem)

	fontMenu := fyne.NewMenu("Font Size")
	for _, size := range models.FontSizes {
		item := fyne.NewMenuItem(fmt.Sprintf("%d", size), func() {
			mv.dispatch(commands.FontSize(size))
		})
		mv.fontSizeItems[size] = item
		fontMenu.Items = append(fontMenu.Items, item)
	}

	mv.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, viewMenu, fontMenu)
	mv.window.SetMainMenu(mv.mainMenu)
}

func (mv *MainView) commandItem(label string, id commands.ID) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, func() {
		mv.dispatch(commands.Of(id))
	})
	for key, bound := range keyBindings {
		if bound == id {
			item.Shortcut = &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
		}
	}
	return item
}

// registerShortcuts covers the case where the editor is not focused
func (mv *MainView) registerShortcuts() {
	for key, id := range keyBindings {
		mv.window.Canvas().AddShortcut(
			&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault},
			func(fyne.Shortcut) { mv.dispatch(commands.Of(id)) },
		)
	}
}

// handleEditorShortcut claims the shortcuts the focused editor would
// otherwise swallow. Clipboard shortcuts are routed through the command
// handler so the configured clipboard backend is used.
func (mv *MainView) handleEditorShortcut(s fyne.Shortcut) bool {
	switch sc := s.(type) {
	case *fyne.ShortcutCut:
		mv.dispatch(commands.Of(commands.Cut))
		return true
	case *fyne.ShortcutCopy:
		mv.dispatch(commands.Of(commands.Copy))
		return true
	case *fyne.ShortcutPaste:
		mv.dispatch(commands.Of(commands.Paste))
		return true
	case *desktop.CustomShortcut:
		if sc.Modifier != fyne.KeyModifierShortcutDefault {
			return false
		}
		if id, ok := keyBindings[sc.KeyName]; ok {
			mv.dispatch(commands.Of(id))
			return true
		}
	}
	return false
}

func (mv *MainView) dispatch(cmd commands.Command) {
	if mv.commandHandler != nil {
		mv.commandHandler(cmd)
	}
}

func (mv *MainView) SetCommandHandler(handler commands.Handler) {
	mv.commandHandler = handler
}

func (mv *MainView) SetContentChangedHandler(handler func(text string)) {
	mv.contentHandler = handler
}

// SetContent replaces the editor text unless it already matches, which
// keeps the cursor in place while the user types
func (mv *MainView) SetContent(text string) {
	if mv.editor.Text == text {
		return
	}
	mv.editor.SetText(text)
}

func (mv *MainView) SetWordCount(count int) {
	mv.statusBar.SetWordCount(count)
}

func (mv *MainView) SetFileName(path string) {
	mv.statusBar.SetFileName(path)
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ApplyPresentation restyles the editor and syncs the menu check marks
func (mv *MainView) ApplyPresentation(state models.PresentationState) {
	mv.themed.Theme = newEditorTheme(state)
	mv.themed.Refresh()

	mv.darkModeItem.Checked = state.DarkMode
	for size, item := range mv.fontSizeItems {
		item.Checked = size == state.FontSize
	}
	mv.mainMenu.Refresh()
}

func (mv *MainView) Cut(cb fyne.Clipboard) {
	mv.editor.Entry.TypedShortcut(&fyne.ShortcutCut{Clipboard: cb})
}

func (mv *MainView) Copy(cb fyne.Clipboard) {
	mv.editor.Entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: cb})
}

func (mv *MainView) Paste(cb fyne.Clipboard) {
	mv.editor.Entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: cb})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	d := dialog.NewError(err, mv.window)
	d.Show()
}

func (mv *MainView) ShowOpenDialog(location string, callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, mv.window)
	mv.setDialogLocation(d, location)
	d.Show()
}

func (mv *MainView) ShowSaveDialog(location, fileName string, callback func(fyne.URIWriteCloser, error)) {
	d := dialog.NewFileSave(callback, mv.window)
	mv.setDialogLocation(d, location)
	d.SetFileName(fileName)
	d.Show()
}

func (mv *MainView) ShowFindReplace(onReplace func(req services.ReplaceRequest) bool) {
	mv.findReplace.Show(onReplace)
}

func (mv *MainView) setDialogLocation(d *dialog.FileDialog, location string) {
	if location == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(location))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}

// Focus puts the keyboard focus into the text area
func (mv *MainView) Focus() {
	mv.window.Canvas().Focus(mv.editor)
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// editor is a multi-line entry whose shortcuts can be intercepted
type editor struct {
	widget.Entry

	onShortcut func(fyne.Shortcut) bool
}

func newEditor() *editor {
	e := &editor{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

func (e *editor) TypedShortcut(s fyne.Shortcut) {
	if e.onShortcut != nil && e.onShortcut(s) {
		return
	}
	e.Entry.TypedShortcut(s)
}
