package components

import (
	"advanced-notepad/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// FindReplace is the modal used by the Find & Replace command. The pattern
// is a regular expression unless "Match literally" is checked.
type FindReplace struct {
	findEntry    *widget.Entry
	replaceEntry *widget.Entry
	literalCheck *widget.Check
	replaceBtn   *widget.Button
	dialog       dialog.Dialog

	onReplace func(req services.ReplaceRequest) bool
}

// NewFindReplace builds the dialog for parent without showing it
func NewFindReplace(parent fyne.Window) *FindReplace {
	fr := &FindReplace{}
	fr.createComponents()
	fr.dialog = dialog.NewCustom("Find & Replace", "Close", fr.buildLayout(), parent)
	fr.dialog.Resize(fyne.NewSize(420, 0))
	return fr
}

func (fr *FindReplace) createComponents() {
	fr.findEntry = widget.NewEntry()
	fr.findEntry.SetPlaceHolder("Find what")
	fr.replaceEntry = widget.NewEntry()
	fr.replaceEntry.SetPlaceHolder("Replace with")
	fr.literalCheck = widget.NewCheck("Match literally", nil)
	fr.replaceBtn = widget.NewButton("Replace All", fr.submit)
	fr.replaceBtn.Importance = widget.HighImportance
}

func (fr *FindReplace) buildLayout() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Find", fr.findEntry),
		widget.NewFormItem("Replace", fr.replaceEntry),
	)
	return container.NewVBox(form, fr.literalCheck, fr.replaceBtn)
}

// Show opens the dialog. onReplace reports whether the document was
// changed; the dialog closes only then.
func (fr *FindReplace) Show(onReplace func(req services.ReplaceRequest) bool) {
	fr.onReplace = onReplace
	fr.dialog.Show()
}

func (fr *FindReplace) Hide() {
	fr.dialog.Hide()
}

func (fr *FindReplace) Request() services.ReplaceRequest {
	return services.ReplaceRequest{
		Find:    fr.findEntry.Text,
		Replace: fr.replaceEntry.Text,
		Literal: fr.literalCheck.Checked,
	}
}

func (fr *FindReplace) submit() {
	if fr.onReplace == nil {
		return
	}
	if fr.onReplace(fr.Request()) {
		fr.dialog.Hide()
	}
}
