package models

// ChangeListener observes every content change of a Document
type ChangeListener func(text string)

// Document is the text buffer being edited together with the location it was
// last opened from or saved to. It is owned by the UI goroutine.
type Document struct {
	text      string
	path      string
	listeners []ChangeListener
}

// NewDocument creates an empty, untitled document
func NewDocument() *Document {
	return &Document{}
}

// Text returns the full content
func (d *Document) Text() string {
	return d.text
}

// SetText replaces the whole content and notifies listeners when it differs
func (d *Document) SetText(text string) {
	if text == d.text {
		return
	}
	d.text = text
	d.notify()
}

// Reset clears the content. The path is kept so Save still offers it.
func (d *Document) Reset() {
	d.SetText("")
}

// Path returns the last chosen file location, or "" for an untitled document
func (d *Document) Path() string {
	return d.path
}

// SetPath records the file location chosen through the file gateway
func (d *Document) SetPath(path string) {
	d.path = path
}

// OnChange registers a listener; listeners run synchronously in registration order
func (d *Document) OnChange(listener ChangeListener) {
	d.listeners = append(d.listeners, listener)
}

func (d *Document) notify() {
	for _, listener := range d.listeners {
		listener(d.text)
	}
}
