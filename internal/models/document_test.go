package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentNotifiesOnChange(t *testing.T) {
	doc := NewDocument()
	var seen []string
	doc.OnChange(func(text string) { seen = append(seen, text) })

	doc.SetText("hello")
	doc.SetText("hello")
	doc.SetText("hello world")
	doc.Reset()

	assert.Equal(t, []string{"hello", "hello world", ""}, seen)
	assert.Equal(t, "", doc.Text())
}

func TestDocumentResetKeepsPath(t *testing.T) {
	doc := NewDocument()
	doc.SetPath("/tmp/notes.txt")
	doc.SetText("draft")

	doc.Reset()

	assert.Equal(t, "/tmp/notes.txt", doc.Path())
	assert.Empty(t, doc.Text())
}

func TestDocumentListenersRunInOrder(t *testing.T) {
	doc := NewDocument()
	var order []int
	doc.OnChange(func(string) { order = append(order, 1) })
	doc.OnChange(func(string) { order = append(order, 2) })

	doc.SetText("x")

	assert.Equal(t, []int{1, 2}, order)
}
