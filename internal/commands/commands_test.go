package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableExec(t *testing.T) {
	table := NewTable()
	var got []Command
	table.Register(New, func(c Command) { got = append(got, c) })
	table.Register(SetFontSize, func(c Command) { got = append(got, c) })

	assert.True(t, table.Exec(Of(New)))
	assert.True(t, table.Exec(FontSize(24)))
	assert.False(t, table.Exec(Of(Paste)))

	assert.Equal(t, []Command{{ID: New}, {ID: SetFontSize, FontSize: 24}}, got)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "Find & Replace", Of(FindReplace).String())
	assert.Equal(t, "Font Size 16", FontSize(16).String())
	assert.Equal(t, "ID(99)", ID(99).String())
}
