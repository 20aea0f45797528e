package commands

import (
	"fmt"
	"strconv"
)

type ID int

const (
	New ID = iota
	Open
	Save
	Exit
	Cut
	Copy
	Paste
	FindReplace
	ToggleDarkMode
	SetFontSize
)

var names = map[ID]string{
	New:            "New",
	Open:           "Open",
	Save:           "Save",
	Exit:           "Exit",
	Cut:            "Cut",
	Copy:           "Copy",
	Paste:          "Paste",
	FindReplace:    "Find & Replace",
	ToggleDarkMode: "Toggle Dark Mode",
	SetFontSize:    "Font Size",
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}

// Command is one discrete user action. FontSize is only read by SetFontSize.
type Command struct {
	ID       ID
	FontSize int
}

func (c Command) String() string {
	if c.ID == SetFontSize {
		return fmt.Sprintf("%s %d", c.ID, c.FontSize)
	}
	return c.ID.String()
}

func Of(id ID) Command {
	return Command{ID: id}
}

func FontSize(size int) Command {
	return Command{ID: SetFontSize, FontSize: size}
}

// Handler executes a single command
type Handler func(Command)

// Table maps command ids to their handlers
type Table struct {
	handlers map[ID]Handler
}

func NewTable() *Table {
	return &Table{handlers: make(map[ID]Handler)}
}

func (t *Table) Register(id ID, handler Handler) {
	t.handlers[id] = handler
}

// Exec runs the handler for cmd and reports whether one was registered
func (t *Table) Exec(cmd Command) bool {
	handler, ok := t.handlers[cmd.ID]
	if !ok {
		return false
	}
	handler(cmd)
	return true
}
