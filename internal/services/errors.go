package services

import "fmt"

const (
	OpRead  = "opening"
	OpWrite = "saving"
)

// IOError is the single error kind for any failure to read or write a chosen file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error %s file: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("error %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// PatternError reports a find pattern that is not a valid regular expression
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid find pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
