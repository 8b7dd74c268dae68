// Package console reads operator input and renders output on a terminal
package console

import (
	"errors"
	"unicode"
)

// Key is a single keypress
type Key rune

const (
	KeyEscape    Key = 0x1b
	KeyEnter     Key = '\r'
	KeyInterrupt Key = 0x03
)

// ErrInterrupted is returned by ReadKey when the operator presses Ctrl-C
var ErrInterrupted = errors.New("interrupted")

// Is reports whether k is r, ignoring letter case
func (k Key) Is(r rune) bool {
	return unicode.ToLower(rune(k)) == unicode.ToLower(r)
}

// Console is everything the menus need from the operator's terminal
type Console interface {
	// ReadKey blocks until a single key is pressed; it is not echoed
	ReadKey() (Key, error)
	// ReadLine blocks until a line of text is entered
	ReadLine() (string, error)

	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	Success(format string, a ...interface{})
	Failure(format string, a ...interface{})
	Warning(format string, a ...interface{})

	Clear()
	ShowCursor(visible bool)
	SetTitle(title string)

	// Pause keeps the last message on screen for a moment
	Pause()
}
