package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Terminal is a Console on top of the process's stdin and stdout.
// When stdin is not a terminal, every line of input counts as one keypress,
// which lets the program be driven by a script.
type Terminal struct {
	in          *os.File
	out         io.Writer
	reader      *bufio.Reader
	interactive bool
	ansi        bool
	pause       time.Duration

	success *color.Color
	failure *color.Color
	warning *color.Color
}

// NewTerminal creates a Terminal reading from in and writing to out.
// pause is how long Pause blocks.
func NewTerminal(in, out *os.File, pause time.Duration) *Terminal {
	return &Terminal{
		in:          in,
		out:         out,
		reader:      bufio.NewReader(in),
		interactive: isTerminal(in),
		ansi:        isTerminal(out),
		pause:       pause,
		success:     color.New(color.FgGreen),
		failure:     color.New(color.FgRed),
		warning:     color.New(color.FgYellow),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) ReadKey() (Key, error) {
	if !t.interactive || t.reader.Buffered() > 0 {
		return t.readStreamKey()
	}

	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("switching terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	// escape sequences (arrows, function keys) arrive in one read and are
	// reported by their first byte
	buf := make([]byte, 16)
	n, err := t.in.Read(buf)
	if err != nil {
		return 0, err
	}

	r, _ := utf8.DecodeRune(buf[:n])
	if Key(r) == KeyInterrupt {
		return KeyInterrupt, ErrInterrupted
	}

	return Key(r), nil
}

// readStreamKey takes one line of the stream as one keypress: the first
// character of the next non-empty line
func (t *Terminal) readStreamKey() (Key, error) {
	for {
		line, err := t.reader.ReadString('\n')
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			r, _ := utf8.DecodeRuneInString(line)
			return Key(r), nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (t *Terminal) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Print(a ...interface{}) {
	fmt.Fprint(t.out, a...)
}

func (t *Terminal) Printf(format string, a ...interface{}) {
	fmt.Fprintf(t.out, format, a...)
}

func (t *Terminal) Println(a ...interface{}) {
	fmt.Fprintln(t.out, a...)
}

func (t *Terminal) Success(format string, a ...interface{}) {
	t.success.Fprintln(t.out, fmt.Sprintf(format, a...))
}

func (t *Terminal) Failure(format string, a ...interface{}) {
	t.failure.Fprintln(t.out, fmt.Sprintf(format, a...))
}

func (t *Terminal) Warning(format string, a ...interface{}) {
	t.warning.Fprintln(t.out, fmt.Sprintf(format, a...))
}

func (t *Terminal) Clear() {
	if t.ansi {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

func (t *Terminal) ShowCursor(visible bool) {
	if !t.ansi {
		return
	}
	if visible {
		fmt.Fprint(t.out, "\033[?25h")
		return
	}
	fmt.Fprint(t.out, "\033[?25l")
}

func (t *Terminal) SetTitle(title string) {
	if t.ansi {
		fmt.Fprintf(t.out, "\033]0;%s\007", title)
	}
}

func (t *Terminal) Pause() {
	time.Sleep(t.pause)
}
