package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/kahvecikaan/product-manager/internal/console"
)

// scriptConsole replays operator input and records everything shown
type scriptConsole struct {
	script []interface{}
	out    strings.Builder
	pauses int
	clears int
}

func newScriptConsole(script ...interface{}) *scriptConsole {
	return &scriptConsole{script: script}
}

func (c *scriptConsole) next() (interface{}, error) {
	if len(c.script) == 0 {
		return nil, io.EOF
	}
	item := c.script[0]
	c.script = c.script[1:]
	return item, nil
}

func (c *scriptConsole) ReadKey() (console.Key, error) {
	item, err := c.next()
	if err != nil {
		return 0, err
	}
	switch v := item.(type) {
	case console.Key:
		return v, nil
	case rune:
		return console.Key(v), nil
	default:
		return 0, fmt.Errorf("script: want a key, got %#v", item)
	}
}

func (c *scriptConsole) ReadLine() (string, error) {
	item, err := c.next()
	if err != nil {
		return "", err
	}
	line, ok := item.(string)
	if !ok {
		return "", fmt.Errorf("script: want a line, got %#v", item)
	}
	c.out.WriteString(line + "\n")
	return line, nil
}

func (c *scriptConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *scriptConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *scriptConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }

func (c *scriptConsole) Success(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}

func (c *scriptConsole) Failure(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}

func (c *scriptConsole) Warning(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}

func (c *scriptConsole) Clear()             { c.clears++ }
func (c *scriptConsole) ShowCursor(bool)    {}
func (c *scriptConsole) SetTitle(string)    {}
func (c *scriptConsole) Pause()             { c.pauses++ }
func (c *scriptConsole) Output() string     { return c.out.String() }
func (c *scriptConsole) Count(s string) int { return strings.Count(c.out.String(), s) }
