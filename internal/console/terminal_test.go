package console

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScriptedTerminal(t *testing.T, input string) (*Terminal, *os.File) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	_, err = io.WriteString(w, input)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })

	return NewTerminal(r, out, 0), out
}

func TestTerminalReadsKeysAndLinesFromStream(t *testing.T) {
	term, _ := newScriptedTerminal(t, "1\nShirt\r\n\nyes\nå")

	key, err := term.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key('1'), key)

	line, err := term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Shirt", line)

	key, err = term.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key('y'), key, "empty lines are skipped, the rest of the line is dropped")

	key, err = term.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key('å'), key)

	_, err = term.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestTerminalReadLineWithoutTrailingNewline(t *testing.T) {
	term, _ := newScriptedTerminal(t, "AB1")

	line, err := term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "AB1", line)

	_, err = term.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestTerminalSkipsEscapeSequencesWhenNotATerminal(t *testing.T) {
	term, out := newScriptedTerminal(t, "")

	term.Clear()
	term.ShowCursor(true)
	term.SetTitle("Product-Manager")
	term.Println("1. New product")
	term.Success("Product %s", "saved")

	b, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "\033[H")
	assert.Contains(t, string(b), "1. New product\n")
	assert.Contains(t, string(b), "Product saved")
}

func TestKeyIs(t *testing.T) {
	assert.True(t, Key('r').Is('R'))
	assert.True(t, Key('R').Is('r'))
	assert.True(t, Key('1').Is('1'))
	assert.False(t, Key('n').Is('y'))
	assert.False(t, KeyEscape.Is('r'))
}
