package input

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// readChunk is the most bytes taken from the terminal in one read. A key and
// its escape sequence always arrive together.
const readChunk = 64

// KeyReader reads single keypresses from a terminal in raw mode.
type KeyReader struct {
	file     *os.File
	oldState *term.State

	// pending holds bytes read but not yet decoded
	pending []byte
}

// NewKeyReader puts the terminal behind f into raw mode.
// Call Close to restore it.
func NewKeyReader(f *os.File) (*KeyReader, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &KeyReader{file: f, oldState: oldState}, nil
}

// Close restores the terminal state.
func (k *KeyReader) Close() error {
	if k.oldState == nil {
		return nil
	}
	err := term.Restore(int(k.file.Fd()), k.oldState)
	k.oldState = nil
	return err
}

// readByte returns the next byte, reading from the terminal only when
// nothing is pending
func (k *KeyReader) readByte() (byte, error) {
	for len(k.pending) == 0 {
		buf := make([]byte, readChunk)
		n, err := k.file.Read(buf)
		k.pending = append(k.pending, buf[:n]...)
		if n == 0 && err != nil {
			return 0, err
		}
	}
	b := k.pending[0]
	k.pending = k.pending[1:]
	return b, nil
}

// peekByte returns the next pending byte without blocking
func (k *KeyReader) peekByte() (byte, bool) {
	if len(k.pending) == 0 {
		return 0, false
	}
	return k.pending[0], true
}

// ReadKey blocks until one key is pressed and returns its binding code.
// Unknown escape sequences come back as an empty code.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.readByte()
	if err != nil {
		return "", err
	}
	if b != 0x1b {
		return byteCode(b), nil
	}
	return k.readEscape()
}

// readEscape decodes the rest of an escape sequence. An ESC that is not
// followed by '[' or 'O' in the same read is the Escape key itself; the byte
// after it is left for the next ReadKey.
func (k *KeyReader) readEscape() (string, error) {
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	b2, ok := k.peekByte()
	if !ok || (b2 != '[' && b2 != 'O') {
		return "escape", nil
	}
	k.pending = k.pending[1:]

	var params []byte
	for {
		b, err := k.readByte()
		if err != nil {
			return "", err
		}
		if b >= 0x40 && b <= 0x7e {
			return escapeCode(string(params), b), nil
		}
		params = append(params, b)
	}
}

// byteCode names a single raw byte.
func byteCode(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == '\r' || b == '\n':
		return "enter"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b >= 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// escapeCode names a CSI/SS3 sequence from its parameters and final byte.
func escapeCode(params string, final byte) string {
	switch final {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case '~':
		if params == "19" {
			return "f8"
		}
	}
	return ""
}
