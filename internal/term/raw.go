package term

import (
	"os"

	"golang.org/x/term"
)

// Terminal wraps the controlling TTY's file descriptor in raw mode, plus
// the saved state needed to put it back the way it was found.
type Terminal struct {
	fd    int
	saved *term.State
}

// Open puts fd (normally os.Stdin.Fd()) into raw mode: no line buffering,
// no local echo, no signal-generating control characters — every byte
// the user types reaches the event loop directly for decoding. Returns
// ErrNotATerminal if fd is not a TTY.
func Open(fd int) (*Terminal, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotATerminal
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Terminal{fd: fd, saved: saved}, nil
}

// Close restores the terminal to the mode Open found it in. Safe to call
// on a nil *Terminal (a no-op), so callers can defer it unconditionally
// after a possibly-failed Open.
func (t *Terminal) Close() error {
	if t == nil {
		return nil
	}
	return term.Restore(t.fd, t.saved)
}

// Size reports the current terminal dimensions in columns, rows.
func (t *Terminal) Size() (cols, rows int, err error) {
	return term.GetSize(t.fd)
}

// StdinFD is the file descriptor Open is normally called with.
func StdinFD() int {
	return int(os.Stdin.Fd())
}
