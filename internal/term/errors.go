package term

import "errors"

// ErrNotATerminal is returned by Open when the file descriptor it is given
// is not backed by a TTY, so raw mode cannot be entered.
var ErrNotATerminal = errors.New("term: stdin is not a terminal")
