// Package term drives the interactive side of the shell: putting the
// controlling terminal into raw mode, watching for resizes, decoding
// keystrokes and SGR mouse sequences, and running the blocking event loop
// that recomputes the highlight and redraws on every input.
//
// This is the one package in this module that legitimately uses
// goroutines — a SIGWINCH watcher and a blocking stdin reader, each
// feeding a channel the event loop drains with a single select. The
// layout, canvas and highlight packages are one-shot and single-threaded;
// nothing there needs this.
package term
