package term

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// watchResize notifies on events whenever the controlling terminal
// receives SIGWINCH, until ctx is cancelled. It runs in its own
// goroutine; the caller drains events from its own goroutine via select.
func watchResize(ctx context.Context, events chan<- Event) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	defer signal.Stop(sig)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			select {
			case events <- Event{Kind: EventResize}:
			case <-ctx.Done():
				return
			}
		}
	}
}
