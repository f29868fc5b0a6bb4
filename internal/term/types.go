package term

// EventKind classifies an Event decoded off stdin.
type EventKind int

const (
	// EventKey is a plain keystroke; Event.Rune holds it.
	EventKey EventKind = iota
	// EventScroll is a mouse-wheel tick; Event.DY is ±1.
	EventScroll
	// EventClick is a left mouse-button click; Event.X/Y hold the
	// 0-based terminal column/row it landed on.
	EventClick
	// EventResize signals the controlling terminal changed size.
	EventResize
)

// Event is one decoded unit of interactive input: a keystroke, a scroll
// tick, a click, or a resize notification.
type Event struct {
	Kind EventKind
	Rune rune
	DY   int
	X, Y int
}

// ScrollStep is how many cells an arrow key, a/d/z/s, or one wheel tick
// moves the viewport.
const ScrollStep = 3

// DrawMargin keeps one column free on the right so a wide canvas never
// looks flush against the terminal edge.
const DrawMargin = 1
