package controller

// InputEvent is one unit of input the controller reacts to per tick.
type InputEvent struct {
	Kind string // "key" or "mouse"
	Key  string // e.g. "up", "down", "left", "right", "quit", "toggle-stats"
	X, Y int     // mouse cell coordinates, when Kind == "mouse"
}

// InputSource is the external collaborator that turns raw terminal input
// into InputEvents. A real implementation (cmd/tileland/ttyinput.go) reads
// a raw tty via golang.org/x/term; tests use a scripted fake.
type InputSource interface {
	Poll() []InputEvent
}
