package main

import (
	"os"

	"golang.org/x/term"

	"tileland/internal/controller"
)

// ttyInput reads raw keystrokes off stdin in a background goroutine and
// translates them into controller.InputEvents. Ground: the teacher's
// cmd/mini-mc/input.go (a dedicated input-setup file separate from
// main.go) for the split, adapted from GLFW key callbacks to raw-tty byte
// parsing since this viewer has no windowing system under it.
type ttyInput struct {
	oldState *term.State
	bytesCh  chan byte
	closeCh  chan struct{}
}

func newTTYInput() (*ttyInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	t := &ttyInput{
		oldState: oldState,
		bytesCh:  make(chan byte, 256),
		closeCh:  make(chan struct{}),
	}
	go t.readLoop()
	return t, nil
}

func (t *ttyInput) readLoop() {
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case t.bytesCh <- buf[i]:
			case <-t.closeCh:
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-t.closeCh:
			return
		default:
		}
	}
}

// Poll drains whatever keystrokes have arrived since the last call without
// blocking, translating raw bytes (including ANSI arrow-key escape
// sequences) into controller.InputEvents.
func (t *ttyInput) Poll() []controller.InputEvent {
	var raw []byte
	for {
		select {
		case b := <-t.bytesCh:
			raw = append(raw, b)
		default:
			return parseKeys(raw)
		}
	}
}

// Close restores the terminal's original mode and stops the read loop.
func (t *ttyInput) Close() error {
	close(t.closeCh)
	if t.oldState != nil {
		return term.Restore(int(os.Stdin.Fd()), t.oldState)
	}
	return nil
}

func parseKeys(raw []byte) []controller.InputEvent {
	var events []controller.InputEvent
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch {
		case b == 0x1b && i+2 < len(raw) && raw[i+1] == '[':
			switch raw[i+2] {
			case 'A':
				events = append(events, controller.InputEvent{Kind: "key", Key: "up"})
			case 'B':
				events = append(events, controller.InputEvent{Kind: "key", Key: "down"})
			case 'C':
				events = append(events, controller.InputEvent{Kind: "key", Key: "right"})
			case 'D':
				events = append(events, controller.InputEvent{Kind: "key", Key: "left"})
			}
			i += 2
		case b == 'q' || b == 'Q' || b == 0x03:
			events = append(events, controller.InputEvent{Kind: "key", Key: "quit"})
		case b == '[':
			events = append(events, controller.InputEvent{Kind: "key", Key: "layer-down"})
		case b == ']':
			events = append(events, controller.InputEvent{Kind: "key", Key: "layer-up"})
		case b == 't' || b == 'T':
			events = append(events, controller.InputEvent{Kind: "key", Key: "toggle-stats"})
		}
	}
	return events
}
