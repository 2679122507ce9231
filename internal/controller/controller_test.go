package controller

import (
	"io"
	"testing"
	"time"

	"tileland/internal/config"
	"tileland/internal/genpool"
	"tileland/internal/render"
	"tileland/internal/world"
	"tileland/internal/worldgen"
)

type scriptedInput struct {
	events [][]InputEvent
	i      int
}

func (s *scriptedInput) Poll() []InputEvent {
	if s.i >= len(s.events) {
		return nil
	}
	ev := s.events[s.i]
	s.i++
	return ev
}

func TestControllerRunsUntilQuit(t *testing.T) {
	w := world.New(worldgen.NewFlat())
	pool := genpool.New(w, 1, nil)
	loop := render.NewLoop(w, io.Discard, 1000)
	settings := config.DefaultSettings()
	settings.SetTargetTPS(200)

	input := &scriptedInput{events: [][]InputEvent{
		{{Kind: "key", Key: "right"}},
		{{Kind: "key", Key: "quit"}},
	}}

	ctrl := New(w, pool, loop, input, settings, nil)

	done := make(chan struct{})
	go func() {
		ctrl.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("controller did not stop after quit event")
	}
}

func TestRequestPreloadRingSkipsPending(t *testing.T) {
	w := world.New(worldgen.NewFlat())
	pool := genpool.New(w, 1, nil)
	defer pool.Shutdown()
	loop := render.NewLoop(w, io.Discard, 1000)
	settings := config.DefaultSettings()

	ctrl := New(w, pool, loop, &scriptedInput{}, settings, nil)
	ctrl.view = render.ViewState{Width: 4, Height: 4}

	ctrl.requestPreloadRing()
	if len(ctrl.pending) == 0 {
		t.Fatal("expected some chunks to be requested")
	}
	firstCount := len(ctrl.pending)

	// Requesting again with nothing drained should not grow pending.
	ctrl.requestPreloadRing()
	if len(ctrl.pending) != firstCount {
		t.Fatalf("expected pending count to stay %d, got %d", firstCount, len(ctrl.pending))
	}
}
