package render

import (
	"bytes"
	"context"
	"testing"
	"time"

	"tileland/internal/coords"
	"tileland/internal/world"
	"tileland/internal/worldgen"
)

func TestRenderFrameChangesOnlyWhenContentChanges(t *testing.T) {
	w := world.New(worldgen.NewFlat())
	w.GetOrLoadChunk(coords.ChunkCoord{})
	w.GetOrLoadChunk(coords.ChunkCoord{Z: -1})

	var buf bytes.Buffer
	l := NewLoop(w, &buf, 1000)
	l.SetView(ViewState{Width: 4, Height: 2})

	l.renderFrame()
	firstLen := buf.Len()
	if firstLen == 0 {
		t.Fatal("expected first frame to write something")
	}

	buf.Reset()
	l.renderFrame()
	if buf.Len() != 0 {
		t.Fatal("expected unchanged frame to be suppressed")
	}

	// Layer -1 is Grass under the Flat generator, unlike the Void layer 0.
	l.SetView(ViewState{Width: 4, Height: 2, CurrentZ: -1})
	l.renderFrame()
	if buf.Len() == 0 {
		t.Fatal("expected frame to re-render after the view changed")
	}
}

func TestStartStopIdempotent(t *testing.T) {
	w := world.New(worldgen.NewFlat())
	var buf bytes.Buffer
	l := NewLoop(w, &buf, 500)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l.Start(ctx)
	l.Start(ctx) // second Start must be a no-op, not a second goroutine
	time.Sleep(10 * time.Millisecond)
	l.Stop()
	l.Stop() // idempotent
}
