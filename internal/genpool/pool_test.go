package genpool

import (
	"testing"
	"time"

	"tileland/internal/coords"
	"tileland/internal/voxel"
)

type fakeWorld struct{}

func (fakeWorld) CreateChunkIsolated(coord coords.ChunkCoord) *voxel.Chunk {
	return voxel.NewChunk(coord)
}

func TestRequestAndDrain(t *testing.T) {
	p := New(fakeWorld{}, 2, nil)
	defer p.Shutdown()

	want := 10
	for i := 0; i < want; i++ {
		if !p.RequestChunk(coords.ChunkCoord{X: i}) {
			t.Fatalf("request %d unexpectedly dropped", i)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	got := 0
	for time.Now().Before(deadline) && got < want {
		got += len(p.DrainFinished())
		if got < want {
			time.Sleep(time.Millisecond)
		}
	}
	if got != want {
		t.Fatalf("expected %d finished chunks, got %d", want, got)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	p := New(fakeWorld{}, 1, nil)
	p.Shutdown()
	p.Shutdown()
}
