package world

import (
	"errors"
	"testing"

	"tileland/internal/coords"
	"tileland/internal/voxel"
	"tileland/internal/worldgen"
)

func TestGetOrLoadChunkGeneratesOnce(t *testing.T) {
	w := New(worldgen.NewFlat())
	coord := coords.ChunkCoord{X: 1, Y: 0, Z: -1}

	c1 := w.GetOrLoadChunk(coord)
	c2 := w.GetOrLoadChunk(coord)
	if c1 != c2 {
		t.Fatal("expected the same chunk instance on repeated load")
	}
	if w.ModCount() != 1 {
		t.Fatalf("expected modCount 1, got %d", w.ModCount())
	}
}

func TestAddChunkFirstWriteWins(t *testing.T) {
	w := New(worldgen.NewFlat())
	coord := coords.ChunkCoord{}

	a := voxel.NewChunk(coord)
	b := voxel.NewChunk(coord)
	if !w.AddChunk(coord, a) {
		t.Fatal("expected first AddChunk to win")
	}
	if w.AddChunk(coord, b) {
		t.Fatal("expected second AddChunk to lose")
	}
	if w.GetChunk(coord) != a {
		t.Fatal("store should keep the first-installed chunk")
	}
}

func TestGetTileNotLoaded(t *testing.T) {
	w := New(worldgen.NewFlat())
	_, err := w.GetTile(coords.WorldCoord{X: 100, Y: 100, Z: 100})
	if !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestSetTileTerrainDoesNotRefreshDerivedFields(t *testing.T) {
	w := New(worldgen.NewFlat())
	wc := coords.WorldCoord{X: 0, Y: 0, Z: -1}

	// Load the chunk first so the tile starts as whatever Flat generated.
	w.GetOrLoadChunk(coords.ChunkOfCoord(wc))
	if err := w.SetTileTerrain(wc, voxel.Water); err != nil {
		t.Fatal(err)
	}
	tile, err := w.GetTile(wc)
	if err != nil {
		t.Fatal(err)
	}
	if tile.Terrain != voxel.Water {
		t.Fatalf("expected terrain Water, got %v", tile.Terrain)
	}
	// Grass's CanEnterSameLevel (true) must survive unchanged even though
	// Water's catalog entry says false — this is the documented quirk.
	if !tile.CanEnterSameLevel {
		t.Fatal("SetTileTerrain must not refresh CanEnterSameLevel")
	}
}
