package voxel

import (
	"errors"
	"testing"

	"tileland/internal/coords"
)

func TestNewChunkIsVoid(t *testing.T) {
	c := NewChunk(coords.ChunkCoord{})
	tile, err := c.GetLocal(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tile.Terrain != Void {
		t.Fatalf("expected Void, got %v", tile.Terrain)
	}
}

func TestSetGetLocalRoundTrip(t *testing.T) {
	c := NewChunk(coords.ChunkCoord{})
	grass := NewTile(Grass)
	if err := c.SetLocal(3, 7, 15, grass); err != nil {
		t.Fatal(err)
	}
	got, err := c.GetLocal(3, 7, 15)
	if err != nil {
		t.Fatal(err)
	}
	if got.Terrain != Grass {
		t.Fatalf("expected Grass, got %v", got.Terrain)
	}
	// Neighboring cells along each axis must remain untouched.
	for _, p := range [][3]int{{2, 7, 15}, {3, 6, 15}, {3, 7, 14}} {
		neighbor, err := c.GetLocal(p[0], p[1], p[2])
		if err != nil {
			t.Fatal(err)
		}
		if neighbor.Terrain != Void {
			t.Fatalf("neighbor %v was overwritten: %v", p, neighbor.Terrain)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	c := NewChunk(coords.ChunkCoord{})
	if _, err := c.GetLocal(-1, 0, 0); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
	if _, err := c.GetLocal(0, Height, 0); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
}

func TestTerrainCatalogFallback(t *testing.T) {
	p := PropertiesOf(TerrainType(250))
	if p.Glyph != "?" {
		t.Fatalf("expected Unknown fallback glyph, got %q", p.Glyph)
	}
}

func TestLightScaling(t *testing.T) {
	tile := NewTile(Grass)
	if tile.EffectiveForeground() != (RGB{0, 180, 0}) {
		t.Fatalf("full light should pass color through unchanged, got %v", tile.EffectiveForeground())
	}
	tile.LightLevel = 0
	fg := tile.EffectiveForeground()
	if fg.G == 0 || fg.G >= 180 {
		t.Fatalf("zero light should dim to ~10%%, got %v", fg)
	}
}
