package persist

import (
	"path/filepath"
	"testing"

	"tileland/internal/coords"
	"tileland/internal/world"
	"tileland/internal/worldgen"
)

func buildTestWorld() *world.World {
	w := world.New(worldgen.NewFlat())
	w.GetOrLoadChunk(coords.ChunkCoord{X: 0, Y: 0, Z: 0})
	w.GetOrLoadChunk(coords.ChunkCoord{X: 1, Y: 0, Z: 0})
	w.GetOrLoadChunk(coords.ChunkCoord{X: -1, Y: 2, Z: 3})
	return w
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.tlwf")
	w := buildTestWorld()
	meta := Metadata{Seed: 7, Frequency: 0.05, NoiseType: "perlin", FractalType: "fbm", Octaves: 3, Lacunarity: 2.0, Gain: 0.5}

	if err := Save(w, meta, path); err != nil {
		t.Fatal(err)
	}

	loaded, loadedMeta, err := Load(path, worldgen.NewFlat())
	if err != nil {
		t.Fatal(err)
	}
	if loadedMeta != meta {
		t.Fatalf("metadata mismatch: got %+v, want %+v", loadedMeta, meta)
	}
	if loaded.ModCount() != 3 {
		t.Fatalf("expected 3 loaded chunks, got modCount %d", loaded.ModCount())
	}
}

func TestSaveLoadChunkContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.tlwf")
	w := buildTestWorld()
	meta := Metadata{Seed: 1, NoiseType: "flat"}
	if err := Save(w, meta, path); err != nil {
		t.Fatal(err)
	}
	loaded, _, err := Load(path, worldgen.NewFlat())
	if err != nil {
		t.Fatal(err)
	}

	coord := coords.ChunkCoord{X: 0, Y: 0, Z: 0}
	want := w.GetChunk(coord)
	got := loaded.GetChunk(coord)
	if got == nil {
		t.Fatal("expected chunk to round-trip")
	}
	if want.Tiles() != got.Tiles() {
		t.Fatal("chunk tiles did not round-trip byte-for-byte")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.tlwf"), worldgen.NewFlat())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadSaveSummaryNoChunkDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.tlwf")
	w := buildTestWorld()
	if err := Save(w, Metadata{Seed: 5, NoiseType: "flat"}, path); err != nil {
		t.Fatal(err)
	}
	summary, err := ReadSaveSummary(path)
	if err != nil {
		t.Fatal(err)
	}
	if summary.ChunkCount != 3 {
		t.Fatalf("expected 3 chunks, got %d", summary.ChunkCount)
	}
	if summary.Metadata.Seed != 5 {
		t.Fatalf("expected seed 5, got %d", summary.Metadata.Seed)
	}
}

func TestSaveMapLoadMapCompressedFallback(t *testing.T) {
	dir := t.TempDir()
	w := buildTestWorld()
	meta := Metadata{Seed: 3, NoiseType: "flat"}
	if err := SaveMap(w, meta, dir, "slot0", false, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSaveSummary(TlwfPath(dir, "slot0")); err == nil {
		t.Fatal("expected .tlwf to have been removed after compression")
	}
	loaded, loadedMeta, err := LoadMap(dir, "slot0", worldgen.NewFlat())
	if err != nil {
		t.Fatal(err)
	}
	if loadedMeta != meta {
		t.Fatalf("metadata mismatch: got %+v, want %+v", loadedMeta, meta)
	}
	if loaded.GetChunk(coords.ChunkCoord{X: 0, Y: 0, Z: 0}) == nil {
		t.Fatal("expected chunk to survive compressed round trip")
	}
}
