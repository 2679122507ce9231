// Package world implements the chunked, infinitely-extensible map: a
// thread-safe store of chunks keyed by chunk coordinate, plus the tile
// operations that read and write through chunk boundaries.
package world

import (
	"errors"
	"fmt"
	"sync"

	"tileland/internal/coords"
	"tileland/internal/voxel"
	"tileland/internal/worldgen"
)

// ErrNotLoaded is returned by read operations that refuse to generate a
// chunk on demand (GetTile) when the chunk addressed isn't resident.
var ErrNotLoaded = errors.New("world: chunk not loaded")

// World is the chunk store. Ground: internal/world/chunk_store.go in the
// teacher repo (RWMutex-guarded map, double-checked locking on
// GetOrLoadChunk, first-write-wins AddChunk) generalized from the
// teacher's client-side streaming chunk store (with its per-column Y
// index for XZ radius queries, a concern that belongs to the controller's
// preload ring here, not this layer) down to the spec's flatter contract.
type World struct {
	mu       sync.RWMutex
	chunks   map[coords.ChunkCoord]*voxel.Chunk
	gen      worldgen.Generator
	modCount uint64
}

// New creates an empty world using gen to populate chunks it creates.
func New(gen worldgen.Generator) *World {
	return &World{
		chunks: make(map[coords.ChunkCoord]*voxel.Chunk),
		gen:    gen,
	}
}

// SetTerrainGenerator swaps the generator used by future GetOrLoadChunk
// and CreateChunkIsolated calls. Does not affect already-loaded chunks.
func (w *World) SetTerrainGenerator(gen worldgen.Generator) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen = gen
}

// GetChunk returns the chunk at coord, or nil if it isn't loaded. Pure
// lookup: never allocates or generates.
func (w *World) GetChunk(coord coords.ChunkCoord) *voxel.Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.chunks[coord]
}

// HasChunk reports whether coord is currently resident.
func (w *World) HasChunk(coord coords.ChunkCoord) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.chunks[coord]
	return ok
}

// GetOrLoadChunk returns the chunk at coord, generating and installing it
// if missing. Not safe for concurrent callers racing on the same
// coordinate from multiple goroutines — callers that need that must use
// the genpool and AddChunk instead, which dedupes via first-write-wins.
func (w *World) GetOrLoadChunk(coord coords.ChunkCoord) *voxel.Chunk {
	w.mu.RLock()
	c, ok := w.chunks[coord]
	w.mu.RUnlock()
	if ok {
		return c
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.chunks[coord]; ok {
		return c
	}
	c = voxel.NewChunk(coord)
	w.gen.Generate(c)
	w.chunks[coord] = c
	w.modCount++
	return c
}

// CreateChunkIsolated generates a chunk at coord without touching the
// store — safe to call from any goroutine, including genpool workers,
// since it only reads the generator reference under the store's lock and
// then does all the (potentially expensive) generation work unlocked.
func (w *World) CreateChunkIsolated(coord coords.ChunkCoord) *voxel.Chunk {
	w.mu.RLock()
	gen := w.gen
	w.mu.RUnlock()

	c := voxel.NewChunk(coord)
	gen.Generate(c)
	return c
}

// AddChunk installs a pre-generated chunk if coord isn't already resident.
// First write wins: if another goroutine already installed a chunk at
// coord, chunk is discarded and AddChunk reports false.
func (w *World) AddChunk(coord coords.ChunkCoord, chunk *voxel.Chunk) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.chunks[coord]; ok {
		return false
	}
	w.chunks[coord] = chunk
	w.modCount++
	return true
}

// Iterate calls fn for every resident chunk under a read lock. fn must not
// call back into World. Iteration stops early if fn returns false.
func (w *World) Iterate(fn func(coords.ChunkCoord, *voxel.Chunk) bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for coord, c := range w.chunks {
		if !fn(coord, c) {
			return
		}
	}
}

// ModCount returns the number of chunk installs so far, for change
// detection by callers that cache derived state.
func (w *World) ModCount() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.modCount
}

// GetTile returns the tile at world coordinate wc. Returns ErrNotLoaded if
// the owning chunk isn't resident — GetTile never generates.
func (w *World) GetTile(wc coords.WorldCoord) (voxel.Tile, error) {
	chunkCoord := coords.ChunkOfCoord(wc)
	c := w.GetChunk(chunkCoord)
	if c == nil {
		return voxel.Tile{}, fmt.Errorf("%w: chunk %v", ErrNotLoaded, chunkCoord)
	}
	local := coords.LocalOfCoord(wc)
	return c.GetLocal(local.X, local.Y, local.Z)
}

// SetTileTerrain overwrites the Terrain field of the tile at wc, loading
// (and generating, if needed) the owning chunk first.
//
// This intentionally does NOT refresh CanEnterSameLevel, CanStandOnTop or
// MovementCost from the new terrain's catalog entry — matching
// original_source/src/Map.cpp's setTileTerrain, which documents the same
// quirk. Callers that need a fully consistent tile must replace it with
// voxel.NewTile(terrain) instead of calling SetTileTerrain.
func (w *World) SetTileTerrain(wc coords.WorldCoord, terrain voxel.TerrainType) error {
	chunkCoord := coords.ChunkOfCoord(wc)
	c := w.GetOrLoadChunk(chunkCoord)
	local := coords.LocalOfCoord(wc)
	tile, err := c.GetLocal(local.X, local.Y, local.Z)
	if err != nil {
		return err
	}
	tile.Terrain = terrain
	return c.SetLocal(local.X, local.Y, local.Z, tile)
}
