package voxel

import (
	"errors"
	"fmt"

	"tileland/internal/coords"
)

// Width, Height and Depth are the fixed dimensions of a chunk along X, Y
// and Z respectively. Area is the number of tiles in one XY layer; Volume
// is the total tile count of a chunk.
const (
	Width  = coords.Dimension
	Height = coords.Dimension
	Depth  = coords.Dimension
	Area   = Width * Height
	Volume = Area * Depth
)

// ErrRange is returned when local coordinates fall outside [0, Dimension)
// on any axis.
var ErrRange = errors.New("voxel: local coordinate out of range")

// Chunk is a fixed Width x Height x Depth array of tiles anchored at a
// ChunkCoord. Tiles are stored in a single linear array indexed
// lx + ly*Width + lz*Width*Height (X varies fastest, then Y, then Z) —
// this exact layout is part of the on-disk chunk format and must not
// change independently of the file format version.
type Chunk struct {
	Coord coords.ChunkCoord
	tiles [Volume]Tile
}

// NewChunk allocates a chunk at coord filled entirely with Void tiles.
func NewChunk(coord coords.ChunkCoord) *Chunk {
	c := &Chunk{Coord: coord}
	voidTile := NewTile(Void)
	for i := range c.tiles {
		c.tiles[i] = voidTile
	}
	return c
}

func localIndex(lx, ly, lz int) (int, error) {
	if lx < 0 || lx >= Width || ly < 0 || ly >= Height || lz < 0 || lz >= Depth {
		return 0, fmt.Errorf("%w: (%d,%d,%d)", ErrRange, lx, ly, lz)
	}
	return lx + ly*Width + lz*Area, nil
}

// GetLocal returns the tile at local coordinates (lx, ly, lz).
func (c *Chunk) GetLocal(lx, ly, lz int) (Tile, error) {
	idx, err := localIndex(lx, ly, lz)
	if err != nil {
		return Tile{}, err
	}
	return c.tiles[idx], nil
}

// SetLocal overwrites the tile at local coordinates (lx, ly, lz).
func (c *Chunk) SetLocal(lx, ly, lz int, t Tile) error {
	idx, err := localIndex(lx, ly, lz)
	if err != nil {
		return err
	}
	c.tiles[idx] = t
	return nil
}

// Tiles returns the chunk's backing tile array in on-disk order, for the
// persistence codec to serialize directly.
func (c *Chunk) Tiles() [Volume]Tile {
	return c.tiles
}

// SetTiles replaces the chunk's entire tile array, for the persistence
// codec to populate a freshly-allocated chunk from disk.
func (c *Chunk) SetTiles(tiles [Volume]Tile) {
	c.tiles = tiles
}
