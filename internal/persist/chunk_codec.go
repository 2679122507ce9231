package persist

import (
	"fmt"

	"tileland/internal/voxel"
)

// tileEncodedSize is the on-disk size of one serialized tile: terrain tag
// (1 byte), a packed bitfield of the three boolean fields (1 byte),
// movement cost pinned to a fixed-width int32 (4 bytes, since voxel.Tile's
// MovementCost is a platform int and binary.Write refuses anything not
// fixed-width) and light level (1 byte).
const tileEncodedSize = 1 + 1 + 4 + 1

const (
	flagCanEnterSameLevel = 1 << 0
	flagCanStandOnTop     = 1 << 1
	flagIsExplored        = 1 << 2
)

// EncodeChunk serializes a chunk's tiles in on-disk order (the same
// lx+ly*Width+lz*Width*Height order voxel.Chunk stores them in).
func EncodeChunk(c *voxel.Chunk) []byte {
	tiles := c.Tiles()
	buf := make([]byte, 0, len(tiles)*tileEncodedSize)
	for _, t := range tiles {
		var flags uint8
		if t.CanEnterSameLevel {
			flags |= flagCanEnterSameLevel
		}
		if t.CanStandOnTop {
			flags |= flagCanStandOnTop
		}
		if t.IsExplored {
			flags |= flagIsExplored
		}
		cost := int32(t.MovementCost)
		buf = append(buf,
			byte(t.Terrain),
			flags,
			byte(cost), byte(cost>>8), byte(cost>>16), byte(cost>>24),
			t.LightLevel,
		)
	}
	return buf
}

// DecodeChunk reconstructs a chunk at coord's tile array from raw bytes
// produced by EncodeChunk.
func DecodeChunk(c *voxel.Chunk, data []byte) error {
	want := voxel.Volume * tileEncodedSize
	if len(data) != want {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptChunk, want, len(data))
	}
	var tiles [voxel.Volume]voxel.Tile
	for i := 0; i < voxel.Volume; i++ {
		off := i * tileEncodedSize
		terrain := voxel.TerrainType(data[off])
		flags := data[off+1]
		cost := int32(data[off+2]) | int32(data[off+3])<<8 | int32(data[off+4])<<16 | int32(data[off+5])<<24
		light := data[off+6]
		tiles[i] = voxel.Tile{
			Terrain:             terrain,
			CanEnterSameLevel:   flags&flagCanEnterSameLevel != 0,
			CanStandOnTop:       flags&flagCanStandOnTop != 0,
			MovementCost:        int(cost),
			LightLevel:          light,
			IsExplored:          flags&flagIsExplored != 0,
		}
	}
	c.SetTiles(tiles)
	return nil
}

// chunkChecksum returns the CRC32 of a chunk's encoded tile bytes, as
// stored in its ChunkIndexEntry.
func chunkChecksum(encoded []byte) uint32 {
	return CRC32(encoded)
}
