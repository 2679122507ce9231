package worldgen

import "tileland/internal/voxel"

// Flat generates a chunk with a single flat ground plane: every tile with
// world Z strictly below GroundLevel becomes GroundTerrain, everything at
// or above becomes AirTerrain. Ground:
// original_source/.../FlatTerrainGenerator.cpp's wz < groundLevel band,
// and internal/world/generator.go's PopulateChunk in the teacher repo
// (heightmap-threshold fill) for the per-cell fill idiom, generalized from
// the teacher's 2D height-per-column fill to the spec's per-cell 3D fill
// since this generator has no horizontal variation to exploit.
type Flat struct {
	GroundLevel               int
	GroundTerrain, AirTerrain voxel.TerrainType
}

// NewFlat returns a Flat generator with the original_source defaults:
// ground level 0, grass ground, void air.
func NewFlat() *Flat {
	return &Flat{
		GroundLevel:   0,
		GroundTerrain: voxel.Grass,
		AirTerrain:    voxel.Void,
	}
}

func (f *Flat) Generate(c *voxel.Chunk) {
	origin := c.Coord.Origin()
	for lz := 0; lz < voxel.Depth; lz++ {
		wz := origin.Z + lz
		terrain := f.AirTerrain
		if wz < f.GroundLevel {
			terrain = f.GroundTerrain
		}
		tile := voxel.NewTile(terrain)
		tile.IsExplored = true
		for lx := 0; lx < voxel.Width; lx++ {
			for ly := 0; ly < voxel.Height; ly++ {
				_ = c.SetLocal(lx, ly, lz, tile)
			}
		}
	}
}
