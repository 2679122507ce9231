// Package worldgen implements the terrain generators that populate freshly
// allocated chunks: a flat generator and a 3D-noise generator.
package worldgen

import "tileland/internal/voxel"

// Generator fills a chunk's tiles in place. Generate must be safe to call
// concurrently from multiple goroutines on different chunks — it must not
// touch any shared mutable state outside of the chunk it is given.
type Generator interface {
	Generate(c *voxel.Chunk)
}
