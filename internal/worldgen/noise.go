package worldgen

import (
	"github.com/aquilax/go-perlin"

	"tileland/internal/voxel"
)

// Noise generates terrain from a layered 3D noise field, banded by world Z
// into void/water-carve/surface/ceiling regions. Ground: the noise-sampling
// idiom follows SoftbearStudios-mk48/server/terrain/noise/noise.go's use of
// github.com/aquilax/go-perlin (NewPerlin(alpha, beta, n, seed), Noise
// sampled per world cell); the height-band thresholds below are ported from
// original_source/src/MapGenInfrastructure/FastNoiseTerrainGenerator.cpp's
// generateChunk (lines 283-318), which bands its vertical axis into wz<-5
// (wall), -5<=wz<0 (water/wall/floor carving), wz==0 (water/grass/wall
// surface band) and 0<wz<5 (wall ceiling over void) with thresholds -0.5,
// 0.4, -0.3, 0.3 and 0.6.
type Noise struct {
	Frequency  float32
	Octaves    int
	Lacunarity float32
	Gain       float32

	p *perlin.Perlin
}

// NewNoise constructs a Noise generator. go-perlin's constructor only
// exposes alpha/beta/n/seed (no direct lacunarity/gain knobs), so Gain feeds
// alpha (per-octave amplitude falloff), Lacunarity feeds beta (per-octave
// frequency growth) and Octaves feeds n directly — the closest honest
// mapping of this generator's configuration surface onto the library's
// actual API.
func NewNoise(seed int64, frequency float32, octaves int, lacunarity, gain float32) *Noise {
	if octaves < 1 {
		octaves = 1
	}
	if lacunarity <= 0 {
		lacunarity = 2.0
	}
	if gain <= 0 {
		gain = 0.5
	}
	return &Noise{
		Frequency:  frequency,
		Octaves:    octaves,
		Lacunarity: lacunarity,
		Gain:       gain,
		p:          perlin.NewPerlin(float64(gain), float64(lacunarity), int32(octaves), seed),
	}
}

func (n *Noise) sample(wx, wy, wz int) float64 {
	x := float64(wx) * float64(n.Frequency)
	y := float64(wy) * float64(n.Frequency)
	z := float64(wz) * float64(n.Frequency)
	return n.p.Noise3D(x, y, z)
}

func (n *Noise) Generate(c *voxel.Chunk) {
	origin := c.Coord.Origin()
	for lx := 0; lx < voxel.Width; lx++ {
		wx := origin.X + lx
		for ly := 0; ly < voxel.Height; ly++ {
			wy := origin.Y + ly
			for lz := 0; lz < voxel.Depth; lz++ {
				wz := origin.Z + lz
				terrain := n.terrainAt(wx, wy, wz)
				tile := voxel.NewTile(terrain)
				tile.IsExplored = true
				_ = c.SetLocal(lx, ly, lz, tile)
			}
		}
	}
}

func (n *Noise) terrainAt(wx, wy, wz int) voxel.TerrainType {
	switch {
	case wz < -5:
		return voxel.Wall
	case wz < 0:
		v := n.sample(wx, wy, wz)
		switch {
		case v < -0.5:
			return voxel.Water
		case v > 0.4:
			return voxel.Wall
		default:
			return voxel.Floor
		}
	case wz == 0:
		v := n.sample(wx, wy, wz)
		switch {
		case v < -0.3:
			return voxel.Water
		case v < 0.3:
			return voxel.Grass
		default:
			return voxel.Wall
		}
	case wz < 5:
		if n.sample(wx, wy, wz) > 0.6 {
			return voxel.Wall
		}
		return voxel.Void
	default:
		return voxel.Void
	}
}
