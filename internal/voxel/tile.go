package voxel

// MaxLightLevel is the light value at which a tile's colors render at full
// brightness with no scaling applied.
const MaxLightLevel uint8 = 255

// Tile is a single addressable cell of a chunk.
type Tile struct {
	Terrain             TerrainType
	CanEnterSameLevel   bool
	CanStandOnTop       bool
	MovementCost        int
	LightLevel          uint8
	IsExplored          bool
}

// NewTile builds a tile of the given terrain, taking its passability and
// movement cost from the terrain catalog.
func NewTile(t TerrainType) Tile {
	p := PropertiesOf(t)
	return Tile{
		Terrain:           t,
		CanEnterSameLevel: p.AllowEnterSameLevel,
		CanStandOnTop:     p.AllowStandOnTop,
		MovementCost:      p.DefaultMovementCost,
		LightLevel:        MaxLightLevel,
		IsExplored:        false,
	}
}

// EffectiveForeground returns the tile's foreground color scaled by its
// current light level.
func (t Tile) EffectiveForeground() RGB {
	return scaleColorByLight(PropertiesOf(t.Terrain).Foreground, t.LightLevel)
}

// EffectiveBackground returns the tile's background color scaled by its
// current light level.
func (t Tile) EffectiveBackground() RGB {
	return scaleColorByLight(PropertiesOf(t.Terrain).Background, t.LightLevel)
}

// scaleColorByLight darkens base toward black as light falls below
// MaxLightLevel. At full light the color passes through unchanged; at zero
// light each channel is scaled to 10% of its original value. The 0.1..1.0
// scale (rather than a full 0..1 range) keeps even unlit tiles faintly
// visible instead of going pure black.
func scaleColorByLight(base RGB, light uint8) RGB {
	if light >= MaxLightLevel {
		return base
	}
	scale := 0.1 + 0.9*(float64(light)/255.0)
	return RGB{
		R: clampChannel(float64(base.R) * scale),
		G: clampChannel(float64(base.G) * scale),
		B: clampChannel(float64(base.B) * scale),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
