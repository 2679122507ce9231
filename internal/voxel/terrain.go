// Package voxel defines the tile and terrain catalog and the fixed-size
// chunk array that stores them.
package voxel

import "sync"

// RGB is a packed 8-bit-per-channel color, as stored on disk and emitted
// to the terminal via 24-bit ANSI escapes.
type RGB struct {
	R, G, B uint8
}

// TerrainType identifies an entry in the terrain catalog.
type TerrainType uint8

const (
	Unknown TerrainType = iota
	Void
	Grass
	Water
	Wall
	Floor
)

// TerrainProperties describes the static, terrain-wide attributes a tile of
// a given TerrainType takes on at creation time.
type TerrainProperties struct {
	Glyph               string
	Foreground          RGB
	Background          RGB
	AllowEnterSameLevel bool
	AllowStandOnTop     bool
	IsVisible           bool
	DefaultMovementCost int
}

var catalogOnce sync.Once
var catalog map[TerrainType]TerrainProperties

// terrainCatalog lazily builds the static terrain table. The glyphs, colors
// and movement costs below are load-bearing: save files and rendered frames
// from one build must match another build exactly, so these values must
// never change without a format version bump.
func terrainCatalog() map[TerrainType]TerrainProperties {
	catalogOnce.Do(func() {
		catalog = map[TerrainType]TerrainProperties{
			Unknown: {
				Glyph: "?", Foreground: RGB{255, 0, 255}, Background: RGB{0, 0, 0},
				AllowEnterSameLevel: false, AllowStandOnTop: false, IsVisible: true,
				DefaultMovementCost: 99,
			},
			Void: {
				Glyph: " ", Foreground: RGB{0, 0, 0}, Background: RGB{0, 0, 0},
				AllowEnterSameLevel: true, AllowStandOnTop: false, IsVisible: false,
				DefaultMovementCost: 99,
			},
			Grass: {
				Glyph: "░", Foreground: RGB{0, 180, 0}, Background: RGB{0, 100, 0},
				AllowEnterSameLevel: true, AllowStandOnTop: false, IsVisible: true,
				DefaultMovementCost: 1,
			},
			Water: {
				Glyph: "≈", Foreground: RGB{0, 100, 255}, Background: RGB{0, 50, 150},
				AllowEnterSameLevel: false, AllowStandOnTop: false, IsVisible: true,
				DefaultMovementCost: 5,
			},
			Wall: {
				Glyph: "█", Foreground: RGB{150, 150, 150}, Background: RGB{100, 100, 100},
				AllowEnterSameLevel: false, AllowStandOnTop: true, IsVisible: true,
				DefaultMovementCost: 99,
			},
			Floor: {
				Glyph: "·", Foreground: RGB{200, 200, 200}, Background: RGB{50, 50, 50},
				AllowEnterSameLevel: true, AllowStandOnTop: false, IsVisible: true,
				DefaultMovementCost: 1,
			},
		}
	})
	return catalog
}

// PropertiesOf returns the catalog entry for t, falling back to Unknown's
// entry when t has no registered properties.
func PropertiesOf(t TerrainType) TerrainProperties {
	c := terrainCatalog()
	if p, ok := c[t]; ok {
		return p
	}
	return c[Unknown]
}
