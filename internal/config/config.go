// Package config holds the runtime-tunable settings of a tileland viewer
// session. Parsing a settings file from disk is an external collaborator's
// job (out of scope here); this package only defines the shape of the
// settings themselves, with the teacher's clamped-setter texture.
package config

import "sync"

// NoiseSettings configures the Noise terrain generator.
type NoiseSettings struct {
	Seed       int64
	Frequency  float32
	BaseNoise  string // "perlin" is the only implementation wired today
	Fractal    string // "fbm" or "ridged"
	Octaves    int
	Lacunarity float32
	Gain       float32
}

// Settings holds the tunables a viewer session reads every tick. Unlike the
// teacher's package-level singleton, this is an explicit value passed to
// every component that needs it; mu only needs locking where a session
// shares one Settings across goroutines (e.g. a future settings-reload
// collaborator), which nothing in this repo does yet.
type Settings struct {
	mu sync.RWMutex

	TargetTPS          float64
	ViewWidth          int32
	ViewHeight         int32
	StatsOverlayAlpha  uint8
	EnableStatsOverlay bool
	SaveDirectory      string
	Noise              NoiseSettings
}

// DefaultSettings returns the settings a fresh viewer session starts with.
func DefaultSettings() *Settings {
	return &Settings{
		TargetTPS:          20,
		ViewWidth:          64,
		ViewHeight:         48,
		StatsOverlayAlpha:  200,
		EnableStatsOverlay: true,
		SaveDirectory:      ".",
		Noise: NoiseSettings{
			Seed:       1,
			Frequency:  0.05,
			BaseNoise:  "perlin",
			Fractal:    "fbm",
			Octaves:    3,
			Lacunarity: 2.0,
			Gain:       0.5,
		},
	}
}

// GetTargetTPS returns the configured ticks-per-second rate.
func (s *Settings) GetTargetTPS() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.TargetTPS
}

// SetTargetTPS sets the ticks-per-second rate, clamped to [1, 240].
func (s *Settings) SetTargetTPS(tps float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tps < 1 {
		tps = 1
	}
	if tps > 240 {
		tps = 240
	}
	s.TargetTPS = tps
}

// GetEnableStatsOverlay returns whether the stats overlay is drawn.
func (s *Settings) GetEnableStatsOverlay() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.EnableStatsOverlay
}

// ToggleStatsOverlay flips whether the stats overlay is drawn.
func (s *Settings) ToggleStatsOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.EnableStatsOverlay = !s.EnableStatsOverlay
}

// GetViewSize returns the configured viewport width and height in cells.
func (s *Settings) GetViewSize() (int32, int32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ViewWidth, s.ViewHeight
}

// SetViewSize sets the viewport width and height, clamped to [8, 512].
func (s *Settings) SetViewSize(w, h int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ViewWidth = clamp32(w, 8, 512)
	s.ViewHeight = clamp32(h, 8, 512)
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
