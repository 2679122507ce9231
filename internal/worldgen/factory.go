package worldgen

import "tileland/internal/config"

// FromSettings builds the configured generator from a session's noise
// settings. Falls back to a default-configured Noise generator on
// unrecognized configuration rather than aborting, per the spec's
// generator-error handling: a bad config degrades gracefully instead of
// taking the whole session down.
func FromSettings(ns config.NoiseSettings) Generator {
	if ns.BaseNoise != "perlin" && ns.BaseNoise != "" {
		return NewNoise(ns.Seed, 0.05, 3, 2.0, 0.5)
	}
	return NewNoise(ns.Seed, ns.Frequency, ns.Octaves, ns.Lacunarity, ns.Gain)
}
