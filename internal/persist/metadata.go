package persist

// Metadata is the noise-generator parameter record a save carries
// alongside its chunk data — enough to reconstruct an equivalent
// generator without reading any chunk bodies, per the spec's world
// metadata record: seed, frequency, noiseType, fractalType, octaves,
// lacunarity, gain.
type Metadata struct {
	Seed        int64
	Frequency   float32
	NoiseType   string
	FractalType string
	Octaves     int32
	Lacunarity  float32
	Gain        float32
}

func (bw *Writer) writeMetadata(m Metadata) error {
	if err := bw.WriteValue(m.Seed); err != nil {
		return err
	}
	if err := bw.WriteValue(m.Frequency); err != nil {
		return err
	}
	if err := bw.WriteString(m.NoiseType); err != nil {
		return err
	}
	if err := bw.WriteString(m.FractalType); err != nil {
		return err
	}
	if err := bw.WriteValue(m.Octaves); err != nil {
		return err
	}
	if err := bw.WriteValue(m.Lacunarity); err != nil {
		return err
	}
	return bw.WriteValue(m.Gain)
}

func (br *Reader) readMetadata() (Metadata, error) {
	var m Metadata
	if err := br.ReadValue(&m.Seed); err != nil {
		return m, err
	}
	if err := br.ReadValue(&m.Frequency); err != nil {
		return m, err
	}
	noiseType, err := br.ReadString()
	if err != nil {
		return m, err
	}
	m.NoiseType = noiseType
	fractalType, err := br.ReadString()
	if err != nil {
		return m, err
	}
	m.FractalType = fractalType
	if err := br.ReadValue(&m.Octaves); err != nil {
		return m, err
	}
	if err := br.ReadValue(&m.Lacunarity); err != nil {
		return m, err
	}
	if err := br.ReadValue(&m.Gain); err != nil {
		return m, err
	}
	return m, nil
}
