package module

import "github.com/katalvlaran/lvlnoise/noisegen"

// Default parameters for the Perlin module.
const (
	// DefaultPerlinFrequency is the default frequency of the first octave.
	DefaultPerlinFrequency = 1.0
	// DefaultPerlinLacunarity is the default frequency multiplier between octaves.
	DefaultPerlinLacunarity = 2.0
	// DefaultPerlinOctaveCount is the default number of octaves.
	DefaultPerlinOctaveCount int32 = 6
	// DefaultPerlinPersistence is the default amplitude multiplier between octaves.
	DefaultPerlinPersistence = 0.5
	// DefaultPerlinQuality is the default interpolation quality.
	DefaultPerlinQuality = noisegen.QualityStandard
	// DefaultPerlinSeed is the default noise seed.
	DefaultPerlinSeed int32 = 0
)

// Perlin is a generator that outputs 3-dimensional Perlin noise: the sum
// of several gradient-coherent-noise octaves of ever-increasing frequency
// and ever-decreasing amplitude.
//
// A small change in the input coordinate produces a small change in the
// output; a large change produces a random change. Output usually ranges
// from -1.0 to +1.0, with no hard guarantee.
//
// The octave count controls the amount of detail; the frequency the scale
// of the first octave; the lacunarity the per-octave frequency multiplier
// (best between 1.5 and 3.5); the persistence the per-octave amplitude
// multiplier, i.e. the roughness (best between 0.0 and 1.0). Each octave
// uses seed + octave index, so neighboring octaves never correlate.
type Perlin struct {
	frequency   float64
	lacunarity  float64
	quality     noisegen.Quality
	octaveCount int32
	persistence float64
	seed        int32
}

// NewPerlin creates a new Perlin module with default parameters.
func NewPerlin() *Perlin {
	return &Perlin{
		frequency:   DefaultPerlinFrequency,
		lacunarity:  DefaultPerlinLacunarity,
		quality:     DefaultPerlinQuality,
		octaveCount: DefaultPerlinOctaveCount,
		persistence: DefaultPerlinPersistence,
		seed:        DefaultPerlinSeed,
	}
}

// Frequency returns the frequency of the first octave.
func (p *Perlin) Frequency() float64 {
	return p.frequency
}

// Lacunarity returns the frequency multiplier between successive octaves.
func (p *Perlin) Lacunarity() float64 {
	return p.lacunarity
}

// Quality returns the interpolation quality of the Perlin noise.
func (p *Perlin) Quality() noisegen.Quality {
	return p.quality
}

// OctaveCount returns the number of octaves that generate the noise.
func (p *Perlin) OctaveCount() int32 {
	return p.octaveCount
}

// Persistence returns the amplitude multiplier between successive octaves.
func (p *Perlin) Persistence() float64 {
	return p.persistence
}

// Seed returns the seed value used by the Perlin-noise function.
func (p *Perlin) Seed() int32 {
	return p.seed
}

// SetFrequency sets the frequency of the first octave.
func (p *Perlin) SetFrequency(frequency float64) {
	p.frequency = frequency
}

// SetLacunarity sets the frequency multiplier between successive octaves.
//
// For best results, set the lacunarity to a number between 1.5 and 3.5.
func (p *Perlin) SetLacunarity(lacunarity float64) {
	p.lacunarity = lacunarity
}

// SetQuality sets the interpolation quality of the Perlin noise.
func (p *Perlin) SetQuality(quality noisegen.Quality) {
	p.quality = quality
}

// SetOctaveCount sets the number of octaves that generate the noise.
//
// The larger the number of octaves, the more detail — and the more time
// required to calculate the value.
//
// Panics with ErrOctaveCount if octaveCount is outside [1, MaxOctave].
func (p *Perlin) SetOctaveCount(octaveCount int32) {
	if octaveCount < 1 || octaveCount > MaxOctave {
		panic(ErrOctaveCount)
	}
	p.octaveCount = octaveCount
}

// SetPersistence sets the amplitude multiplier between successive octaves.
//
// For best results, set the persistence to a number between 0.0 and 1.0.
func (p *Perlin) SetPersistence(persistence float64) {
	p.persistence = persistence
}

// SetSeed sets the seed value used by the Perlin-noise function.
func (p *Perlin) SetSeed(seed int32) {
	p.seed = seed
}

// GetValue returns the Perlin-noise value at (x, y, z).
func (p *Perlin) GetValue(x, y, z float64) float64 {
	value := 0.0
	curPersistence := 1.0
	x *= p.frequency
	y *= p.frequency
	z *= p.frequency

	for curOctave := int32(0); curOctave < p.octaveCount; curOctave++ {
		// Fold the scaled coordinates back into the 32-bit-integer range
		// before handing them to the lattice-noise function.
		nx := noisegen.MakeInt32Range(x)
		ny := noisegen.MakeInt32Range(y)
		nz := noisegen.MakeInt32Range(z)

		seed := p.seed + curOctave
		signal := noisegen.GradientCoherentNoise3D(nx, ny, nz, seed, p.quality)
		value += signal * curPersistence

		// Prepare the next octave.
		x *= p.lacunarity
		y *= p.lacunarity
		z *= p.lacunarity
		curPersistence *= p.persistence
	}

	return value
}
