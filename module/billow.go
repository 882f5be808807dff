package module

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noisegen"
)

// Default parameters for the Billow module.
const (
	// DefaultBillowFrequency is the default frequency of the first octave.
	DefaultBillowFrequency = 1.0
	// DefaultBillowLacunarity is the default frequency multiplier between octaves.
	DefaultBillowLacunarity = 2.0
	// DefaultBillowOctaveCount is the default number of octaves.
	DefaultBillowOctaveCount int32 = 6
	// DefaultBillowPersistence is the default amplitude multiplier between octaves.
	DefaultBillowPersistence = 0.5
	// DefaultBillowQuality is the default interpolation quality.
	DefaultBillowQuality = noisegen.QualityStandard
	// DefaultBillowSeed is the default noise seed.
	DefaultBillowSeed int32 = 0
)

// Billow is a generator that outputs "billowy" noise suitable for clouds
// and rocks.
//
// It is nearly identical to Perlin except each octave's signal passes
// through 2·|signal|−1 before weighting, and a constant 0.5 is added at
// the end to keep the nominal midpoint near zero.
type Billow struct {
	frequency   float64
	lacunarity  float64
	quality     noisegen.Quality
	octaveCount int32
	persistence float64
	seed        int32
}

// NewBillow creates a new Billow module with default parameters.
func NewBillow() *Billow {
	return &Billow{
		frequency:   DefaultBillowFrequency,
		lacunarity:  DefaultBillowLacunarity,
		quality:     DefaultBillowQuality,
		octaveCount: DefaultBillowOctaveCount,
		persistence: DefaultBillowPersistence,
		seed:        DefaultBillowSeed,
	}
}

// Frequency returns the frequency of the first octave.
func (b *Billow) Frequency() float64 {
	return b.frequency
}

// Lacunarity returns the frequency multiplier between successive octaves.
func (b *Billow) Lacunarity() float64 {
	return b.lacunarity
}

// Quality returns the interpolation quality of the billowy noise.
func (b *Billow) Quality() noisegen.Quality {
	return b.quality
}

// OctaveCount returns the number of octaves that generate the noise.
func (b *Billow) OctaveCount() int32 {
	return b.octaveCount
}

// Persistence returns the amplitude multiplier between successive octaves.
func (b *Billow) Persistence() float64 {
	return b.persistence
}

// Seed returns the seed value used by the billowy-noise function.
func (b *Billow) Seed() int32 {
	return b.seed
}

// SetFrequency sets the frequency of the first octave.
func (b *Billow) SetFrequency(frequency float64) {
	b.frequency = frequency
}

// SetLacunarity sets the frequency multiplier between successive octaves.
//
// For best results, set the lacunarity to a number between 1.5 and 3.5.
func (b *Billow) SetLacunarity(lacunarity float64) {
	b.lacunarity = lacunarity
}

// SetQuality sets the interpolation quality of the billowy noise.
func (b *Billow) SetQuality(quality noisegen.Quality) {
	b.quality = quality
}

// SetOctaveCount sets the number of octaves that generate the noise.
//
// Panics with ErrOctaveCount if octaveCount is outside [1, MaxOctave].
func (b *Billow) SetOctaveCount(octaveCount int32) {
	if octaveCount < 1 || octaveCount > MaxOctave {
		panic(ErrOctaveCount)
	}
	b.octaveCount = octaveCount
}

// SetPersistence sets the amplitude multiplier between successive octaves.
//
// For best results, set the persistence to a number between 0.0 and 1.0.
func (b *Billow) SetPersistence(persistence float64) {
	b.persistence = persistence
}

// SetSeed sets the seed value used by the billowy-noise function.
func (b *Billow) SetSeed(seed int32) {
	b.seed = seed
}

// GetValue returns the billowy-noise value at (x, y, z).
func (b *Billow) GetValue(x, y, z float64) float64 {
	value := 0.0
	curPersistence := 1.0
	x *= b.frequency
	y *= b.frequency
	z *= b.frequency

	for curOctave := int32(0); curOctave < b.octaveCount; curOctave++ {
		nx := noisegen.MakeInt32Range(x)
		ny := noisegen.MakeInt32Range(y)
		nz := noisegen.MakeInt32Range(z)

		seed := b.seed + curOctave
		signal := noisegen.GradientCoherentNoise3D(nx, ny, nz, seed, b.quality)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * curPersistence

		x *= b.lacunarity
		y *= b.lacunarity
		z *= b.lacunarity
		curPersistence *= b.persistence
	}

	return value + 0.5
}
