package module

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noisegen"
)

// Default parameters for the RidgedMulti module.
const (
	// DefaultRidgedFrequency is the default frequency of the first octave.
	DefaultRidgedFrequency = 1.0
	// DefaultRidgedLacunarity is the default frequency multiplier between octaves.
	DefaultRidgedLacunarity = 2.0
	// DefaultRidgedOctaveCount is the default number of octaves.
	DefaultRidgedOctaveCount int32 = 6
	// DefaultRidgedQuality is the default interpolation quality.
	DefaultRidgedQuality = noisegen.QualityStandard
	// DefaultRidgedSeed is the default noise seed.
	DefaultRidgedSeed int32 = 0
)

// RidgedMulti is a generator that outputs ridged-multifractal noise:
// sharp mountain-ridge formations produced by feeding each octave's
// squared, offset-inverted signal back into the weight of the next.
//
// Unlike Perlin, this fractal has no persistence parameter; octave
// amplitude follows a spectral-weight table derived from the lacunarity
// (frequency^-1 per octave). Output usually ranges from -1.0 to +1.0.
//
// Multifractal formulation after F. Kenton Musgrave.
type RidgedMulti struct {
	frequency   float64
	lacunarity  float64
	quality     noisegen.Quality
	octaveCount int32
	// spectralWeights holds the precomputed per-octave amplitude table,
	// recomputed eagerly whenever the lacunarity changes.
	spectralWeights [MaxOctave]float64
	seed            int32
}

// calcSpectralWeights fills the per-octave amplitude table for the given
// lacunarity. The spectral exponent is fixed at 1.0.
func calcSpectralWeights(weights *[MaxOctave]float64, lacunarity float64) {
	const h = 1.0

	frequency := 1.0
	for i := range weights {
		weights[i] = math.Pow(frequency, -h)
		frequency *= lacunarity
	}
}

// NewRidgedMulti creates a new RidgedMulti module with default parameters.
func NewRidgedMulti() *RidgedMulti {
	r := &RidgedMulti{
		frequency:   DefaultRidgedFrequency,
		lacunarity:  DefaultRidgedLacunarity,
		quality:     DefaultRidgedQuality,
		octaveCount: DefaultRidgedOctaveCount,
		seed:        DefaultRidgedSeed,
	}
	calcSpectralWeights(&r.spectralWeights, r.lacunarity)
	return r
}

// Frequency returns the frequency of the first octave.
func (r *RidgedMulti) Frequency() float64 {
	return r.frequency
}

// Lacunarity returns the frequency multiplier between successive octaves.
func (r *RidgedMulti) Lacunarity() float64 {
	return r.lacunarity
}

// Quality returns the interpolation quality of the ridged noise.
func (r *RidgedMulti) Quality() noisegen.Quality {
	return r.quality
}

// OctaveCount returns the number of octaves that generate the noise.
func (r *RidgedMulti) OctaveCount() int32 {
	return r.octaveCount
}

// Seed returns the seed value used by the ridged-noise function.
func (r *RidgedMulti) Seed() int32 {
	return r.seed
}

// SetFrequency sets the frequency of the first octave.
func (r *RidgedMulti) SetFrequency(frequency float64) {
	r.frequency = frequency
}

// SetLacunarity sets the frequency multiplier between successive octaves
// and recomputes the spectral-weight table.
//
// For best results, set the lacunarity to a number between 1.5 and 3.5.
func (r *RidgedMulti) SetLacunarity(lacunarity float64) {
	r.lacunarity = lacunarity
	calcSpectralWeights(&r.spectralWeights, r.lacunarity)
}

// SetQuality sets the interpolation quality of the ridged noise.
func (r *RidgedMulti) SetQuality(quality noisegen.Quality) {
	r.quality = quality
}

// SetOctaveCount sets the number of octaves that generate the noise.
//
// Panics with ErrOctaveCount if octaveCount is outside [1, MaxOctave].
func (r *RidgedMulti) SetOctaveCount(octaveCount int32) {
	if octaveCount < 1 || octaveCount > MaxOctave {
		panic(ErrOctaveCount)
	}
	r.octaveCount = octaveCount
}

// SetSeed sets the seed value used by the ridged-noise function.
func (r *RidgedMulti) SetSeed(seed int32) {
	r.seed = seed
}

// GetValue returns the ridged-multifractal value at (x, y, z).
func (r *RidgedMulti) GetValue(x, y, z float64) float64 {
	x *= r.frequency
	y *= r.frequency
	z *= r.frequency

	value := 0.0
	weight := 1.0

	// Fixed multifractal parameters of this formulation.
	const (
		offset = 1.0
		gain   = 2.0
	)

	for curOctave := int32(0); curOctave < r.octaveCount; curOctave++ {
		nx := noisegen.MakeInt32Range(x)
		ny := noisegen.MakeInt32Range(y)
		nz := noisegen.MakeInt32Range(z)

		seed := (r.seed + curOctave) & 0x7fffffff
		signal := noisegen.GradientCoherentNoise3D(nx, ny, nz, seed, r.quality)

		// Make the ridges.
		signal = math.Abs(signal)
		signal = offset - signal

		// Square the signal to sharpen the ridges.
		signal *= signal

		// The weighting from the previous octave is applied to the
		// signal; larger values produce sharp points along the ridges.
		signal *= weight

		// Weight successive contributions by the previous signal.
		weight = signal * gain
		if weight > 1.0 {
			weight = 1.0
		} else if weight < 0.0 {
			weight = 0.0
		}

		value += signal * r.spectralWeights[curOctave]

		x *= r.lacunarity
		y *= r.lacunarity
		z *= r.lacunarity
	}

	return (value * 1.25) - 1.0
}
