package module

// Default parameters for the Turbulence module.
const (
	// DefaultTurbulenceFrequency is the default frequency of the distortion fields.
	DefaultTurbulenceFrequency = DefaultPerlinFrequency
	// DefaultTurbulencePower is the default scaling applied to the displacement amount.
	DefaultTurbulencePower = 1.0
	// DefaultTurbulenceRoughness is the default octave count of the distortion fields.
	DefaultTurbulenceRoughness int32 = 3
	// DefaultTurbulenceSeed is the default base seed of the distortion fields.
	DefaultTurbulenceSeed = DefaultPerlinSeed
)

// Turbulence is a combiner that randomly displaces the input coordinate
// of its source module with three internally owned Perlin generators, one
// per axis, used purely as coordinate distortion fields.
//
// The frequency of the turbulence controls how rapidly the displacement
// amount changes; the power scales the displacement; the roughness (the
// octave count of the internal generators) controls how ragged the
// changes are. The three generators are seeded seed, seed+1 and seed+2 so
// their fields never correlate.
type Turbulence struct {
	power float64

	msource  Module
	xDistort *Perlin
	yDistort *Perlin
	zDistort *Perlin
}

// NewTurbulence creates a new Turbulence module around the specified
// source module, using default parameters.
func NewTurbulence(source Module) *Turbulence {
	t := &Turbulence{
		power:    DefaultTurbulencePower,
		msource:  source,
		xDistort: NewPerlin(),
		yDistort: NewPerlin(),
		zDistort: NewPerlin(),
	}
	t.SetSeed(DefaultTurbulenceSeed)
	t.SetFrequency(DefaultTurbulenceFrequency)
	t.SetRoughness(DefaultTurbulenceRoughness)
	return t
}

// SourceModule returns the module whose input values are being randomly
// displaced.
func (t *Turbulence) SourceModule() Module {
	return t.msource
}

// SetSourceModule sets the module whose input values are going to be
// randomly displaced.
func (t *Turbulence) SetSourceModule(module Module) {
	t.msource = module
}

// Frequency returns the frequency of the turbulence, i.e. how rapidly
// the displacement amount changes.
func (t *Turbulence) Frequency() float64 {
	return t.xDistort.Frequency()
}

// Power returns the scaling factor applied to the displacement amount.
func (t *Turbulence) Power() float64 {
	return t.power
}

// Roughness returns the roughness of the turbulence: the octave count of
// the internal distortion generators. Low values change the displacement
// smoothly; high values produce more "kinky" changes.
func (t *Turbulence) Roughness() int32 {
	return t.xDistort.OctaveCount()
}

// Seed returns the base seed of the internal distortion generators.
func (t *Turbulence) Seed() int32 {
	return t.xDistort.Seed()
}

// SetFrequency sets the frequency of all three distortion generators.
func (t *Turbulence) SetFrequency(frequency float64) {
	t.xDistort.SetFrequency(frequency)
	t.yDistort.SetFrequency(frequency)
	t.zDistort.SetFrequency(frequency)
}

// SetPower sets the scaling factor applied to the displacement amount.
func (t *Turbulence) SetPower(power float64) {
	t.power = power
}

// SetRoughness sets the octave count of all three distortion generators.
//
// Panics with ErrOctaveCount if roughness is outside [1, MaxOctave].
func (t *Turbulence) SetRoughness(roughness int32) {
	t.xDistort.SetOctaveCount(roughness)
	t.yDistort.SetOctaveCount(roughness)
	t.zDistort.SetOctaveCount(roughness)
}

// SetSeed seeds the three distortion generators with seed, seed+1 and
// seed+2, so no two axes share a field.
func (t *Turbulence) SetSeed(seed int32) {
	t.xDistort.SetSeed(seed)
	t.yDistort.SetSeed(seed + 1)
	t.zDistort.SetSeed(seed + 2)
}

// GetValue samples the source module at the turbulently displaced
// coordinate.
func (t *Turbulence) GetValue(x, y, z float64) float64 {
	// Each distortion generator samples the input coordinate shifted by a
	// fixed, distinct offset. Gradient coherent noise returns zero at
	// integer lattice boundaries; without these offsets all three fields
	// would cross zero at the same input points and the displacement
	// would visibly collapse there.
	x0 := x + (12414.0 / 65536.0)
	y0 := y + (65124.0 / 65536.0)
	z0 := z + (31337.0 / 65536.0)
	x1 := x + (26519.0 / 65536.0)
	y1 := y + (18128.0 / 65536.0)
	z1 := z + (60493.0 / 65536.0)
	x2 := x + (53820.0 / 65536.0)
	y2 := y + (11213.0 / 65536.0)
	z2 := z + (44845.0 / 65536.0)

	xDistort := x + t.xDistort.GetValue(x0, y0, z0)*t.power
	yDistort := y + t.yDistort.GetValue(x1, y1, z1)*t.power
	zDistort := z + t.zDistort.GetValue(x2, y2, z2)*t.power

	return t.msource.GetValue(xDistort, yDistort, zDistort)
}
