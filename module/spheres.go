package module

import "math"

// DefaultSpheresFrequency is the default frequency of the Spheres module.
const DefaultSpheresFrequency = 1.0

// Spheres is a generator that outputs concentric spheres centered on the
// origin, useful as a base for wood-grain style textures once displaced.
type Spheres struct {
	frequency float64
}

// NewSpheres creates a new Spheres module with default parameters.
func NewSpheres() *Spheres {
	return &Spheres{frequency: DefaultSpheresFrequency}
}

// Frequency returns the frequency of the concentric spheres.
//
// Increasing the frequency increases the density of the concentric
// spheres, reducing the distances between them.
func (s *Spheres) Frequency() float64 {
	return s.frequency
}

// SetFrequency sets the frequency of the concentric spheres.
func (s *Spheres) SetFrequency(frequency float64) {
	s.frequency = frequency
}

// GetValue returns the sphere field value at (x, y, z).
func (s *Spheres) GetValue(x, y, z float64) float64 {
	x *= s.frequency
	y *= s.frequency
	z *= s.frequency

	distFromCenter := math.Sqrt(x*x + y*y + z*z)
	distFromSmallerSphere := distFromCenter - math.Floor(distFromCenter)
	distFromLargerSphere := 1.0 - distFromSmallerSphere
	nearestDist := math.Min(distFromSmallerSphere, distFromLargerSphere)

	// nearestDist ∈ [0, 0.5], so this lands in [-1.0, +1.0].
	return 1.0 - nearestDist*4.0
}
