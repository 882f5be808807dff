package module

import "math"

// DefaultCylindersFrequency is the default frequency of the Cylinders module.
const DefaultCylindersFrequency = 1.0

// Cylinders is a generator that outputs concentric cylinders centered on
// the y axis. Output ranges over [-3.0, +1.0]: +1.0 on a cylinder
// surface, falling off with distance to the nearest surface.
type Cylinders struct {
	frequency float64
}

// NewCylinders creates a new Cylinders module with default parameters.
func NewCylinders() *Cylinders {
	return &Cylinders{frequency: DefaultCylindersFrequency}
}

// Frequency returns the frequency of the concentric cylinders.
//
// Increasing the frequency increases the density of the concentric
// cylinders, reducing the distances between them.
func (c *Cylinders) Frequency() float64 {
	return c.frequency
}

// SetFrequency sets the frequency of the concentric cylinders.
func (c *Cylinders) SetFrequency(frequency float64) {
	c.frequency = frequency
}

// GetValue returns the cylinder field value at (x, y, z); y is ignored.
func (c *Cylinders) GetValue(x, _, z float64) float64 {
	x *= c.frequency
	z *= c.frequency

	distFromCenter := math.Sqrt(x*x + z*z)
	distFromSmallerCylinder := distFromCenter - math.Floor(distFromCenter)
	distFromLargerCylinder := 1.0 - distFromSmallerCylinder
	nearestDist := math.Min(distFromSmallerCylinder, distFromLargerCylinder)

	// nearestDist ∈ [0, 0.5], so this lands in [-1.0, +1.0].
	return 1.0 - nearestDist*4.0
}
