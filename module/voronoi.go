package module

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noisegen"
)

// Default parameters for the Voronoi module.
const (
	// DefaultVoronoiDisplacement is the default per-cell displacement scale.
	DefaultVoronoiDisplacement = 1.0
	// DefaultVoronoiFrequency is the default frequency of the seed points.
	DefaultVoronoiFrequency = 1.0
	// DefaultVoronoiSeed is the default seed of the Voronoi cells.
	DefaultVoronoiSeed int32 = 0
)

// sqrt3 is √3, the diagonal of a unit cube; it normalizes the optional
// distance term so that it spans roughly [-1, +1].
const sqrt3 = 1.7320508075688772935

// Voronoi is a generator that partitions space into cells around
// pseudo-random seed points — one per unit lattice cell — and colors each
// point by the cell of its nearest seed.
//
// Each cell carries a random constant value in ±displacement. With the
// distance term enabled, the distance to the nearest seed point is added,
// so values rise toward cell boundaries (near-zero displacement plus
// distance yields cracked-mud formations).
type Voronoi struct {
	displacement   float64
	enableDistance bool
	frequency      float64
	seed           int32
}

// NewVoronoi creates a new Voronoi module with default parameters.
func NewVoronoi() *Voronoi {
	return &Voronoi{
		displacement: DefaultVoronoiDisplacement,
		frequency:    DefaultVoronoiFrequency,
		seed:         DefaultVoronoiSeed,
	}
}

// IsDistanceEnabled reports whether the distance from the nearest seed
// point is applied to the output value.
func (v *Voronoi) IsDistanceEnabled() bool {
	return v.enableDistance
}

// Displacement returns the displacement value of the Voronoi cells.
//
// Each cell is assigned a random constant value in the range ± the
// displacement value.
func (v *Voronoi) Displacement() float64 {
	return v.displacement
}

// Frequency returns the frequency of the seed points.
//
// The frequency determines the size of the Voronoi cells and the
// distance between them.
func (v *Voronoi) Frequency() float64 {
	return v.frequency
}

// Seed returns the seed value used to position the cell seed points.
func (v *Voronoi) Seed() int32 {
	return v.seed
}

// EnableDistance enables or disables adding the distance from the nearest
// seed point to the output value.
func (v *Voronoi) EnableDistance(enabled bool) {
	v.enableDistance = enabled
}

// SetDisplacement sets the displacement value of the Voronoi cells.
func (v *Voronoi) SetDisplacement(displacement float64) {
	v.displacement = displacement
}

// SetFrequency sets the frequency of the seed points.
func (v *Voronoi) SetFrequency(frequency float64) {
	v.frequency = frequency
}

// SetSeed sets the seed value used to position the cell seed points.
func (v *Voronoi) SetSeed(seed int32) {
	v.seed = seed
}

// GetValue returns the Voronoi cell value at (x, y, z).
//
// The search scans the 5×5×5 neighborhood of lattice cells around the
// sample. Seed points sit one per cell, so the nearest seed always lies
// inside that window.
func (v *Voronoi) GetValue(x, y, z float64) float64 {
	x *= v.frequency
	y *= v.frequency
	z *= v.frequency

	var xInt, yInt, zInt int32
	if x > 0.0 {
		xInt = int32(x)
	} else {
		xInt = int32(x) - 1
	}
	if y > 0.0 {
		yInt = int32(y)
	} else {
		yInt = int32(y) - 1
	}
	if z > 0.0 {
		zInt = int32(z)
	} else {
		zInt = int32(z) - 1
	}

	minDist := 2147483647.0
	xCandidate := 0.0
	yCandidate := 0.0
	zCandidate := 0.0

	// Inside each unit cube there is one seed point at a pseudo-random
	// position. Walk the nearby cubes and keep the closest seed point.
	for zCur := zInt - 2; zCur <= zInt+2; zCur++ {
		for yCur := yInt - 2; yCur <= yInt+2; yCur++ {
			for xCur := xInt - 2; xCur <= xInt+2; xCur++ {
				xPos := float64(xCur) + noisegen.ValueNoise3D(xCur, yCur, zCur, v.seed)
				yPos := float64(yCur) + noisegen.ValueNoise3D(xCur, yCur, zCur, v.seed+1)
				zPos := float64(zCur) + noisegen.ValueNoise3D(xCur, yCur, zCur, v.seed+2)
				xDist := xPos - x
				yDist := yPos - y
				zDist := zPos - z
				dist := xDist*xDist + yDist*yDist + zDist*zDist

				if dist < minDist {
					minDist = dist
					xCandidate = xPos
					yCandidate = yPos
					zCandidate = zPos
				}
			}
		}
	}

	value := 0.0
	if v.enableDistance {
		xDist := xCandidate - x
		yDist := yCandidate - y
		zDist := zCandidate - z
		value = math.Sqrt(xDist*xDist+yDist*yDist+zDist*zDist)*sqrt3 - 1.0
	}

	return value + v.displacement*noisegen.ValueNoise3D(
		int32(math.Floor(xCandidate)),
		int32(math.Floor(yCandidate)),
		int32(math.Floor(zCandidate)),
		0)
}
