package module

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noisegen"
)

// Checkerboard is a generator that outputs a 3D checkerboard pattern:
// exactly -1.0 or +1.0 depending on the parity of the unit lattice cell
// containing the coordinate.
//
// This module is mainly useful for debugging composition trees.
type Checkerboard struct{}

// NewCheckerboard creates a new Checkerboard module.
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{}
}

// GetValue returns -1.0 or +1.0 by lattice-cell parity.
func (c *Checkerboard) GetValue(x, y, z float64) float64 {
	ix := int32(math.Floor(noisegen.MakeInt32Range(x)))
	iy := int32(math.Floor(noisegen.MakeInt32Range(y)))
	iz := int32(math.Floor(noisegen.MakeInt32Range(z)))
	if (ix&1)^(iy&1)^(iz&1) != 0 {
		return -1.0
	}
	return 1.0
}
