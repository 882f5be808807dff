package module

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlnoise/noisegen"
)

// Terrace is a modifier that remaps the output of its source module onto
// a terrace-forming curve.
//
// The curve starts with a slope of zero, smoothly steepens, and resets to
// zero slope at each control point — producing the flat-then-steep
// profile of terraced terrain. Inverting the terraces flips the profile
// to steep-then-flat.
type Terrace struct {
	module         Module
	invertTerraces bool
	// controlPoints is kept sorted ascending.
	controlPoints []float64
}

// NewTerrace creates a new Terrace module around the specified source
// module, using default parameters.
//
// At least 2 control points must be added before the first GetValue call.
func NewTerrace(module Module) *Terrace {
	return &Terrace{module: module}
}

// SourceModule returns the source module used.
func (t *Terrace) SourceModule() Module {
	return t.module
}

// SetSourceModule sets the source module to be used.
func (t *Terrace) SetSourceModule(module Module) {
	t.module = module
}

// InvertTerraces reports whether the terrace-forming curve between the
// control points is inverted.
func (t *Terrace) InvertTerraces() bool {
	return t.invertTerraces
}

// SetInvertTerraces enables or disables the inversion of the
// terrace-forming curve between the control points.
func (t *Terrace) SetInvertTerraces(invert bool) {
	t.invertTerraces = invert
}

// ControlPoints returns all control points, in ascending order. The
// returned slice is the terrace's own storage and must not be mutated.
func (t *Terrace) ControlPoints() []float64 {
	return t.controlPoints
}

// AddControlPoint adds a control point to the terrace-forming curve.
// Points may be added in any order; they are kept sorted.
//
// Panics with ErrControlPointNaN if value is NaN, or with
// ErrDuplicateControlPoint if the value has already been added.
func (t *Terrace) AddControlPoint(value float64) {
	if math.IsNaN(value) {
		panic(ErrControlPointNaN)
	}
	idx := sort.SearchFloat64s(t.controlPoints, value)
	if idx < len(t.controlPoints) && t.controlPoints[idx] == value {
		panic(ErrDuplicateControlPoint)
	}
	t.controlPoints = append(t.controlPoints, 0)
	copy(t.controlPoints[idx+1:], t.controlPoints[idx:])
	t.controlPoints[idx] = value
}

// ClearControlPoints deletes all control points on the terrace-forming
// curve.
func (t *Terrace) ClearControlPoints() {
	t.controlPoints = t.controlPoints[:0]
}

// MakeControlPoints replaces the current control points with count
// equally spaced points spanning [-1, +1].
//
// Panics with ErrControlPointCount if count is less than 2.
func (t *Terrace) MakeControlPoints(count int) {
	if count < 2 {
		panic(ErrControlPointCount)
	}

	t.controlPoints = t.controlPoints[:0]

	terraceStep := 2.0 / (float64(count) - 1.0)
	curValue := -1.0
	for i := 0; i < count; i++ {
		t.controlPoints = append(t.controlPoints, curValue)
		curValue += terraceStep
	}
}

// GetValue remaps the source value onto the terrace-forming curve.
//
// Panics with ErrTerraceControlPoints if fewer than 2 control points
// have been added.
func (t *Terrace) GetValue(x, y, z float64) float64 {
	if len(t.controlPoints) < 2 {
		panic(ErrTerraceControlPoints)
	}

	sourceValue := t.module.GetValue(x, y, z)

	// Index of the first control point strictly greater than the source
	// value.
	idxPos := sort.Search(len(t.controlPoints), func(i int) bool {
		return t.controlPoints[i] > sourceValue
	})

	// The two bracketing control points, clamped at the range ends.
	last := len(t.controlPoints) - 1
	idx0 := clampIndex(idxPos-1, 0, last)
	idx1 := clampIndex(idxPos, 0, last)

	// Source value outside the control range: collapse to the nearest
	// control point.
	if idx0 == idx1 {
		return t.controlPoints[idx1]
	}

	value0 := t.controlPoints[idx0]
	value1 := t.controlPoints[idx1]
	alpha := (sourceValue - value0) / (value1 - value0)
	if t.invertTerraces {
		value0, value1 = value1, value0
		alpha = 1.0 - alpha
	}

	// Squaring the alpha produces the terrace effect.
	alpha *= alpha

	return noisegen.LinearInterp(value0, value1, alpha)
}
