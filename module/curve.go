package module

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlnoise/noisegen"
)

// ControlPoint is one (input, output) anchor of a Curve's mapping spline.
type ControlPoint struct {
	// InputValue is the source value this anchor maps from.
	InputValue float64
	// OutputValue is the value this anchor maps to.
	OutputValue float64
}

// Curve is a modifier that remaps the output of its source module through
// an arbitrary curve defined by four or more control points.
//
// The control points form a cubic spline (Catmull-Rom style). Source
// values outside the control range collapse to the nearest boundary
// point's output value rather than extrapolating.
type Curve struct {
	module Module
	// controlPoints is kept sorted by InputValue, ascending.
	controlPoints []ControlPoint
}

// NewCurve creates a new Curve module around the specified source module.
//
// At least 4 control points must be added before the first GetValue call.
func NewCurve(module Module) *Curve {
	return &Curve{module: module}
}

// SourceModule returns the source module used.
func (c *Curve) SourceModule() Module {
	return c.module
}

// SetSourceModule sets the source module to be used.
func (c *Curve) SetSourceModule(module Module) {
	c.module = module
}

// AddControlPoint adds a control point to the curve. Points may be added
// in any order; they are kept sorted by input value.
//
// Panics with ErrControlPointNaN if either value is NaN, or with
// ErrDuplicateControlPoint if a point with the given input value has
// already been added.
func (c *Curve) AddControlPoint(inputValue, outputValue float64) {
	if math.IsNaN(inputValue) || math.IsNaN(outputValue) {
		panic(ErrControlPointNaN)
	}
	idx := sort.Search(len(c.controlPoints), func(i int) bool {
		return c.controlPoints[i].InputValue >= inputValue
	})
	if idx < len(c.controlPoints) && c.controlPoints[idx].InputValue == inputValue {
		panic(ErrDuplicateControlPoint)
	}
	c.controlPoints = append(c.controlPoints, ControlPoint{})
	copy(c.controlPoints[idx+1:], c.controlPoints[idx:])
	c.controlPoints[idx] = ControlPoint{InputValue: inputValue, OutputValue: outputValue}
}

// ClearControlPoints deletes all control points on the curve.
func (c *Curve) ClearControlPoints() {
	c.controlPoints = c.controlPoints[:0]
}

// ControlPoints returns all control points on the curve, in input-value
// ascending order. The returned slice is the curve's own storage and must
// not be mutated.
func (c *Curve) ControlPoints() []ControlPoint {
	return c.controlPoints
}

// GetValue remaps the source value through the control-point spline.
//
// Panics with ErrCurveControlPoints if fewer than 4 control points have
// been added.
func (c *Curve) GetValue(x, y, z float64) float64 {
	if len(c.controlPoints) < 4 {
		panic(ErrCurveControlPoints)
	}

	sourceValue := c.module.GetValue(x, y, z)

	// Index of the first control point whose input value is strictly
	// greater than the source value.
	idxPos := sort.Search(len(c.controlPoints), func(i int) bool {
		return c.controlPoints[i].InputValue > sourceValue
	})

	// Pick the four nearest control points for cubic interpolation,
	// duplicating boundary points past the ends of the range.
	last := len(c.controlPoints) - 1
	idx0 := clampIndex(idxPos-2, 0, last)
	idx1 := clampIndex(idxPos-1, 0, last)
	idx2 := clampIndex(idxPos, 0, last)
	idx3 := clampIndex(idxPos+1, 0, last)

	// Source value outside the control range: collapse to the nearest
	// boundary point's output value.
	if idx1 == idx2 {
		return c.controlPoints[idx1].OutputValue
	}

	input0 := c.controlPoints[idx1].InputValue
	input1 := c.controlPoints[idx2].InputValue
	alpha := (sourceValue - input0) / (input1 - input0)

	return noisegen.CubicInterp(
		c.controlPoints[idx0].OutputValue,
		c.controlPoints[idx1].OutputValue,
		c.controlPoints[idx2].OutputValue,
		c.controlPoints[idx3].OutputValue,
		alpha)
}

// clampIndex clamps an index into [lo, hi].
func clampIndex(idx, lo, hi int) int {
	if idx < lo {
		return lo
	} else if idx > hi {
		return hi
	}
	return idx
}
