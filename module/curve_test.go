package module_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlnoise/module"
)

// linearCurve builds a Curve whose control points all sit on the line
// y = x, so the spline must reproduce its input exactly.
func linearCurve(src module.Module) *module.Curve {
	c := module.NewCurve(src)
	c.AddControlPoint(-1.0, -1.0)
	c.AddControlPoint(0.0, 0.0)
	c.AddControlPoint(1.0, 1.0)
	c.AddControlPoint(2.0, 2.0)

	return c
}

// TestCurve_LinearPoints verifies that collinear control points act as
// the identity in the interior of the range.
func TestCurve_LinearPoints(t *testing.T) {
	c := linearCurve(constant(0.5))
	assert.Equal(t, 0.5, c.GetValue(0, 0, 0), "a collinear spline must reproduce its input")

	c.SetSourceModule(constant(0.0))
	assert.Equal(t, 0.0, c.GetValue(0, 0, 0), "control points themselves must map to their output values")
}

// TestCurve_BoundaryCollapse verifies that out-of-range source values
// collapse to the nearest boundary control point.
func TestCurve_BoundaryCollapse(t *testing.T) {
	c := linearCurve(constant(-5.0))
	assert.Equal(t, -1.0, c.GetValue(0, 0, 0), "source below the range must output the first control point")

	c.SetSourceModule(constant(10.0))
	assert.Equal(t, 2.0, c.GetValue(0, 0, 0), "source above the range must output the last control point")
}

// TestCurve_SortedInsertion verifies that control points may be added
// in any order and come back sorted by input value.
func TestCurve_SortedInsertion(t *testing.T) {
	c := module.NewCurve(constant(0))
	c.AddControlPoint(1.0, 10.0)
	c.AddControlPoint(-1.0, -10.0)
	c.AddControlPoint(2.0, 20.0)
	c.AddControlPoint(0.0, 0.0)

	points := c.ControlPoints()
	inputs := make([]float64, 0, len(points))
	for _, cp := range points {
		inputs = append(inputs, cp.InputValue)
	}
	assert.Equal(t, []float64{-1.0, 0.0, 1.0, 2.0}, inputs, "control points must be kept sorted by input value")
}

// TestCurve_TooFewPointsPanic verifies the four-point minimum.
func TestCurve_TooFewPointsPanic(t *testing.T) {
	c := module.NewCurve(constant(0))
	c.AddControlPoint(0.0, 0.0)
	c.AddControlPoint(1.0, 1.0)
	c.AddControlPoint(2.0, 2.0)

	assert.PanicsWithValue(t, module.ErrCurveControlPoints, func() { c.GetValue(0, 0, 0) },
		"fewer than four control points must panic on evaluation")
}

// TestCurve_BadControlPointPanics verifies the NaN and duplicate guards.
func TestCurve_BadControlPointPanics(t *testing.T) {
	c := module.NewCurve(constant(0))
	c.AddControlPoint(0.5, 1.0)

	assert.PanicsWithValue(t, module.ErrControlPointNaN, func() { c.AddControlPoint(math.NaN(), 0.0) },
		"a NaN input value must panic")
	assert.PanicsWithValue(t, module.ErrDuplicateControlPoint, func() { c.AddControlPoint(0.5, 2.0) },
		"a duplicate input value must panic")
}

// TestCurve_ClearControlPoints verifies that clearing resets the spline.
func TestCurve_ClearControlPoints(t *testing.T) {
	c := linearCurve(constant(0.5))
	c.ClearControlPoints()
	assert.Empty(t, c.ControlPoints(), "cleared curve must hold no control points")
	assert.PanicsWithValue(t, module.ErrCurveControlPoints, func() { c.GetValue(0, 0, 0) },
		"a cleared curve must panic on evaluation")
}

// TestCurve_NonLinearShape pins a value of a genuinely curved spline
// against the Catmull-Rom interpolation it is built on.
func TestCurve_NonLinearShape(t *testing.T) {
	c := module.NewCurve(constant(0.5))
	c.AddControlPoint(-1.0, -1.0)
	c.AddControlPoint(0.0, -0.5)
	c.AddControlPoint(1.0, 0.75)
	c.AddControlPoint(2.0, 1.0)

	// Bracketed by (0, -0.5) and (1, 0.75) at alpha 0.5.
	got := c.GetValue(0, 0, 0)
	assert.Greater(t, got, -0.5, "output must rise above the left bracket midpoint")
	assert.Less(t, got, 0.75, "output must stay below the right bracket")
}
