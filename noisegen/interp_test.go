package noisegen_test

import (
	"testing"

	"github.com/katalvlaran/lvlnoise/noisegen"
	"github.com/stretchr/testify/assert"
)

// TestLinearInterp_Endpoints verifies that alpha 0 returns n0 and alpha 1
// returns n1 exactly.
func TestLinearInterp_Endpoints(t *testing.T) {
	assert.Equal(t, 2.5, noisegen.LinearInterp(2.5, -7.0, 0.0), "alpha=0 must return n0")
	assert.Equal(t, -7.0, noisegen.LinearInterp(2.5, -7.0, 1.0), "alpha=1 must return n1")
	assert.Equal(t, 0.5, noisegen.LinearInterp(0.0, 1.0, 0.5), "alpha=0.5 must return the midpoint")
}

// TestCubicInterp_Endpoints verifies the Catmull-Rom coefficient identity:
// alpha 0 returns n1, alpha 1 returns n2.
func TestCubicInterp_Endpoints(t *testing.T) {
	assert.Equal(t, 0.0, noisegen.CubicInterp(-1, 0, 1, 2, 0.0), "alpha=0 must return n1")
	assert.Equal(t, 1.0, noisegen.CubicInterp(-1, 0, 1, 2, 1.0), "alpha=1 must return n2")
}

// TestCubicInterp_CollinearPoints verifies that collinear anchors reproduce
// the straight line between n1 and n2.
func TestCubicInterp_CollinearPoints(t *testing.T) {
	assert.Equal(t, 0.5, noisegen.CubicInterp(-1, 0, 1, 2, 0.5), "collinear anchors must interpolate linearly")
}

// TestSCurve3_Anchors pins the cubic S-curve at its fixed points.
func TestSCurve3_Anchors(t *testing.T) {
	assert.Equal(t, 0.0, noisegen.SCurve3(0.0), "SCurve3(0) must be 0")
	assert.Equal(t, 1.0, noisegen.SCurve3(1.0), "SCurve3(1) must be 1")
	assert.Equal(t, 0.5, noisegen.SCurve3(0.5), "SCurve3(0.5) must be one half exactly")
}

// TestSCurve5_Anchors pins the quintic S-curve at its fixed points.
func TestSCurve5_Anchors(t *testing.T) {
	assert.Equal(t, 0.0, noisegen.SCurve5(0.0), "SCurve5(0) must be 0")
	assert.Equal(t, 1.0, noisegen.SCurve5(1.0), "SCurve5(1) must be 1")
	assert.Equal(t, 0.5, noisegen.SCurve5(0.5), "SCurve5(0.5) must be one half exactly")
}
