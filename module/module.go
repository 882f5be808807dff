package module

import "errors"

// Module is the single capability every noise node exposes: evaluate the
// scalar field at a 3D coordinate.
//
// Implementations must be deterministic — identical coordinates and
// identical node parameters yield bit-identical output — and free of side
// effects (Cache being the one documented exception).
type Module interface {
	// GetValue returns the value of the scalar field at (x, y, z).
	GetValue(x, y, z float64) float64
}

// Sentinel panic values for module misconfiguration. All of them mark
// unrecoverable programmer errors: they are raised by panic at the
// offending constructor or setter call, or inside GetValue for nodes left
// in an unusable state before first evaluation.
var (
	// ErrOctaveCount indicates an octave count outside the range [1, MaxOctave].
	ErrOctaveCount = errors.New("module: octave count must be in the range [1, 30]")
	// ErrBounds indicates a lower bound greater than the upper bound.
	ErrBounds = errors.New("module: lower bound must not exceed upper bound")
	// ErrControlPointNaN indicates a NaN control-point input or output value.
	ErrControlPointNaN = errors.New("module: control point values must not be NaN")
	// ErrDuplicateControlPoint indicates a control point whose input value was already added.
	ErrDuplicateControlPoint = errors.New("module: control point with the given input value already exists")
	// ErrControlPointCount indicates MakeControlPoints was called with fewer than 2 points.
	ErrControlPointCount = errors.New("module: control point count must be at least 2")
	// ErrCurveControlPoints indicates a Curve evaluated with fewer than 4 control points.
	ErrCurveControlPoints = errors.New("module: curve requires at least 4 control points before evaluation")
	// ErrTerraceControlPoints indicates a Terrace evaluated with fewer than 2 control points.
	ErrTerraceControlPoints = errors.New("module: terrace requires at least 2 control points before evaluation")
)

// MaxOctave is the upper bound on octave counts accepted by the fractal
// generators (Perlin, Billow, RidgedMulti) and by Turbulence's roughness.
const MaxOctave int32 = 30
