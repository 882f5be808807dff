package module

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default rotation angles (degrees) for the RotatePoint module.
const (
	// DefaultRotateX is the default rotation around the x axis.
	DefaultRotateX = 0.0
	// DefaultRotateY is the default rotation around the y axis.
	DefaultRotateY = 0.0
	// DefaultRotateZ is the default rotation around the z axis.
	DefaultRotateZ = 0.0
)

// RotatePoint is a modifier that rotates the input coordinate around the
// origin before sampling its source module.
//
// Angles are Euler angles in degrees with a fixed axis order. The 3×3
// rotation matrix is derived state: a pure function of the angles,
// recomputed eagerly on every angle mutation so that GetValue carries no
// hidden first-call cost and no synchronization concerns.
type RotatePoint struct {
	module Module
	// xAngle, yAngle and zAngle are the rotation angles in degrees.
	xAngle, yAngle, zAngle float64
	// matrix is the derived rotation matrix applied at evaluation time.
	matrix mgl64.Mat3
}

// NewRotatePoint creates a new RotatePoint module around the specified
// source module, using default angles (the identity rotation).
func NewRotatePoint(module Module) *RotatePoint {
	r := &RotatePoint{
		module: module,
		xAngle: DefaultRotateX,
		yAngle: DefaultRotateY,
		zAngle: DefaultRotateZ,
	}
	r.updateMatrix()
	return r
}

// SourceModule returns the source module used.
func (r *RotatePoint) SourceModule() Module {
	return r.module
}

// SetSourceModule sets the source module to be used.
func (r *RotatePoint) SetSourceModule(module Module) {
	r.module = module
}

// XAngle returns the rotation angle around the x axis, in degrees.
func (r *RotatePoint) XAngle() float64 {
	return r.xAngle
}

// YAngle returns the rotation angle around the y axis, in degrees.
func (r *RotatePoint) YAngle() float64 {
	return r.yAngle
}

// ZAngle returns the rotation angle around the z axis, in degrees.
func (r *RotatePoint) ZAngle() float64 {
	return r.zAngle
}

// SetAngles sets the rotation angles around all three axes, in degrees.
func (r *RotatePoint) SetAngles(x, y, z float64) {
	r.xAngle, r.yAngle, r.zAngle = x, y, z
	r.updateMatrix()
}

// SetXAngle sets the rotation angle around the x axis, in degrees.
func (r *RotatePoint) SetXAngle(x float64) {
	r.xAngle = x
	r.updateMatrix()
}

// SetYAngle sets the rotation angle around the y axis, in degrees.
func (r *RotatePoint) SetYAngle(y float64) {
	r.yAngle = y
	r.updateMatrix()
}

// SetZAngle sets the rotation angle around the z axis, in degrees.
func (r *RotatePoint) SetZAngle(z float64) {
	r.zAngle = z
	r.updateMatrix()
}

// updateMatrix recomputes the rotation matrix from the current angles.
func (r *RotatePoint) updateMatrix() {
	xSin, xCos := math.Sincos(mgl64.DegToRad(r.xAngle))
	ySin, yCos := math.Sincos(mgl64.DegToRad(r.yAngle))
	zSin, zCos := math.Sincos(mgl64.DegToRad(r.zAngle))

	r.matrix = mgl64.Mat3FromRows(
		mgl64.Vec3{ySin*xSin*zSin + yCos*zCos, xCos * zSin, ySin*zCos - yCos*xSin*zSin},
		mgl64.Vec3{ySin*xSin*zCos - yCos*zSin, xCos * zCos, -yCos*xSin*zCos - ySin*zSin},
		mgl64.Vec3{-ySin * xCos, xSin, yCos * xCos},
	)
}

// GetValue rotates (x, y, z) around the origin and samples the source
// module at the rotated coordinate.
func (r *RotatePoint) GetValue(x, y, z float64) float64 {
	p := r.matrix.Mul3x1(mgl64.Vec3{x, y, z})
	return r.module.GetValue(p.X(), p.Y(), p.Z())
}
