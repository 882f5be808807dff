package module

// Default scaling factors for the ScalePoint module.
const (
	// DefaultScalePointX is the default x-axis scaling factor.
	DefaultScalePointX = 1.0
	// DefaultScalePointY is the default y-axis scaling factor.
	DefaultScalePointY = 1.0
	// DefaultScalePointZ is the default z-axis scaling factor.
	DefaultScalePointZ = 1.0
)

// ScalePoint is a modifier that multiplies the coordinates of the input
// value by per-axis scaling factors before sampling its source module.
type ScalePoint struct {
	module                 Module
	xScale, yScale, zScale float64
}

// NewScalePoint creates a new ScalePoint module around the specified
// source module, using default scaling factors (the identity scale).
func NewScalePoint(module Module) *ScalePoint {
	return &ScalePoint{
		module: module,
		xScale: DefaultScalePointX,
		yScale: DefaultScalePointY,
		zScale: DefaultScalePointZ,
	}
}

// SourceModule returns the source module used.
func (s *ScalePoint) SourceModule() Module {
	return s.module
}

// SetSourceModule sets the source module to be used.
func (s *ScalePoint) SetSourceModule(module Module) {
	s.module = module
}

// XScale returns the scaling factor applied to the x coordinate.
func (s *ScalePoint) XScale() float64 {
	return s.xScale
}

// YScale returns the scaling factor applied to the y coordinate.
func (s *ScalePoint) YScale() float64 {
	return s.yScale
}

// ZScale returns the scaling factor applied to the z coordinate.
func (s *ScalePoint) ZScale() float64 {
	return s.zScale
}

// SetScale sets the same scaling factor for all three axes.
func (s *ScalePoint) SetScale(scale float64) {
	s.xScale, s.yScale, s.zScale = scale, scale, scale
}

// SetXYZScale sets the per-axis scaling factors.
func (s *ScalePoint) SetXYZScale(x, y, z float64) {
	s.xScale, s.yScale, s.zScale = x, y, z
}

// SetXScale sets the scaling factor applied to the x coordinate.
func (s *ScalePoint) SetXScale(x float64) {
	s.xScale = x
}

// SetYScale sets the scaling factor applied to the y coordinate.
func (s *ScalePoint) SetYScale(y float64) {
	s.yScale = y
}

// SetZScale sets the scaling factor applied to the z coordinate.
func (s *ScalePoint) SetZScale(z float64) {
	s.zScale = z
}

// GetValue samples the source module at the scaled coordinate.
func (s *ScalePoint) GetValue(x, y, z float64) float64 {
	return s.module.GetValue(x*s.xScale, y*s.yScale, z*s.zScale)
}
