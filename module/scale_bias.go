package module

// Default parameters for the ScaleBias module.
const (
	// DefaultScale is the default scaling factor of the ScaleBias module.
	DefaultScale = 1.0
	// DefaultBias is the default bias of the ScaleBias module.
	DefaultBias = 0.0
)

// ScaleBias is a modifier that multiplies the output of its source module
// by a scaling factor and then adds a bias: value*scale + bias.
type ScaleBias struct {
	module Module
	scale  float64
	bias   float64
}

// NewScaleBias creates a new ScaleBias module around the specified source
// module, using default parameters.
func NewScaleBias(module Module) *ScaleBias {
	return &ScaleBias{module: module, scale: DefaultScale, bias: DefaultBias}
}

// SourceModule returns the source module used.
func (s *ScaleBias) SourceModule() Module {
	return s.module
}

// SetSourceModule sets the source module to be used.
func (s *ScaleBias) SetSourceModule(module Module) {
	s.module = module
}

// Scale returns the scaling factor applied to the source value.
func (s *ScaleBias) Scale() float64 {
	return s.scale
}

// Bias returns the bias added to the scaled source value.
func (s *ScaleBias) Bias() float64 {
	return s.bias
}

// SetScale sets the scaling factor applied to the source value.
func (s *ScaleBias) SetScale(scale float64) {
	s.scale = scale
}

// SetBias sets the bias added to the scaled source value.
func (s *ScaleBias) SetBias(bias float64) {
	s.bias = bias
}

// GetValue returns source(x, y, z)*scale + bias.
func (s *ScaleBias) GetValue(x, y, z float64) float64 {
	return s.module.GetValue(x, y, z)*s.scale + s.bias
}
