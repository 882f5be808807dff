package module

import "math"

// DefaultExponent is the default exponent of the Exponent module.
const DefaultExponent = 1.0

// Exponent is a modifier that maps the output of its source module onto
// an exponential curve.
//
// Because most modules output values in [-1.0, +1.0], the value is first
// normalized into [0.0, 1.0], raised to the exponent, then rescaled back
// to the original range.
type Exponent struct {
	module   Module
	exponent float64
}

// NewExponent creates a new Exponent module around the specified source
// module, using the default exponent.
func NewExponent(module Module) *Exponent {
	return &Exponent{module: module, exponent: DefaultExponent}
}

// SourceModule returns the source module used.
func (e *Exponent) SourceModule() Module {
	return e.module
}

// SetSourceModule sets the source module to be used.
func (e *Exponent) SetSourceModule(module Module) {
	e.module = module
}

// Exponent returns the exponent applied to the normalized source value.
func (e *Exponent) Exponent() float64 {
	return e.exponent
}

// SetExponent sets the exponent applied to the normalized source value.
func (e *Exponent) SetExponent(exponent float64) {
	e.exponent = exponent
}

// GetValue returns |((source+1)/2)|^exponent rescaled to the source range.
func (e *Exponent) GetValue(x, y, z float64) float64 {
	value := e.module.GetValue(x, y, z)
	return math.Pow(math.Abs((value+1.0)/2.0), e.exponent)*2.0 - 1.0
}
