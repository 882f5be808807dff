package module

import "math"

// Abs is a modifier that outputs the absolute value of its source module.
type Abs struct {
	module Module
}

// NewAbs creates a new Abs module around the specified source module.
func NewAbs(module Module) *Abs {
	return &Abs{module: module}
}

// SourceModule returns the source module used.
func (a *Abs) SourceModule() Module {
	return a.module
}

// SetSourceModule sets the source module to be used.
func (a *Abs) SetSourceModule(module Module) {
	a.module = module
}

// GetValue returns |source(x, y, z)|.
func (a *Abs) GetValue(x, y, z float64) float64 {
	return math.Abs(a.module.GetValue(x, y, z))
}
