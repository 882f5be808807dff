package module

import "math"

// Power is a combiner that raises the output of its first source module
// to the power of the output of its second.
type Power struct {
	module1 Module
	module2 Module
}

// NewPower creates a new Power module around the specified source
// modules.
func NewPower(module1, module2 Module) *Power {
	return &Power{module1: module1, module2: module2}
}

// SourceModule1 returns the base source module.
func (p *Power) SourceModule1() Module {
	return p.module1
}

// SourceModule2 returns the exponent source module.
func (p *Power) SourceModule2() Module {
	return p.module2
}

// SetSourceModule1 sets the base source module to be used.
func (p *Power) SetSourceModule1(module Module) {
	p.module1 = module
}

// SetSourceModule2 sets the exponent source module to be used.
func (p *Power) SetSourceModule2(module Module) {
	p.module2 = module
}

// GetValue returns source1(x, y, z) raised to source2(x, y, z).
func (p *Power) GetValue(x, y, z float64) float64 {
	return math.Pow(p.module1.GetValue(x, y, z), p.module2.GetValue(x, y, z))
}
