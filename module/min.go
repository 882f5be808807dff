package module

import "math"

// Min is a combiner that outputs the smaller of its two source modules'
// values.
type Min struct {
	module1 Module
	module2 Module
}

// NewMin creates a new Min module around the specified source modules.
func NewMin(module1, module2 Module) *Min {
	return &Min{module1: module1, module2: module2}
}

// SourceModule1 returns the first source module.
func (m *Min) SourceModule1() Module {
	return m.module1
}

// SourceModule2 returns the second source module.
func (m *Min) SourceModule2() Module {
	return m.module2
}

// SetSourceModule1 sets the first source module to be used.
func (m *Min) SetSourceModule1(module Module) {
	m.module1 = module
}

// SetSourceModule2 sets the second source module to be used.
func (m *Min) SetSourceModule2(module Module) {
	m.module2 = module
}

// GetValue returns min(source1(x, y, z), source2(x, y, z)).
func (m *Min) GetValue(x, y, z float64) float64 {
	return math.Min(m.module1.GetValue(x, y, z), m.module2.GetValue(x, y, z))
}
