package module

import "math"

// Max is a combiner that outputs the larger of its two source modules'
// values.
type Max struct {
	module1 Module
	module2 Module
}

// NewMax creates a new Max module around the specified source modules.
func NewMax(module1, module2 Module) *Max {
	return &Max{module1: module1, module2: module2}
}

// SourceModule1 returns the first source module.
func (m *Max) SourceModule1() Module {
	return m.module1
}

// SourceModule2 returns the second source module.
func (m *Max) SourceModule2() Module {
	return m.module2
}

// SetSourceModule1 sets the first source module to be used.
func (m *Max) SetSourceModule1(module Module) {
	m.module1 = module
}

// SetSourceModule2 sets the second source module to be used.
func (m *Max) SetSourceModule2(module Module) {
	m.module2 = module
}

// GetValue returns max(source1(x, y, z), source2(x, y, z)).
func (m *Max) GetValue(x, y, z float64) float64 {
	return math.Max(m.module1.GetValue(x, y, z), m.module2.GetValue(x, y, z))
}
