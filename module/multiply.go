package module

// Multiply is a combiner that outputs the product of its two source
// modules.
type Multiply struct {
	module1 Module
	module2 Module
}

// NewMultiply creates a new Multiply module around the specified source
// modules.
func NewMultiply(module1, module2 Module) *Multiply {
	return &Multiply{module1: module1, module2: module2}
}

// SourceModule1 returns the first source module.
func (m *Multiply) SourceModule1() Module {
	return m.module1
}

// SourceModule2 returns the second source module.
func (m *Multiply) SourceModule2() Module {
	return m.module2
}

// SetSourceModule1 sets the first source module to be used.
func (m *Multiply) SetSourceModule1(module Module) {
	m.module1 = module
}

// SetSourceModule2 sets the second source module to be used.
func (m *Multiply) SetSourceModule2(module Module) {
	m.module2 = module
}

// GetValue returns source1(x, y, z) * source2(x, y, z).
func (m *Multiply) GetValue(x, y, z float64) float64 {
	return m.module1.GetValue(x, y, z) * m.module2.GetValue(x, y, z)
}
