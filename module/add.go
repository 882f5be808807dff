package module

// Add is a combiner that outputs the sum of its two source modules.
type Add struct {
	module1 Module
	module2 Module
}

// NewAdd creates a new Add module around the specified source modules.
func NewAdd(module1, module2 Module) *Add {
	return &Add{module1: module1, module2: module2}
}

// SourceModule1 returns the first source module.
func (a *Add) SourceModule1() Module {
	return a.module1
}

// SourceModule2 returns the second source module.
func (a *Add) SourceModule2() Module {
	return a.module2
}

// SetSourceModule1 sets the first source module to be used.
func (a *Add) SetSourceModule1(module Module) {
	a.module1 = module
}

// SetSourceModule2 sets the second source module to be used.
func (a *Add) SetSourceModule2(module Module) {
	a.module2 = module
}

// GetValue returns source1(x, y, z) + source2(x, y, z).
func (a *Add) GetValue(x, y, z float64) float64 {
	return a.module1.GetValue(x, y, z) + a.module2.GetValue(x, y, z)
}
