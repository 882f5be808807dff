package module

import "github.com/katalvlaran/lvlnoise/noisegen"

// Blend is a combiner that outputs a linear blend of its two source
// modules, weighted by a control module.
//
// The control value is mapped from [-1, +1] onto a [0, 1] blend weight:
// negative control values weigh the blend toward the first source,
// positive values toward the second.
type Blend struct {
	module1  Module
	module2  Module
	mcontrol Module
}

// NewBlend creates a new Blend module around the specified source and
// control modules.
func NewBlend(module1, module2, control Module) *Blend {
	return &Blend{module1: module1, module2: module2, mcontrol: control}
}

// SourceModule1 returns the first source module.
func (b *Blend) SourceModule1() Module {
	return b.module1
}

// SourceModule2 returns the second source module.
func (b *Blend) SourceModule2() Module {
	return b.module2
}

// ControlModule returns the control module that determines the blend
// weight.
func (b *Blend) ControlModule() Module {
	return b.mcontrol
}

// SetSourceModule1 sets the first source module to be used.
func (b *Blend) SetSourceModule1(module Module) {
	b.module1 = module
}

// SetSourceModule2 sets the second source module to be used.
func (b *Blend) SetSourceModule2(module Module) {
	b.module2 = module
}

// SetControlModule sets the control module that determines the blend
// weight.
func (b *Blend) SetControlModule(control Module) {
	b.mcontrol = control
}

// GetValue returns the control-weighted linear blend of the two source
// values.
func (b *Blend) GetValue(x, y, z float64) float64 {
	v0 := b.module1.GetValue(x, y, z)
	v1 := b.module2.GetValue(x, y, z)
	alpha := (b.mcontrol.GetValue(x, y, z) + 1.0) / 2.0
	return noisegen.LinearInterp(v0, v1, alpha)
}
