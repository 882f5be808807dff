package module

// Invert is a modifier that negates the output of its source module.
type Invert struct {
	module Module
}

// NewInvert creates a new Invert module around the specified source module.
func NewInvert(module Module) *Invert {
	return &Invert{module: module}
}

// SourceModule returns the source module used.
func (i *Invert) SourceModule() Module {
	return i.module
}

// SetSourceModule sets the source module to be used.
func (i *Invert) SetSourceModule(module Module) {
	i.module = module
}

// GetValue returns -source(x, y, z).
func (i *Invert) GetValue(x, y, z float64) float64 {
	return -i.module.GetValue(x, y, z)
}
