package module

// Default bounds for the Clamp module.
const (
	// DefaultClampLowerBound is the default lower bound of the clamping range.
	DefaultClampLowerBound = -1.0
	// DefaultClampUpperBound is the default upper bound of the clamping range.
	DefaultClampUpperBound = 1.0
)

// Clamp is a modifier that clamps the output of its source module to a
// [lowerBound, upperBound] range.
type Clamp struct {
	module     Module
	lowerBound float64
	upperBound float64
}

// NewClamp creates a new Clamp module around the specified source module,
// using default bounds.
func NewClamp(module Module) *Clamp {
	return &Clamp{
		module:     module,
		lowerBound: DefaultClampLowerBound,
		upperBound: DefaultClampUpperBound,
	}
}

// SourceModule returns the source module used.
func (c *Clamp) SourceModule() Module {
	return c.module
}

// SetSourceModule sets the source module to be used.
func (c *Clamp) SetSourceModule(module Module) {
	c.module = module
}

// LowerBound returns the lower bound of the clamping range.
func (c *Clamp) LowerBound() float64 {
	return c.lowerBound
}

// UpperBound returns the upper bound of the clamping range.
func (c *Clamp) UpperBound() float64 {
	return c.upperBound
}

// SetBounds sets the lower and upper bounds of the clamping range.
//
// Panics with ErrBounds if lowerBound is greater than upperBound.
func (c *Clamp) SetBounds(lowerBound, upperBound float64) {
	if lowerBound > upperBound {
		panic(ErrBounds)
	}
	c.lowerBound = lowerBound
	c.upperBound = upperBound
}

// GetValue returns the source value clamped to [lowerBound, upperBound].
func (c *Clamp) GetValue(x, y, z float64) float64 {
	value := c.module.GetValue(x, y, z)
	if value < c.lowerBound {
		return c.lowerBound
	} else if value > c.upperBound {
		return c.upperBound
	}
	return value
}
