package module

// DefaultConstValue is the default output value of a Constant module.
const DefaultConstValue = 0.0

// Constant is a generator that outputs the same value everywhere.
//
// Constants are the workhorse leaves of composition trees: thresholds for
// Select, fixed displacement amounts for Displace, exponents for Power.
type Constant struct {
	val float64
}

// NewConstant creates a new Constant module with default parameters.
func NewConstant() *Constant {
	return &Constant{val: DefaultConstValue}
}

// ConstValue returns the constant output value for this module.
func (c *Constant) ConstValue() float64 {
	return c.val
}

// SetConstValue sets the constant output value for this module.
func (c *Constant) SetConstValue(val float64) {
	c.val = val
}

// GetValue returns the constant value regardless of the coordinate.
func (c *Constant) GetValue(_, _, _ float64) float64 {
	return c.val
}
