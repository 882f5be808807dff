package module

// Cache is a modifier that memoizes the most recently evaluated
// (coordinate, result) pair of its source module and returns the cached
// result when a bit-identical coordinate is evaluated again.
//
// Caching pays off when one expensive subtree feeds several parents that
// all sample the same coordinate during a single tree walk.
//
// Cache is the one stateful node in the catalogue: it must not be
// evaluated from multiple goroutines without external synchronization,
// even for a fixed tree.
type Cache struct {
	module Module

	cached           bool
	keyX, keyY, keyZ float64
	cachedValue      float64
}

// NewCache creates a new Cache module around the specified source module.
func NewCache(module Module) *Cache {
	return &Cache{module: module}
}

// SourceModule returns the source module used.
func (c *Cache) SourceModule() Module {
	return c.module
}

// SetSourceModule sets the source module to be used and invalidates the
// cached pair.
func (c *Cache) SetSourceModule(module Module) {
	c.module = module
	c.cached = false
}

// GetValue returns the cached result for a bit-identical repeat of the
// previous coordinate, and delegates to the source module otherwise.
func (c *Cache) GetValue(x, y, z float64) float64 {
	if !c.cached || x != c.keyX || y != c.keyY || z != c.keyZ {
		c.cachedValue = c.module.GetValue(x, y, z)
		c.keyX, c.keyY, c.keyZ = x, y, z
		c.cached = true
	}
	return c.cachedValue
}
