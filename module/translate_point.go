package module

// Default translation amounts for the TranslatePoint module.
const (
	// DefaultTranslatePointX is the default x-axis translation.
	DefaultTranslatePointX = 0.0
	// DefaultTranslatePointY is the default y-axis translation.
	DefaultTranslatePointY = 0.0
	// DefaultTranslatePointZ is the default z-axis translation.
	DefaultTranslatePointZ = 0.0
)

// TranslatePoint is a modifier that moves the coordinates of the input
// value by per-axis translation amounts before sampling its source
// module.
type TranslatePoint struct {
	module                 Module
	xTrans, yTrans, zTrans float64
}

// NewTranslatePoint creates a new TranslatePoint module around the
// specified source module, using default translations (no movement).
func NewTranslatePoint(module Module) *TranslatePoint {
	return &TranslatePoint{
		module: module,
		xTrans: DefaultTranslatePointX,
		yTrans: DefaultTranslatePointY,
		zTrans: DefaultTranslatePointZ,
	}
}

// SourceModule returns the source module used.
func (t *TranslatePoint) SourceModule() Module {
	return t.module
}

// SetSourceModule sets the source module to be used.
func (t *TranslatePoint) SetSourceModule(module Module) {
	t.module = module
}

// XTranslation returns the translation applied to the x coordinate.
func (t *TranslatePoint) XTranslation() float64 {
	return t.xTrans
}

// YTranslation returns the translation applied to the y coordinate.
func (t *TranslatePoint) YTranslation() float64 {
	return t.yTrans
}

// ZTranslation returns the translation applied to the z coordinate.
func (t *TranslatePoint) ZTranslation() float64 {
	return t.zTrans
}

// SetTranslation sets the same translation amount for all three axes.
func (t *TranslatePoint) SetTranslation(trans float64) {
	t.xTrans, t.yTrans, t.zTrans = trans, trans, trans
}

// SetXYZTranslation sets the per-axis translation amounts.
func (t *TranslatePoint) SetXYZTranslation(x, y, z float64) {
	t.xTrans, t.yTrans, t.zTrans = x, y, z
}

// SetXTranslation sets the translation applied to the x coordinate.
func (t *TranslatePoint) SetXTranslation(x float64) {
	t.xTrans = x
}

// SetYTranslation sets the translation applied to the y coordinate.
func (t *TranslatePoint) SetYTranslation(y float64) {
	t.yTrans = y
}

// SetZTranslation sets the translation applied to the z coordinate.
func (t *TranslatePoint) SetZTranslation(z float64) {
	t.zTrans = z
}

// GetValue samples the source module at the translated coordinate.
func (t *TranslatePoint) GetValue(x, y, z float64) float64 {
	return t.module.GetValue(x+t.xTrans, y+t.yTrans, z+t.zTrans)
}
