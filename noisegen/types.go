// Package noisegen defines the quality enum shared by all coherent-noise
// functions and their fractal consumers.
package noisegen

// Quality selects the interpolation kernel applied to the fractional
// offset within a lattice cube before blending corner contributions.
//
//   - QualityFast     — no easing; the raw fractional offset is used.
//     Fastest, but produces visible creasing at lattice boundaries.
//   - QualityStandard — cubic S-curve (SCurve3). The default trade-off.
//   - QualityBest     — quintic S-curve (SCurve5). Smoothest output,
//     continuous second derivative, slowest.
type Quality int

const (
	// QualityFast uses the raw fractional offset (no easing).
	QualityFast Quality = iota
	// QualityStandard eases the offset with a cubic S-curve.
	QualityStandard
	// QualityBest eases the offset with a quintic S-curve.
	QualityBest
)

// String returns the human-readable name of the quality level.
func (q Quality) String() string {
	switch q {
	case QualityFast:
		return "Fast"
	case QualityStandard:
		return "Standard"
	case QualityBest:
		return "Best"
	default:
		return "Unknown"
	}
}
