package module

import "github.com/katalvlaran/lvlnoise/noisegen"

// Default parameters for the Select module.
const (
	// DefaultSelectEdgeFalloff is the default width of the edge transition.
	DefaultSelectEdgeFalloff = 0.0
	// DefaultSelectLowerBound is the default lower bound of the selection range.
	DefaultSelectLowerBound = -1.0
	// DefaultSelectUpperBound is the default upper bound of the selection range.
	DefaultSelectUpperBound = 1.0
)

// Select is a combiner that outputs one of its two source modules chosen
// by a control module.
//
// If the control value lies within the selection range
// [lowerBound, upperBound], the second source module is output; otherwise
// the first. With a positive edge falloff, the hard cut is replaced by an
// SCurve3-weighted blend across [bound−falloff, bound+falloff] at each
// edge of the selection range.
type Select struct {
	module1  Module
	module2  Module
	mcontrol Module

	edgeFalloff float64
	lowerBound  float64
	upperBound  float64
}

// NewSelect creates a new Select module around the specified source and
// control modules, using default parameters.
func NewSelect(module1, module2, control Module) *Select {
	return &Select{
		module1:     module1,
		module2:     module2,
		mcontrol:    control,
		edgeFalloff: DefaultSelectEdgeFalloff,
		lowerBound:  DefaultSelectLowerBound,
		upperBound:  DefaultSelectUpperBound,
	}
}

// SourceModule1 returns the source module output outside the selection
// range.
func (s *Select) SourceModule1() Module {
	return s.module1
}

// SourceModule2 returns the source module output inside the selection
// range.
func (s *Select) SourceModule2() Module {
	return s.module2
}

// ControlModule returns the control module that picks the output source.
func (s *Select) ControlModule() Module {
	return s.mcontrol
}

// EdgeFalloff returns the width of the edge transition at either edge of
// the selection range.
func (s *Select) EdgeFalloff() float64 {
	return s.edgeFalloff
}

// LowerBound returns the lower bound of the selection range.
func (s *Select) LowerBound() float64 {
	return s.lowerBound
}

// UpperBound returns the upper bound of the selection range.
func (s *Select) UpperBound() float64 {
	return s.upperBound
}

// SetSourceModule1 sets the source module output outside the selection
// range.
func (s *Select) SetSourceModule1(module Module) {
	s.module1 = module
}

// SetSourceModule2 sets the source module output inside the selection
// range.
func (s *Select) SetSourceModule2(module Module) {
	s.module2 = module
}

// SetControlModule sets the control module that picks the output source.
func (s *Select) SetControlModule(control Module) {
	s.mcontrol = control
}

// SetEdgeFalloff sets the width of the edge transition at either edge of
// the selection range.
//
// For example, with a selection range of [0.5, 0.8] and an edge falloff
// of 0.1, GetValue outputs the first source below 0.4, blends across
// [0.4, 0.6], outputs the second source across [0.6, 0.7], blends back
// across [0.7, 0.9], and outputs the first source above 0.9.
//
// The falloff is clamped so the two transition bands never overlap.
func (s *Select) SetEdgeFalloff(edgeFalloff float64) {
	s.edgeFalloff = edgeFalloff
	s.clampFalloff()
}

// SetBounds sets the lower and upper bounds of the selection range and
// re-clamps the edge falloff against the new range.
//
// Panics with ErrBounds if lowerBound is greater than upperBound.
func (s *Select) SetBounds(lowerBound, upperBound float64) {
	if lowerBound > upperBound {
		panic(ErrBounds)
	}
	s.lowerBound = lowerBound
	s.upperBound = upperBound
	s.clampFalloff()
}

// clampFalloff keeps the edge-falloff transition bands from overlapping.
func (s *Select) clampFalloff() {
	boundSize := s.upperBound - s.lowerBound
	if boundSize/2.0 < s.edgeFalloff {
		s.edgeFalloff = boundSize / 2.0
	}
}

// GetValue returns the control-selected source value, blended across the
// edge transitions when a falloff is configured.
func (s *Select) GetValue(x, y, z float64) float64 {
	controlValue := s.mcontrol.GetValue(x, y, z)

	if s.edgeFalloff > 0.0 {
		switch {
		case controlValue < s.lowerBound-s.edgeFalloff:
			// Below the selection range and outside the transition.
			return s.module1.GetValue(x, y, z)
		case controlValue < s.lowerBound+s.edgeFalloff:
			// Inside the lower transition band.
			lowerCurve := s.lowerBound - s.edgeFalloff
			upperCurve := s.lowerBound + s.edgeFalloff
			alpha := noisegen.SCurve3((controlValue - lowerCurve) / (upperCurve - lowerCurve))
			return noisegen.LinearInterp(
				s.module1.GetValue(x, y, z),
				s.module2.GetValue(x, y, z),
				alpha)
		case controlValue < s.upperBound-s.edgeFalloff:
			// Inside the selection range.
			return s.module2.GetValue(x, y, z)
		case controlValue < s.upperBound+s.edgeFalloff:
			// Inside the upper transition band.
			lowerCurve := s.upperBound - s.edgeFalloff
			upperCurve := s.upperBound + s.edgeFalloff
			alpha := noisegen.SCurve3((controlValue - lowerCurve) / (upperCurve - lowerCurve))
			return noisegen.LinearInterp(
				s.module2.GetValue(x, y, z),
				s.module1.GetValue(x, y, z),
				alpha)
		default:
			// Above the selection range and outside the transition.
			return s.module1.GetValue(x, y, z)
		}
	}

	if controlValue < s.lowerBound || controlValue > s.upperBound {
		return s.module1.GetValue(x, y, z)
	}
	return s.module2.GetValue(x, y, z)
}
