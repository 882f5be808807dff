package noisegen

// LinearInterp performs linear interpolation between two values.
//
// The alpha value should range from 0.0 to 1.0. If alpha is 0.0 this
// function returns n0; if alpha is 1.0 it returns n1.
func LinearInterp(n0, n1, a float64) float64 {
	return ((1.0 - a) * n0) + (a * n1)
}

// CubicInterp performs cubic interpolation between n1 and n2, with n0 and
// n3 acting as the outer anchors of the curve.
//
// The alpha value should range from 0.0 to 1.0. If alpha is 0.0 this
// function returns n1; if alpha is 1.0 it returns n2.
func CubicInterp(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1
	return p*a*a*a + q*a*a + r*a + s
}

// SCurve3 maps a value onto a cubic S-curve. The input should range from
// 0.0 to 1.0.
//
// The derivative of a cubic S-curve is zero at a = 0.0 and a = 1.0.
func SCurve3(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

// SCurve5 maps a value onto a quintic S-curve. The input should range
// from 0.0 to 1.0.
//
// Both the first and the second derivative of a quintic S-curve are zero
// at a = 0.0 and a = 1.0.
func SCurve5(a float64) float64 {
	a3 := a * a * a
	a4 := a3 * a
	a5 := a4 * a
	return (6.0 * a5) - (15.0 * a4) + (10.0 * a3)
}
