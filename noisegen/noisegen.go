package noisegen

import "math"

// Lattice-hash constants. These exact primes (and the 8-bit xor fold) are
// what make two calls with the same lattice coordinates and seed agree
// bit-for-bit, across every generator and every octave.
const (
	xNoiseGen    int32 = 1619
	yNoiseGen    int32 = 31337
	zNoiseGen    int32 = 6971
	seedNoiseGen int32 = 1013
	shiftNoiseGen      = 8
)

// invSqrt2 is 1/√2, the component magnitude of a normalized cube-edge
// gradient direction.
const invSqrt2 = 0.7071067811865476

// gradientScale renormalizes a unit-gradient dot product so that
// GradientCoherentNoise3D output usually spans [-1.0, +1.0].
const gradientScale = 2.12

// gradients holds the 16 unit gradient directions used by
// GradientNoise3D: the 12 normalized cube-edge directions plus 4 repeats
// so the hash can be masked to 4 bits without bias toward any axis.
var gradients = [16][3]float64{
	{invSqrt2, invSqrt2, 0},
	{-invSqrt2, invSqrt2, 0},
	{invSqrt2, -invSqrt2, 0},
	{-invSqrt2, -invSqrt2, 0},
	{invSqrt2, 0, invSqrt2},
	{-invSqrt2, 0, invSqrt2},
	{invSqrt2, 0, -invSqrt2},
	{-invSqrt2, 0, -invSqrt2},
	{0, invSqrt2, invSqrt2},
	{0, -invSqrt2, invSqrt2},
	{0, invSqrt2, -invSqrt2},
	{0, -invSqrt2, -invSqrt2},
	{invSqrt2, invSqrt2, 0},
	{-invSqrt2, invSqrt2, 0},
	{0, -invSqrt2, invSqrt2},
	{0, -invSqrt2, -invSqrt2},
}

// GradientNoise3D computes the gradient-noise contribution of a single
// lattice point.
//
// (fx, fy, fz) is the sample position and (ix, iy, iz) the integer lattice
// corner whose pseudo-random gradient is dotted with the offset from the
// corner to the sample. The result is exactly 0 when the sample sits on
// the corner itself, which every fractal generator relies on.
func GradientNoise3D(fx, fy, fz float64, ix, iy, iz, seed int32) float64 {
	// Hash the lattice coordinates and the seed into a gradient index.
	// int32 arithmetic wraps, which is exactly what keeps the hash
	// deterministic across platforms.
	vectorIndex := xNoiseGen*ix + yNoiseGen*iy + zNoiseGen*iz + seedNoiseGen*seed
	vectorIndex ^= vectorIndex >> shiftNoiseGen
	vectorIndex &= 0x0f

	g := gradients[vectorIndex]

	// Offset from the lattice corner to the sample position.
	px := fx - float64(ix)
	py := fy - float64(iy)
	pz := fz - float64(iz)

	return (g[0]*px + g[1]*py + g[2]*pz) * gradientScale
}

// GradientCoherentNoise3D computes smooth gradient noise at an arbitrary
// position by interpolating the gradient contributions of the 8 corners
// of the surrounding unit lattice cube.
//
// The quality level selects the easing kernel applied to the fractional
// offsets before trilinear blending. Identical (x, y, z, seed, quality)
// always yields bit-identical output.
func GradientCoherentNoise3D(x, y, z float64, seed int32, quality Quality) float64 {
	// Locate the unit cube that contains the sample. Truncation toward
	// zero with a -1 correction for non-positive values matches the
	// classic libnoise lattice addressing.
	x0 := latticeFloor(x)
	y0 := latticeFloor(y)
	z0 := latticeFloor(z)
	x1 := x0 + 1
	y1 := y0 + 1
	z1 := z0 + 1

	// Map the fractional position inside the cube onto the easing curve.
	var xs, ys, zs float64
	switch quality {
	case QualityFast:
		xs = x - float64(x0)
		ys = y - float64(y0)
		zs = z - float64(z0)
	case QualityBest:
		xs = SCurve5(x - float64(x0))
		ys = SCurve5(y - float64(y0))
		zs = SCurve5(z - float64(z0))
	default:
		xs = SCurve3(x - float64(x0))
		ys = SCurve3(y - float64(y0))
		zs = SCurve3(z - float64(z0))
	}

	// Blend the 8 corner contributions along x, then y, then z.
	n0 := GradientNoise3D(x, y, z, x0, y0, z0, seed)
	n1 := GradientNoise3D(x, y, z, x1, y0, z0, seed)
	ix0 := LinearInterp(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z0, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z0, seed)
	ix1 := LinearInterp(n0, n1, xs)
	iy0 := LinearInterp(ix0, ix1, ys)
	n0 = GradientNoise3D(x, y, z, x0, y0, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y0, z1, seed)
	ix0 = LinearInterp(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z1, seed)
	ix1 = LinearInterp(n0, n1, xs)
	iy1 := LinearInterp(ix0, ix1, ys)

	return LinearInterp(iy0, iy1, zs)
}

// IntValueNoise3D hashes an integer lattice point and seed into a
// pseudo-random integer in [0, 2^31).
func IntValueNoise3D(ix, iy, iz, seed int32) int32 {
	n := (xNoiseGen*ix + yNoiseGen*iy + zNoiseGen*iz + seedNoiseGen*seed) & 0x7fffffff
	n = (n >> 13) ^ n
	return (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
}

// ValueNoise3D maps an integer lattice point and seed onto a
// pseudo-random value in the range (-1.0, +1.0].
func ValueNoise3D(ix, iy, iz, seed int32) float64 {
	return 1.0 - float64(IntValueNoise3D(ix, iy, iz, seed))/1073741824.0
}

// ValueCoherentNoise3D computes smooth value noise at an arbitrary
// position by interpolating the value-noise scalars of the 8 corners of
// the surrounding unit lattice cube, using the same easing kernels as
// GradientCoherentNoise3D.
func ValueCoherentNoise3D(x, y, z float64, seed int32, quality Quality) float64 {
	x0 := latticeFloor(x)
	y0 := latticeFloor(y)
	z0 := latticeFloor(z)
	x1 := x0 + 1
	y1 := y0 + 1
	z1 := z0 + 1

	var xs, ys, zs float64
	switch quality {
	case QualityFast:
		xs = x - float64(x0)
		ys = y - float64(y0)
		zs = z - float64(z0)
	case QualityBest:
		xs = SCurve5(x - float64(x0))
		ys = SCurve5(y - float64(y0))
		zs = SCurve5(z - float64(z0))
	default:
		xs = SCurve3(x - float64(x0))
		ys = SCurve3(y - float64(y0))
		zs = SCurve3(z - float64(z0))
	}

	n0 := ValueNoise3D(x0, y0, z0, seed)
	n1 := ValueNoise3D(x1, y0, z0, seed)
	ix0 := LinearInterp(n0, n1, xs)
	n0 = ValueNoise3D(x0, y1, z0, seed)
	n1 = ValueNoise3D(x1, y1, z0, seed)
	ix1 := LinearInterp(n0, n1, xs)
	iy0 := LinearInterp(ix0, ix1, ys)
	n0 = ValueNoise3D(x0, y0, z1, seed)
	n1 = ValueNoise3D(x1, y0, z1, seed)
	ix0 = LinearInterp(n0, n1, xs)
	n0 = ValueNoise3D(x0, y1, z1, seed)
	n1 = ValueNoise3D(x1, y1, z1, seed)
	ix1 = LinearInterp(n0, n1, xs)
	iy1 := LinearInterp(ix0, ix1, ys)

	return LinearInterp(iy0, iy1, zs)
}

// MakeInt32Range folds a value into the interval representable by a
// 32-bit signed integer, reflecting out-of-range magnitudes back in so
// that lattice addressing never overflows.
//
// Values already inside (-2^30, 2^30) are returned unchanged, which makes
// the fold idempotent on in-range input.
func MakeInt32Range(n float64) float64 {
	if n >= 1073741824.0 {
		return (2.0 * math.Mod(n, 1073741824.0)) - 1073741824.0
	} else if n <= -1073741824.0 {
		return (2.0 * math.Mod(n, 1073741824.0)) + 1073741824.0
	}
	return n
}

// latticeFloor is the classic libnoise lattice addressing rule: truncate toward
// zero, shifted down by one for non-positive values.
func latticeFloor(n float64) int32 {
	if n > 0.0 {
		return int32(n)
	}
	return int32(n) - 1
}
