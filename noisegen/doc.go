// Package noisegen provides the low-level coherent-noise primitives that
// every generator in lvlnoise/module is built on.
//
// What:
//
//   - Integer-lattice hashing that turns (ix, iy, iz, seed) into a
//     reproducible pseudo-random gradient or scalar.
//   - GradientCoherentNoise3D / ValueCoherentNoise3D: smooth noise over
//     continuous coordinates, interpolated between the 8 corners of the
//     surrounding unit lattice cube.
//   - Interpolation kernels: LinearInterp, CubicInterp (Catmull-Rom
//     coefficients), SCurve3 (cubic) and SCurve5 (quintic) easing.
//   - MakeInt32Range: folds an arbitrary float64 back into the interval
//     representable by a 32-bit signed integer, so lattice indexing never
//     overflows.
//
// Why:
//
//   - Fractal generators (Perlin, Billow, RidgedMulti) sum these
//     primitives across octaves with per-octave seed offsets; their
//     output is only meaningful if the primitive is bit-for-bit
//     deterministic. Every function here is a pure function of its
//     arguments — same inputs, same bits, always.
//
// Quality:
//
//   - QualityFast     — raw fractional alpha, C0 continuity only.
//   - QualityStandard — SCurve3 alpha, continuous first derivative.
//   - QualityBest     — SCurve5 alpha, continuous second derivative.
//
// Complexity:
//
//   - All functions are O(1); the coherent variants evaluate 8 lattice
//     corners per call.
//
// The arithmetic (hash constants, interpolation coefficients, range
// folding) reproduces the classic libnoise formulation; changing any
// constant changes every downstream noise value.
package noisegen
