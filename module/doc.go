// Package module implements the composition layer of lvlnoise: a catalogue
// of small, single-purpose nodes that each map a 3D coordinate to a scalar
// and combine into arbitrarily deep trees.
//
// What:
//
//   - Module: the one interface everything implements —
//     GetValue(x, y, z float64) float64.
//   - Generators (no children): Constant, Checkerboard, Cylinders, Spheres,
//     Perlin, Billow, RidgedMulti, Voronoi.
//   - Unary modifiers (one child): Abs, Invert, Clamp, Exponent, ScaleBias,
//     Curve, Terrace, RotatePoint, ScalePoint, TranslatePoint, Cache.
//   - Combiners (two or more children): Add, Multiply, Power, Min, Max,
//     Blend, Select, Displace, Turbulence.
//
// Why:
//
//   - Procedural terrain, texture and density fields are built by piping a
//     handful of noise sources through reshaping and selection nodes; one
//     tiny evaluation contract keeps every combination composable.
//
// Evaluation model:
//
//   - A pure, synchronous, recursive tree walk. No shared evaluation state,
//     no caching unless an explicit Cache node is inserted. A fixed tree is
//     safe to evaluate from many goroutines for different coordinates;
//     setters are not synchronized, and Cache carries mutable state.
//
// Complexity:
//
//   - One GetValue call costs O(nodes in the subtree), with per-node work
//     bounded by octave count (fractals), control-point count (Curve,
//     Terrace) or the fixed 5×5×5 cell window (Voronoi).
//
// Errors:
//
//   - All failures are unrecoverable programmer errors and are raised as
//     panics carrying the package sentinel values: ErrOctaveCount,
//     ErrBounds, ErrControlPointNaN, ErrDuplicateControlPoint,
//     ErrControlPointCount at configuration time; ErrCurveControlPoints,
//     ErrTerraceControlPoints inside GetValue when a node was left
//     under-populated. Silently wrong noise values are worse than a loud
//     failure, so nothing is clamped or corrected behind the caller's back
//     (the sole documented exception: Select shrinks an oversized edge
//     falloff so its transition bands cannot overlap).
//
// Children are held as Module interface values. Feeding one sub-node into
// two parents is simply storing the same pointer twice; trees are owned
// top-down and never hold back-references.
package module
