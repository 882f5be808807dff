// Package lvlnoise is your in-memory toolkit for synthesizing continuous,
// deterministic pseudo-random scalar fields over 3D space — coherent noise —
// and composing them into arbitrarily rich procedural signals (terrain,
// texture, density fields).
//
// 🚀 What is lvlnoise?
//
//	A modern, deterministic library built from two layers:
//		• Noise primitives: integer lattice hashing, gradient & value
//		  coherent noise, cubic/quintic interpolation kernels
//		• Composition nodes: ~28 small, single-purpose modules — generators,
//		  modifiers and combiners — each a pure function (x, y, z) → float64
//
// ✨ Why choose lvlnoise?
//
//   - Beginner-friendly – one interface (Module), clear, intuitive naming
//   - Rock-solid guarantees – bit-identical output for identical inputs,
//     loud failure on misconfiguration, never silently wrong noise
//   - Extensible – any type with GetValue(x, y, z) float64 plugs into a tree
//
// Under the hood, everything is organized under two subpackages:
//
//	noisegen/ — lattice hashing, GradientCoherentNoise3D, ValueNoise3D,
//	            interpolation kernels, integer-range folding
//	module/   — Perlin, Billow, RidgedMulti, Voronoi, Curve, Terrace,
//	            Select, Blend, Displace, Turbulence and friends
//
// Quick ASCII example:
//
//	    Perlin ──┐
//	             ├── Select ── Turbulence ── final terrain
//	RidgedMulti ─┘      │
//	             Billow (control)
//
//	represents a classic terrain pipeline: mountains where the control
//	signal is high, plains elsewhere, roughened by domain turbulence.
//
// Evaluation is a strict top-down tree walk with no hidden state (the one
// explicit exception, module.Cache, memoizes a single coordinate). A fixed
// tree may be evaluated from many goroutines concurrently; mutating
// parameters concurrently with evaluation is the caller's bug.
//
// Dive into examples/ for runnable scenarios and module/doc.go for the
// full node catalogue.
//
//	go get github.com/katalvlaran/lvlnoise
package lvlnoise
