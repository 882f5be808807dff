package noisegen_test

import (
	"testing"

	"github.com/katalvlaran/lvlnoise/noisegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// qualities lists every interpolation quality level once, for table loops.
var qualities = []noisegen.Quality{
	noisegen.QualityFast,
	noisegen.QualityStandard,
	noisegen.QualityBest,
}

// TestGradientCoherentNoise3D_Deterministic verifies that identical
// (x, y, z, seed, quality) inputs always yield bit-identical output.
func TestGradientCoherentNoise3D_Deterministic(t *testing.T) {
	coords := [][3]float64{
		{0.1, 0.2, 0.3},
		{-4.75, 12.5, -0.001},
		{1000.25, -999.75, 3.14159},
	}
	for _, q := range qualities {
		for _, c := range coords {
			first := noisegen.GradientCoherentNoise3D(c[0], c[1], c[2], 1337, q)
			second := noisegen.GradientCoherentNoise3D(c[0], c[1], c[2], 1337, q)
			assert.Equal(t, first, second, "repeated evaluation must be bit-identical (quality %v)", q)
		}
	}
}

// TestGradientCoherentNoise3D_ZeroAtLatticePoints verifies the defining
// property of gradient noise: exact zero at integer lattice coordinates,
// for every quality level and several seeds.
func TestGradientCoherentNoise3D_ZeroAtLatticePoints(t *testing.T) {
	points := [][3]float64{
		{0, 0, 0},
		{1, 2, 3},
		{-5, 7, -11},
	}
	for _, q := range qualities {
		for _, seed := range []int32{0, 1, 42, -9} {
			for _, p := range points {
				v := noisegen.GradientCoherentNoise3D(p[0], p[1], p[2], seed, q)
				// InDelta with zero delta: exact zero, signed-zero agnostic.
				assert.InDelta(t, 0.0, v, 0.0,
					"lattice point %v seed %d quality %v must be exactly zero", p, seed, q)
			}
		}
	}
}

// TestGradientCoherentNoise3D_SeedChangesOutput verifies that different
// seeds produce different noise fields.
func TestGradientCoherentNoise3D_SeedChangesOutput(t *testing.T) {
	var seed0, seed1 []float64
	for i := 0; i < 16; i++ {
		x := 0.37 + float64(i)*0.61
		seed0 = append(seed0, noisegen.GradientCoherentNoise3D(x, 0.5, -0.25, 0, noisegen.QualityStandard))
		seed1 = append(seed1, noisegen.GradientCoherentNoise3D(x, 0.5, -0.25, 1, noisegen.QualityStandard))
	}
	assert.NotEqual(t, seed0, seed1, "seeds 0 and 1 must generate different fields")
}

// TestValueNoise3D_Range verifies that the value-noise scalar stays in
// (-1.0, +1.0] over a grid of lattice points.
func TestValueNoise3D_Range(t *testing.T) {
	for ix := int32(-8); ix <= 8; ix++ {
		for iy := int32(-8); iy <= 8; iy++ {
			v := noisegen.ValueNoise3D(ix, iy, ix^iy, 7)
			require.Greater(t, v, -1.0, "value noise must be greater than -1")
			require.LessOrEqual(t, v, 1.0, "value noise must not exceed +1")
		}
	}
}

// TestIntValueNoise3D_Deterministic verifies bit-identical output and the
// 31-bit non-negative contract of the integer lattice hash.
func TestIntValueNoise3D_Deterministic(t *testing.T) {
	for _, seed := range []int32{0, 1, -1, 2147483647} {
		a := noisegen.IntValueNoise3D(12, -34, 56, seed)
		b := noisegen.IntValueNoise3D(12, -34, 56, seed)
		assert.Equal(t, a, b, "integer hash must be deterministic")
		assert.GreaterOrEqual(t, a, int32(0), "integer hash must be non-negative")
	}
}

// TestValueCoherentNoise3D_LatticeAgreement verifies that the coherent
// variant collapses to the plain lattice value at integer coordinates.
func TestValueCoherentNoise3D_LatticeAgreement(t *testing.T) {
	for _, q := range qualities {
		got := noisegen.ValueCoherentNoise3D(2.0, 3.0, 4.0, 11, q)
		want := noisegen.ValueNoise3D(2, 3, 4, 11)
		assert.Equal(t, want, got, "coherent value noise at a lattice point must equal the lattice value (quality %v)", q)
	}
}

// TestMakeInt32Range_InRangeIdentity verifies that in-range values pass
// through unchanged.
func TestMakeInt32Range_InRangeIdentity(t *testing.T) {
	for _, v := range []float64{0.0, 1.0, -1.0, 123456.789, -987654.321, 1073741823.0} {
		assert.Equal(t, v, noisegen.MakeInt32Range(v), "in-range value must pass through unchanged")
	}
}

// TestMakeInt32Range_FoldsOutOfRange verifies that out-of-range values
// are folded back into the representable interval.
func TestMakeInt32Range_FoldsOutOfRange(t *testing.T) {
	for _, v := range []float64{2e9, -2e9, 1.5e10, -7.25e12} {
		folded := noisegen.MakeInt32Range(v)
		assert.Less(t, folded, 2147483648.0, "folded value must fit the i32 range")
		assert.Greater(t, folded, -2147483649.0, "folded value must fit the i32 range")
	}
}

// TestMakeInt32Range_Idempotent verifies the fold is idempotent:
// folding a folded value changes nothing.
func TestMakeInt32Range_Idempotent(t *testing.T) {
	for _, v := range []float64{0.0, 0.5, -123.25, 2e9, -2e9, 9.9e15} {
		once := noisegen.MakeInt32Range(v)
		twice := noisegen.MakeInt32Range(once)
		assert.Equal(t, once, twice, "fold must be idempotent for %v", v)
	}
}

// TestQuality_String verifies the human-readable quality names.
func TestQuality_String(t *testing.T) {
	assert.Equal(t, "Fast", noisegen.QualityFast.String())
	assert.Equal(t, "Standard", noisegen.QualityStandard.String())
	assert.Equal(t, "Best", noisegen.QualityBest.String())
	assert.Equal(t, "Unknown", noisegen.Quality(99).String())
}
