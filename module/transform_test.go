package module_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlnoise/module"
)

// TestTranslatePoint_Shift verifies that translation samples the source
// at the shifted coordinate.
func TestTranslatePoint_Shift(t *testing.T) {
	p := module.NewPerlin()
	tr := module.NewTranslatePoint(p)
	tr.SetXYZTranslation(1.0, -2.0, 3.5)

	assert.Equal(t, 1.0, tr.XTranslation(), "XTranslation must round-trip")
	assert.Equal(t, -2.0, tr.YTranslation(), "YTranslation must round-trip")
	assert.Equal(t, 3.5, tr.ZTranslation(), "ZTranslation must round-trip")

	x, y, z := 0.3, 0.6, 0.9
	assert.Equal(t, p.GetValue(x+1.0, y-2.0, z+3.5), tr.GetValue(x, y, z),
		"output must equal the source sampled at the shifted coordinate")
}

// TestTranslatePoint_Uniform verifies the single-value setter applies to
// all three axes.
func TestTranslatePoint_Uniform(t *testing.T) {
	tr := module.NewTranslatePoint(module.NewCheckerboard())
	tr.SetTranslation(2.0)
	assert.Equal(t, 2.0, tr.XTranslation(), "uniform translation must set x")
	assert.Equal(t, 2.0, tr.YTranslation(), "uniform translation must set y")
	assert.Equal(t, 2.0, tr.ZTranslation(), "uniform translation must set z")
}

// TestScalePoint_Scale verifies that scaling samples the source at the
// scaled coordinate.
func TestScalePoint_Scale(t *testing.T) {
	p := module.NewPerlin()
	sc := module.NewScalePoint(p)
	assert.Equal(t, module.DefaultScalePointX, sc.XScale(), "default x scale")

	sc.SetXYZScale(2.0, 0.5, -1.0)
	assert.Equal(t, 2.0, sc.XScale(), "XScale must round-trip")
	assert.Equal(t, 0.5, sc.YScale(), "YScale must round-trip")
	assert.Equal(t, -1.0, sc.ZScale(), "ZScale must round-trip")

	x, y, z := 0.7, 1.4, -0.6
	assert.Equal(t, p.GetValue(x*2.0, y*0.5, -z), sc.GetValue(x, y, z),
		"output must equal the source sampled at the scaled coordinate")
}

// TestScalePoint_Uniform verifies the single-value setter applies to all
// three axes.
func TestScalePoint_Uniform(t *testing.T) {
	sc := module.NewScalePoint(module.NewCheckerboard())
	sc.SetScale(3.0)
	assert.Equal(t, 3.0, sc.XScale(), "uniform scale must set x")
	assert.Equal(t, 3.0, sc.YScale(), "uniform scale must set y")
	assert.Equal(t, 3.0, sc.ZScale(), "uniform scale must set z")
}

// TestRotatePoint_ZeroAnglesIdentity verifies that the default rotation
// is bit-exact identity.
func TestRotatePoint_ZeroAnglesIdentity(t *testing.T) {
	p := module.NewPerlin()
	rot := module.NewRotatePoint(p)

	coords := [][3]float64{{0.2, 0.4, 0.6}, {-3.1, 0.0, 7.25}, {11.5, -2.5, -8.75}}
	for _, c := range coords {
		assert.Equal(t, p.GetValue(c[0], c[1], c[2]), rot.GetValue(c[0], c[1], c[2]),
			"zero angles must leave the field untouched at %v", c)
	}
}

// TestRotatePoint_AngleAccessors verifies each per-axis setter updates
// its own angle.
func TestRotatePoint_AngleAccessors(t *testing.T) {
	rot := module.NewRotatePoint(module.NewCheckerboard())
	rot.SetXAngle(30.0)
	rot.SetYAngle(60.0)
	rot.SetZAngle(90.0)

	assert.Equal(t, 30.0, rot.XAngle(), "SetXAngle must update the x angle")
	assert.Equal(t, 60.0, rot.YAngle(), "SetYAngle must update the y angle")
	assert.Equal(t, 90.0, rot.ZAngle(), "SetZAngle must update the z angle")

	rot.SetAngles(1.0, 2.0, 3.0)
	assert.Equal(t, 1.0, rot.XAngle(), "SetAngles must update the x angle")
	assert.Equal(t, 2.0, rot.YAngle(), "SetAngles must update the y angle")
	assert.Equal(t, 3.0, rot.ZAngle(), "SetAngles must update the z angle")
}

// TestRotatePoint_QuarterTurn verifies a 90 degree rotation about the y
// axis against directly sampling the rotated coordinate.
//
// The sphere field is radially symmetric, so a rotation about any axis
// through the origin must leave it unchanged.
func TestRotatePoint_QuarterTurn(t *testing.T) {
	sp := module.NewSpheres()
	rot := module.NewRotatePoint(sp)
	rot.SetYAngle(90.0)

	x, y, z := 1.3, 0.4, -0.8
	assert.InDelta(t, sp.GetValue(x, y, z), rot.GetValue(x, y, z), 1e-12,
		"a rotation about the origin must preserve a spherically symmetric field")
}

// TestDisplace_ConstantOffsets verifies that constant displacement
// modules reduce Displace to a translation.
func TestDisplace_ConstantOffsets(t *testing.T) {
	p := module.NewPerlin()
	disp := module.NewDisplace(p, constant(1.0), constant(2.0), constant(3.0))

	x, y, z := 0.25, 0.5, 0.75
	assert.Equal(t, p.GetValue(x+1.0, y+2.0, z+3.0), disp.GetValue(x, y, z),
		"constant displacements must act as a pure translation")
}

// TestDisplace_SamplesDisplacersAtOriginalCoordinate verifies that the
// displacement modules see the undisplaced input coordinate.
func TestDisplace_SamplesDisplacersAtOriginalCoordinate(t *testing.T) {
	// A checkerboard displacer: its value at the original coordinate
	// decides the shift. If it were sampled anywhere else the expected
	// value below would not line up.
	cb := module.NewCheckerboard()
	p := module.NewPerlin()
	disp := module.NewDisplace(p, cb, constant(0.0), constant(0.0))

	x, y, z := 0.5, 0.5, 0.5
	want := p.GetValue(x+cb.GetValue(x, y, z), y, z)
	assert.Equal(t, want, disp.GetValue(x, y, z), "displacers must be sampled at the input coordinate")
}

// TestDisplace_SetDisplaceModules verifies the convenience setter wires
// all three displacers.
func TestDisplace_SetDisplaceModules(t *testing.T) {
	dx := constant(0.1)
	dy := constant(0.2)
	dz := constant(0.3)

	disp := module.NewDisplace(module.NewCheckerboard(), constant(0), constant(0), constant(0))
	disp.SetDisplaceModules(dx, dy, dz)

	assert.Same(t, dx, disp.XDisplaceModule(), "SetDisplaceModules must wire the x displacer")
	assert.Same(t, dy, disp.YDisplaceModule(), "SetDisplaceModules must wire the y displacer")
	assert.Same(t, dz, disp.ZDisplaceModule(), "SetDisplaceModules must wire the z displacer")
}

// TestTurbulence_ZeroPowerIdentity verifies that zero power leaves the
// source field bit-exact.
func TestTurbulence_ZeroPowerIdentity(t *testing.T) {
	p := module.NewPerlin()
	turb := module.NewTurbulence(p)
	turb.SetPower(0.0)

	coords := [][3]float64{{0.1, 0.2, 0.3}, {-5.5, 4.4, -3.3}, {12.0, 0.0, -7.5}}
	for _, c := range coords {
		assert.Equal(t, p.GetValue(c[0], c[1], c[2]), turb.GetValue(c[0], c[1], c[2]),
			"zero power must not displace the sample coordinate at %v", c)
	}
}

// TestTurbulence_Deterministic verifies seed-keyed reproducibility of
// the distortion.
func TestTurbulence_Deterministic(t *testing.T) {
	a := module.NewTurbulence(module.NewCheckerboard())
	b := module.NewTurbulence(module.NewCheckerboard())
	assert.Equal(t, sample3(a), sample3(b), "equal seeds must displace identically")

	b.SetSeed(5)
	assert.NotEqual(t, sample3(a), sample3(b), "a different seed must displace differently")
}

// TestTurbulence_PowerDistorts verifies that a nonzero power actually
// changes the output field.
func TestTurbulence_PowerDistorts(t *testing.T) {
	src := module.NewCheckerboard()
	turb := module.NewTurbulence(src)
	turb.SetPower(1.0)

	var differs bool
	for x := 0.05; x < 4.0; x += 0.35 {
		if turb.GetValue(x, 0.5, 0.5) != src.GetValue(x, 0.5, 0.5) {
			differs = true

			break
		}
	}
	assert.True(t, differs, "a unit power must visibly displace cell boundaries")
}

// TestTurbulence_Accessors verifies the parameter round-trips and the
// octave-count guard surfaced through SetRoughness.
func TestTurbulence_Accessors(t *testing.T) {
	turb := module.NewTurbulence(module.NewCheckerboard())
	assert.Equal(t, module.DefaultTurbulencePower, turb.Power(), "default power")
	assert.Equal(t, module.DefaultTurbulenceRoughness, turb.Roughness(), "default roughness")

	turb.SetFrequency(2.0)
	turb.SetPower(0.125)
	turb.SetRoughness(6)
	turb.SetSeed(42)

	assert.Equal(t, 2.0, turb.Frequency(), "Frequency must round-trip")
	assert.Equal(t, 0.125, turb.Power(), "Power must round-trip")
	assert.Equal(t, int32(6), turb.Roughness(), "Roughness must round-trip")
	assert.Equal(t, int32(42), turb.Seed(), "Seed must round-trip")

	assert.PanicsWithValue(t, module.ErrOctaveCount, func() { turb.SetRoughness(0) },
		"a roughness below 1 must panic")
}
