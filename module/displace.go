package module

// Displace is a combiner that warps the input coordinate of its source
// module by the outputs of three displacement modules, one per axis.
//
// All three displacement modules are evaluated at the original,
// undisplaced coordinate; their outputs are then added to the respective
// coordinate components before the source module is sampled.
type Displace struct {
	msource Module
	mdispX  Module
	mdispY  Module
	mdispZ  Module
}

// NewDisplace creates a new Displace module around the specified source
// and per-axis displacement modules.
func NewDisplace(source, dispX, dispY, dispZ Module) *Displace {
	return &Displace{msource: source, mdispX: dispX, mdispY: dispY, mdispZ: dispZ}
}

// SourceModule returns the module whose input values are being displaced.
func (d *Displace) SourceModule() Module {
	return d.msource
}

// XDisplaceModule returns the module whose output displaces the x
// coordinate.
func (d *Displace) XDisplaceModule() Module {
	return d.mdispX
}

// YDisplaceModule returns the module whose output displaces the y
// coordinate.
func (d *Displace) YDisplaceModule() Module {
	return d.mdispY
}

// ZDisplaceModule returns the module whose output displaces the z
// coordinate.
func (d *Displace) ZDisplaceModule() Module {
	return d.mdispZ
}

// SetSourceModule sets the module whose input values are going to be
// displaced.
func (d *Displace) SetSourceModule(module Module) {
	d.msource = module
}

// SetXDisplaceModule sets the module whose output displaces the x
// coordinate.
func (d *Displace) SetXDisplaceModule(module Module) {
	d.mdispX = module
}

// SetYDisplaceModule sets the module whose output displaces the y
// coordinate.
func (d *Displace) SetYDisplaceModule(module Module) {
	d.mdispY = module
}

// SetZDisplaceModule sets the module whose output displaces the z
// coordinate.
func (d *Displace) SetZDisplaceModule(module Module) {
	d.mdispZ = module
}

// SetDisplaceModules sets all three per-axis displacement modules.
func (d *Displace) SetDisplaceModules(dispX, dispY, dispZ Module) {
	d.mdispX, d.mdispY, d.mdispZ = dispX, dispY, dispZ
}

// GetValue samples the source module at the displaced coordinate.
func (d *Displace) GetValue(x, y, z float64) float64 {
	// Each displacement module samples the original coordinate.
	xDisplace := x + d.mdispX.GetValue(x, y, z)
	yDisplace := y + d.mdispY.GetValue(x, y, z)
	zDisplace := z + d.mdispZ.GetValue(x, y, z)

	return d.msource.GetValue(xDisplace, yDisplace, zDisplace)
}
