package physics

import "math"

const (
	// SGToPPG converts specific gravity to mud weight in lb/gal.
	SGToPPG = 8.33
	// PsiPerFtPerPPG is the hydrostatic gradient constant.
	PsiPerFtPerPPG = 0.052
	// FeetPerDepthUnit scales the depth control into true vertical depth.
	FeetPerDepthUnit = 100.0

	// MaxProbes is how many pressure probes the column keeps.
	MaxProbes = 4
)

var (
	DensityRange = Range{Min: 0.5, Max: 2.0}
	DepthRange   = Range{Min: 10, Max: 100}
)

// HydrostaticParams are the adjustable controls of the hydrostatic lab.
var HydrostaticParams = []Param{
	{Key: "density", Label: "Fluid density", Unit: "SG", Range: DensityRange, Step: 0.05},
	{Key: "depth", Label: "Column depth", Unit: "x100 ft", Range: DepthRange, Step: 5},
}

// FluidPreset is a named reference fluid.
type FluidPreset struct {
	Name    string
	Density float64
}

// FluidPresets lists the reference fluids from lightest to heaviest.
var FluidPresets = []FluidPreset{
	{Name: "Oil", Density: 0.85},
	{Name: "Water", Density: 1.00},
	{Name: "Mud", Density: 1.25},
	{Name: "Brine", Density: 1.45},
}

const presetTolerance = 0.05

// ActivePreset returns the preset within 0.05 SG of density, or Water when
// no preset is that close.
func ActivePreset(density float64) FluidPreset {
	for _, p := range FluidPresets {
		if math.Abs(p.Density-density) < presetTolerance {
			return p
		}
	}
	return FluidPresets[1]
}

// PressurePsi returns the unrounded hydrostatic pressure of a column of
// fluid with specific gravity sg at tvdFt feet. Negative depths read as 0.
func PressurePsi(sg, tvdFt float64) float64 {
	sg = DensityRange.Clamp(sg)
	if math.IsNaN(tvdFt) || tvdFt < 0 {
		tvdFt = 0
	}
	return sg * SGToPPG * PsiPerFtPerPPG * tvdFt
}

// Pressure returns PressurePsi rounded to the nearest psi.
func Pressure(sg, tvdFt float64) int {
	return int(math.Round(PressurePsi(sg, tvdFt)))
}

// Column is the state of one hydrostatic visualizer: a fluid of a given
// density filling a tank to a given depth, plus the probes dropped into it.
type Column struct {
	Density float64
	Depth   float64

	probes []Probe
}

// NewColumn returns a water column at full depth.
func NewColumn() *Column {
	return &Column{Density: 1.0, Depth: DepthRange.Max}
}

// Probe is a pressure reading at a point in the tank. X and Y are fractions
// of the tank's width and height, Y measured downward from the tank top.
type Probe struct {
	X, Y     float64
	Pressure int
}

// TVD returns the true vertical depth of the column in feet.
func (c *Column) TVD() float64 {
	return DepthRange.Clamp(c.Depth) * FeetPerDepthUnit
}

// BottomPressure returns the pressure at the bottom of the column.
func (c *Column) BottomPressure() int {
	return Pressure(c.Density, c.TVD())
}

// FluidTop returns the Y fraction of the fluid surface inside the tank.
func (c *Column) FluidTop() float64 {
	return 1 - DepthRange.Clamp(c.Depth)/DepthRange.Max
}

// PressureAt returns the pressure at tank position (x, y). The horizontal
// position has no effect. Points above the fluid surface produce no reading.
func (c *Column) PressureAt(_, y float64) (int, bool) {
	top := c.FluidTop()
	if y < top || y > 1 {
		return 0, false
	}
	height := 1 - top
	if height <= 0 {
		return 0, false
	}
	local := (y - top) / height
	return int(math.Round(PressurePsi(c.Density, c.TVD()) * local)), true
}

// Drop places a probe at (x, y). Probes above the fluid are rejected. The
// oldest probe is discarded once MaxProbes are held.
func (c *Column) Drop(x, y float64) (Probe, bool) {
	p, ok := c.PressureAt(x, y)
	if !ok {
		return Probe{}, false
	}
	probe := Probe{X: x, Y: y, Pressure: p}
	c.probes = append(c.probes, probe)
	if len(c.probes) > MaxProbes {
		c.probes = c.probes[len(c.probes)-MaxProbes:]
	}
	return probe, true
}

// Probes returns the held probes, re-read against the current column so a
// density or depth change is reflected immediately. Probes left above the
// surface by a shallower column are omitted.
func (c *Column) Probes() []Probe {
	out := make([]Probe, 0, len(c.probes))
	for _, p := range c.probes {
		v, ok := c.PressureAt(p.X, p.Y)
		if !ok {
			continue
		}
		p.Pressure = v
		out = append(out, p)
	}
	return out
}

// ClearProbes removes every probe.
func (c *Column) ClearProbes() {
	c.probes = nil
}

// VectorLength is the length of the pressure arrow drawn for a reading.
func VectorLength(pressure int) float64 {
	return 15 + float64(pressure)*0.02
}
