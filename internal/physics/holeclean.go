package physics

import "math"

const (
	annularFlowFactor = 24.5
	annularArea       = 35.0

	slipCoefficient   = 15.0
	slipSizeExponent  = 1.5
	slipViscosityBase = 5.0

	boycottOnsetDeg = 45.0
	boycottWeight   = 0.5

	// StuckEfficiency is the transport efficiency below which cuttings bed.
	StuckEfficiency = 0.2

	highAngleDeg     = 60.0
	lowFlowRate      = 400.0
	thinViscosity    = 20.0
	largeCuttingSize = 10.0
)

var (
	FlowRateRange    = Range{Min: 0, Max: 1200}
	ViscosityRange   = Range{Min: 10, Max: 100}
	InclinationRange = Range{Min: 0, Max: 90}
	CuttingSizeRange = Range{Min: 1, Max: 15}
)

// HoleCleaningParams are the adjustable controls of the hole-cleaning lab.
var HoleCleaningParams = []Param{
	{Key: "flow", Label: "Flow rate", Unit: "gpm", Range: FlowRateRange, Step: 25},
	{Key: "viscosity", Label: "Viscosity", Unit: "cP", Range: ViscosityRange, Step: 2},
	{Key: "inclination", Label: "Inclination", Unit: "deg", Range: InclinationRange, Step: 5},
	{Key: "size", Label: "Cutting size", Unit: "mm", Range: CuttingSizeRange, Step: 1},
}

// HoleCleaning holds the controls of the hole-cleaning visualizer.
type HoleCleaning struct {
	FlowRate    float64
	Viscosity   float64
	Inclination float64
	CuttingSize float64
}

// DefaultHoleCleaning returns a vertical well circulating at a moderate rate.
func DefaultHoleCleaning() HoleCleaning {
	return HoleCleaning{FlowRate: 600, Viscosity: 40, Inclination: 0, CuttingSize: 5}
}

// Transport is the derived state of cuttings transport.
type Transport struct {
	AnnularVelocity float64
	SlipVelocity    float64
	BoycottPenalty  float64
	NetVelocity     float64
	Efficiency      float64
	Stuck           bool
	Reasons         []StuckReason
}

// StuckReason names a condition that trips the bedding alarm.
type StuckReason string

const (
	ReasonLowEfficiency StuckReason = "low transport efficiency"
	ReasonHighAngleLow  StuckReason = "high angle with low flow"
	ReasonThinLarge     StuckReason = "thin fluid with large cuttings"
)

// Compute derives the transport state. Inputs are clamped to their ranges.
func (h HoleCleaning) Compute() Transport {
	flow := FlowRateRange.Clamp(h.FlowRate)
	visc := ViscosityRange.Clamp(h.Viscosity)
	inc := InclinationRange.Clamp(h.Inclination)
	size := CuttingSizeRange.Clamp(h.CuttingSize)

	t := Transport{
		AnnularVelocity: flow * annularFlowFactor / annularArea,
		SlipVelocity:    slipCoefficient * math.Pow(size, slipSizeExponent) / (visc / slipViscosityBase),
	}
	if inc > boycottOnsetDeg {
		t.BoycottPenalty = t.SlipVelocity * boycottWeight * (inc - boycottOnsetDeg) / boycottOnsetDeg
	}
	t.NetVelocity = t.AnnularVelocity - t.SlipVelocity*math.Cos(inc*math.Pi/180) - t.BoycottPenalty

	if t.AnnularVelocity > 0 {
		t.Efficiency = unitRange.Clamp(t.NetVelocity / t.AnnularVelocity)
	}

	if t.Efficiency < StuckEfficiency {
		t.Reasons = append(t.Reasons, ReasonLowEfficiency)
	}
	if inc > highAngleDeg && flow < lowFlowRate {
		t.Reasons = append(t.Reasons, ReasonHighAngleLow)
	}
	if visc < thinViscosity && size > largeCuttingSize {
		t.Reasons = append(t.Reasons, ReasonThinLarge)
	}
	t.Stuck = len(t.Reasons) > 0
	return t
}
