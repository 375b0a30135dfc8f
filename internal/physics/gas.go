package physics

import "time"

const (
	// SurfacePressure is atmospheric pressure at the wellhead in psi.
	SurfacePressure = 14.7
	// WellDepthFt is the depth at which a kick enters the well.
	WellDepthFt = 10000.0

	// MigrationStep is how far the bubble rises per tick, in percent of depth.
	MigrationStep = 0.2
	// MigrationInterval is the tick period of an active migration.
	MigrationInterval = 50 * time.Millisecond

	surfaceSnap = 1e-9
)

var (
	BubblePositionRange = Range{Min: 0, Max: 100}
	GasVolumeRange      = Range{Min: 0.1, Max: 5}
	MudWeightRange      = Range{Min: 8, Max: 18}
)

// GasParams are the adjustable controls of the gas migration lab.
var GasParams = []Param{
	{Key: "volume", Label: "Kick volume", Unit: "bbl", Range: GasVolumeRange, Step: 0.1},
	{Key: "mud", Label: "Mud weight", Unit: "ppg", Range: MudWeightRange, Step: 0.5},
}

// Phase describes how violently the bubble is expanding.
type Phase string

const (
	PhaseMigrating Phase = "MIGRATING"
	PhaseExpanding Phase = "EXPANDING"
	PhaseUnloading Phase = "RAPID UNLOADING"
)

// GasMigration models a gas kick rising through a closed-in mud column.
// Position is the bubble depth in percent of WellDepthFt, 100 at bottom.
type GasMigration struct {
	position      float64
	initialVolume float64
	mudWeight     float64
	migrating     bool
}

// NewGasMigration returns a 1 bbl kick at the bottom of a 10 ppg well.
func NewGasMigration() *GasMigration {
	return &GasMigration{
		position:      BubblePositionRange.Max,
		initialVolume: 1,
		mudWeight:     10,
	}
}

func (g *GasMigration) Position() float64      { return g.position }
func (g *GasMigration) InitialVolume() float64 { return g.initialVolume }
func (g *GasMigration) MudWeight() float64     { return g.mudWeight }
func (g *GasMigration) Migrating() bool        { return g.migrating }

// SetInitialVolume changes the kick size. An idle bubble returns to bottom.
func (g *GasMigration) SetInitialVolume(v float64) {
	g.initialVolume = GasVolumeRange.Clamp(v)
	if !g.migrating {
		g.position = BubblePositionRange.Max
	}
}

// SetMudWeight changes the mud density. An idle bubble returns to bottom.
func (g *GasMigration) SetMudWeight(ppg float64) {
	g.mudWeight = MudWeightRange.Clamp(ppg)
	if !g.migrating {
		g.position = BubblePositionRange.Max
	}
}

// Release puts a fresh bubble at the bottom and starts it rising.
func (g *GasMigration) Release() {
	g.position = BubblePositionRange.Max
	g.migrating = true
}

// Pause stops migration where the bubble is.
func (g *GasMigration) Pause() {
	g.migrating = false
}

// Resume restarts a paused bubble. A bubble at the surface stays put.
func (g *GasMigration) Resume() {
	if g.position > 0 {
		g.migrating = true
	}
}

// Step advances an active migration by one tick. It reports whether the
// bubble moved. Reaching the surface stops the migration.
func (g *GasMigration) Step() bool {
	if !g.migrating {
		return false
	}
	if g.position <= 0 {
		g.position = 0
		g.migrating = false
		return false
	}
	next := g.position - MigrationStep
	if next < surfaceSnap {
		next = 0
	}
	g.position = next
	if g.position == 0 {
		g.migrating = false
	}
	return true
}

// TVD returns the bubble's true vertical depth in feet.
func (g *GasMigration) TVD() float64 {
	return g.position / BubblePositionRange.Max * WellDepthFt
}

// PressureAtTVD returns the pressure at tvdFt under a column of mudPPG mud.
func PressureAtTVD(mudPPG, tvdFt float64) float64 {
	return SurfacePressure + PsiPerFtPerPPG*mudPPG*tvdFt
}

// GasReading is the derived state of the bubble at its current position.
type GasReading struct {
	TVD             float64
	InitialPressure float64
	Pressure        float64
	Hydrostatic     float64
	Volume          float64
	ExpansionRatio  float64
	Phase           Phase
}

// Reading applies Boyle's law between the bottom and the current position.
func (g *GasMigration) Reading() GasReading {
	return ReadingAt(g.initialVolume, g.mudWeight, g.position)
}

// ReadingAt computes a reading for an arbitrary bubble position.
func ReadingAt(initialVolume, mudPPG, position float64) GasReading {
	v0 := GasVolumeRange.Clamp(initialVolume)
	mw := MudWeightRange.Clamp(mudPPG)
	pos := BubblePositionRange.Clamp(position)

	tvd := pos / BubblePositionRange.Max * WellDepthFt
	p0 := PressureAtTVD(mw, WellDepthFt)
	p := PressureAtTVD(mw, tvd)
	v := p0 * v0 / p

	r := GasReading{
		TVD:             tvd,
		InitialPressure: p0,
		Pressure:        p,
		Hydrostatic:     p - SurfacePressure,
		Volume:          v,
		ExpansionRatio:  v / v0,
	}
	switch {
	case pos < 10:
		r.Phase = PhaseUnloading
	case pos < 50:
		r.Phase = PhaseExpanding
	default:
		r.Phase = PhaseMigrating
	}
	return r
}

// ExpansionProfile samples the expansion ratio from bottom to surface at
// n evenly spaced positions. The first sample is at the bottom.
func ExpansionProfile(initialVolume, mudPPG float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range n {
		pos := BubblePositionRange.Max * float64(n-1-i) / float64(n-1)
		out[i] = ReadingAt(initialVolume, mudPPG, pos).ExpansionRatio
	}
	return out
}
