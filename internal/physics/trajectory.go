package physics

import "math"

const (
	// Segments is the number of integration steps along the well path.
	Segments = 20
	// SegmentFraction is the segment length as a fraction of the 100 ft
	// interval the build and turn rates are quoted over.
	SegmentFraction = 0.5
	// SegmentLengthFt is the measured depth covered by one segment.
	SegmentLengthFt = SegmentFraction * 100
	// VisualScale is the drawing length of one segment.
	VisualScale = 20.0
	// FeetPerVisualUnit converts drawing units back into feet.
	FeetPerVisualUnit = SegmentLengthFt / VisualScale

	// HighDLS is the dogleg severity above which a plan is flagged, in
	// deg/100ft.
	HighDLS = 6.0
)

var (
	BuildRateRange   = Range{Min: -12, Max: 12}
	TurnRateRange    = Range{Min: -8, Max: 8}
	HoldAngleRange   = Range{Min: 0, Max: 90}
	defaultHoldAngle = 45.0
)

// TrajectoryParams are the adjustable controls of the directional lab.
var TrajectoryParams = []Param{
	{Key: "build", Label: "Build rate", Unit: "deg/100ft", Range: BuildRateRange, Step: 0.5},
	{Key: "turn", Label: "Turn rate", Unit: "deg/100ft", Range: TurnRateRange, Step: 0.5},
	{Key: "hold", Label: "Target inclination", Unit: "deg", Range: HoldAngleRange, Step: 5},
}

// TrajectoryPlan holds the controls of the directional visualizer.
type TrajectoryPlan struct {
	BuildRate float64
	TurnRate  float64
	HoldAngle float64
}

// DefaultTrajectoryPlan builds at 3 deg/100ft to a 45 deg tangent.
func DefaultTrajectoryPlan() TrajectoryPlan {
	return TrajectoryPlan{BuildRate: 3, HoldAngle: defaultHoldAngle}
}

// TrajectoryPoint is one station along the path. North, East and Vertical
// are in drawing units, angles in degrees.
type TrajectoryPoint struct {
	North       float64
	East        float64
	Vertical    float64
	Inclination float64
	Azimuth     float64
	MD          float64
}

// TVDFt returns the true vertical depth of the point in feet.
func (p TrajectoryPoint) TVDFt() float64 { return p.Vertical * FeetPerVisualUnit }

// NorthFt returns the northing of the point in feet.
func (p TrajectoryPoint) NorthFt() float64 { return p.North * FeetPerVisualUnit }

// EastFt returns the easting of the point in feet.
func (p TrajectoryPoint) EastFt() float64 { return p.East * FeetPerVisualUnit }

// Trajectory is a fully integrated well path.
type Trajectory struct {
	Points []TrajectoryPoint
	DLS    float64
}

// HighDogleg reports whether the dogleg severity exceeds HighDLS.
func (t Trajectory) HighDogleg() bool { return t.DLS > HighDLS }

// End returns the final station.
func (t Trajectory) End() TrajectoryPoint { return t.Points[len(t.Points)-1] }

// DepartureFt returns the horizontal distance from the surface location to
// the final station in feet.
func (t Trajectory) DepartureFt() float64 {
	e := t.End()
	return math.Hypot(e.NorthFt(), e.EastFt())
}

// Integrate computes the path from scratch. Each segment averages the
// angles at its two ends before advancing the position.
func (tp TrajectoryPlan) Integrate() Trajectory {
	build := BuildRateRange.Clamp(tp.BuildRate)
	turn := TurnRateRange.Clamp(tp.TurnRate)
	hold := HoldAngleRange.Clamp(tp.HoldAngle)
	incRange := Range{Min: 0, Max: hold}

	points := make([]TrajectoryPoint, 0, Segments+1)
	points = append(points, TrajectoryPoint{})
	for i := 1; i <= Segments; i++ {
		prev := points[i-1]
		inc := incRange.Clamp(prev.Inclination + build*SegmentFraction)
		azm := prev.Azimuth + turn*SegmentFraction

		avgInc := radians((prev.Inclination + inc) / 2)
		avgAzm := radians((prev.Azimuth + azm) / 2)

		points = append(points, TrajectoryPoint{
			North:       prev.North + math.Sin(avgInc)*math.Cos(avgAzm)*VisualScale,
			East:        prev.East + math.Sin(avgInc)*math.Sin(avgAzm)*VisualScale,
			Vertical:    prev.Vertical + math.Cos(avgInc)*VisualScale,
			Inclination: inc,
			Azimuth:     azm,
			MD:          float64(i) * SegmentLengthFt,
		})
	}

	final := points[len(points)-1]
	return Trajectory{
		Points: points,
		DLS:    math.Sqrt(build*build + math.Pow(turn*math.Sin(radians(final.Inclination)), 2)),
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
