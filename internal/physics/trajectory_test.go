package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/welltegra/welllab/internal/physics"
)

var _ = Describe("Directional trajectory", func() {
	It("always starts at the origin", func() {
		for build := -12.0; build <= 12; build += 3 {
			for turn := -8.0; turn <= 8; turn += 2 {
				tr := physics.TrajectoryPlan{BuildRate: build, TurnRate: turn, HoldAngle: 90}.Integrate()
				Expect(tr.Points).To(HaveLen(physics.Segments + 1))
				Expect(tr.Points[0]).To(Equal(physics.TrajectoryPoint{}))
			}
		}
	})

	It("drills straight down with no build", func() {
		tr := physics.TrajectoryPlan{HoldAngle: 90}.Integrate()
		end := tr.End()
		Expect(end.North).To(BeZero())
		Expect(end.East).To(BeZero())
		Expect(end.Vertical).To(BeNumerically("~", 400, 1e-9))
		Expect(end.TVDFt()).To(BeNumerically("~", 1000, 1e-9))
		Expect(end.MD).To(Equal(1000.0))
		Expect(tr.DepartureFt()).To(BeZero())
		Expect(tr.DLS).To(BeZero())
	})

	It("never drops inclination below vertical", func() {
		tr := physics.TrajectoryPlan{BuildRate: -6, TurnRate: 4, HoldAngle: 90}.Integrate()
		for _, p := range tr.Points {
			Expect(p.Inclination).To(BeZero())
		}
	})

	It("holds at the target inclination", func() {
		tr := physics.TrajectoryPlan{BuildRate: 12, HoldAngle: 45}.Integrate()
		Expect(tr.Points[7].Inclination).To(Equal(42.0))
		Expect(tr.Points[8].Inclination).To(Equal(45.0))
		Expect(tr.End().Inclination).To(Equal(45.0))
	})

	It("averages angles across each segment", func() {
		tr := physics.TrajectoryPlan{BuildRate: 4, HoldAngle: 90}.Integrate()
		first := tr.Points[1]
		Expect(first.Inclination).To(Equal(2.0))
		Expect(first.North).To(BeNumerically("~", math.Sin(1*math.Pi/180)*physics.VisualScale, 1e-12))
		Expect(first.Vertical).To(BeNumerically("~", math.Cos(1*math.Pi/180)*physics.VisualScale, 1e-12))
	})

	It("turns the path east with a positive turn rate", func() {
		tr := physics.TrajectoryPlan{BuildRate: 6, TurnRate: 8, HoldAngle: 90}.Integrate()
		Expect(tr.End().East).To(BeNumerically(">", 0))
		Expect(tr.DepartureFt()).To(BeNumerically(">", 0))
	})

	DescribeTable("dogleg severity",
		func(plan physics.TrajectoryPlan, want float64, high bool) {
			tr := plan.Integrate()
			Expect(tr.DLS).To(BeNumerically("~", want, 1e-9))
			Expect(tr.HighDogleg()).To(Equal(high))
		},
		Entry("pure build", physics.TrajectoryPlan{BuildRate: 3, HoldAngle: 45}, 3.0, false),
		Entry("turn on a vertical hole has no effect", physics.TrajectoryPlan{TurnRate: 8, HoldAngle: 90}, 0.0, false),
		Entry("aggressive build and turn", physics.TrajectoryPlan{BuildRate: 12, TurnRate: 8, HoldAngle: 90}, math.Sqrt(144+64), true),
	)
})
