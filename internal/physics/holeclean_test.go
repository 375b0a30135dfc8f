package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/welltegra/welllab/internal/physics"
)

var _ = Describe("Hole cleaning", func() {
	It("cleans a vertical hole at a moderate rate", func() {
		t := physics.DefaultHoleCleaning().Compute()
		Expect(t.AnnularVelocity).To(BeNumerically("~", 420, 1e-9))
		Expect(t.Efficiency).To(BeNumerically("~", 0.95, 0.01))
		Expect(t.BoycottPenalty).To(BeZero())
		Expect(t.Stuck).To(BeFalse())
		Expect(t.Reasons).To(BeEmpty())
	})

	It("reports zero efficiency with no flow", func() {
		h := physics.DefaultHoleCleaning()
		h.FlowRate = 0
		t := h.Compute()
		Expect(t.Efficiency).To(BeZero())
		Expect(t.Stuck).To(BeTrue())
		Expect(t.Reasons).To(ContainElement(physics.ReasonLowEfficiency))
	})

	It("applies the boycott penalty only past 45 degrees", func() {
		h := physics.DefaultHoleCleaning()
		h.Inclination = 45
		Expect(h.Compute().BoycottPenalty).To(BeZero())
		h.Inclination = 60
		Expect(h.Compute().BoycottPenalty).To(BeNumerically(">", 0))
	})

	It("trips on high angle with low flow even when efficiency is fine", func() {
		t := physics.HoleCleaning{FlowRate: 300, Viscosity: 100, Inclination: 70, CuttingSize: 1}.Compute()
		Expect(t.Efficiency).To(BeNumerically(">", physics.StuckEfficiency))
		Expect(t.Stuck).To(BeTrue())
		Expect(t.Reasons).To(ConsistOf(physics.ReasonHighAngleLow))
	})

	It("trips on thin fluid carrying large cuttings", func() {
		t := physics.HoleCleaning{FlowRate: 1200, Viscosity: 15, Inclination: 0, CuttingSize: 12}.Compute()
		Expect(t.Efficiency).To(BeNumerically(">", physics.StuckEfficiency))
		Expect(t.Stuck).To(BeTrue())
		Expect(t.Reasons).To(ConsistOf(physics.ReasonThinLarge))
	})

	It("keeps efficiency within [0, 1] across the control space", func() {
		for flow := 0.0; flow <= 1200; flow += 100 {
			for visc := 10.0; visc <= 100; visc += 15 {
				for inc := 0.0; inc <= 90; inc += 15 {
					for size := 1.0; size <= 15; size += 2 {
						t := physics.HoleCleaning{FlowRate: flow, Viscosity: visc, Inclination: inc, CuttingSize: size}.Compute()
						Expect(t.Efficiency).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
					}
				}
			}
		}
	})

	It("clamps controls outside their ranges", func() {
		wild := physics.HoleCleaning{FlowRate: 5000, Viscosity: 1, Inclination: 180, CuttingSize: 40}.Compute()
		edge := physics.HoleCleaning{FlowRate: 1200, Viscosity: 10, Inclination: 90, CuttingSize: 15}.Compute()
		Expect(wild).To(Equal(edge))
	})
})
