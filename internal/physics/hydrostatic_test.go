package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/welltegra/welllab/internal/physics"
)

var _ = Describe("Hydrostatic pressure", func() {
	It("matches the field formula at 7500 ft of water", func() {
		Expect(physics.Pressure(1.0, 7500)).To(Equal(3249))
	})

	It("is zero at the surface", func() {
		for _, sg := range []float64{0.5, 1.0, 1.45, 2.0} {
			Expect(physics.PressurePsi(sg, 0)).To(BeZero())
		}
	})

	It("never goes negative at the range boundaries", func() {
		Expect(physics.PressurePsi(0.5, -100)).To(BeZero())
		Expect(physics.PressurePsi(-3, 1000)).To(BeNumerically(">", 0))
		Expect(physics.PressurePsi(5, 1000)).To(BeNumerically("~", physics.PressurePsi(2, 1000), 1e-9))
	})

	It("increases strictly with density and depth", func() {
		prev := 0.0
		for sg := 0.5; sg <= 2.0; sg += 0.1 {
			p := physics.PressurePsi(sg, 5000)
			Expect(p).To(BeNumerically(">", prev))
			prev = p
		}
		prev = 0
		for d := 100.0; d <= 10000; d += 100 {
			p := physics.PressurePsi(1.2, d)
			Expect(p).To(BeNumerically(">", prev))
			prev = p
		}
	})

	Describe("Column", func() {
		var col *physics.Column

		BeforeEach(func() {
			col = physics.NewColumn()
			col.Density = 1.0
			col.Depth = 75
		})

		It("scales the depth control into feet", func() {
			Expect(col.TVD()).To(Equal(7500.0))
			Expect(col.BottomPressure()).To(Equal(3249))
		})

		It("clamps out-of-range depth", func() {
			col.Depth = 500
			Expect(col.TVD()).To(Equal(10000.0))
			col.Depth = 0
			Expect(col.TVD()).To(Equal(1000.0))
		})

		It("reads zero at the fluid surface and full pressure at the bottom", func() {
			p, ok := col.PressureAt(0.5, col.FluidTop())
			Expect(ok).To(BeTrue())
			Expect(p).To(BeZero())

			p, ok = col.PressureAt(0.5, 1)
			Expect(ok).To(BeTrue())
			Expect(p).To(Equal(col.BottomPressure()))
		})

		It("reports the same pressure at any lateral position", func() {
			left, okL := col.PressureAt(0.05, 0.625)
			right, okR := col.PressureAt(0.95, 0.625)
			Expect(okL && okR).To(BeTrue())
			Expect(left).To(Equal(right))
			Expect(left).To(Equal(1624))
		})

		It("gives no reading above the fluid", func() {
			_, ok := col.PressureAt(0.5, 0.1)
			Expect(ok).To(BeFalse())
			_, dropped := col.Drop(0.5, 0.1)
			Expect(dropped).To(BeFalse())
			Expect(col.Probes()).To(BeEmpty())
		})

		It("keeps only the most recent probes", func() {
			ys := []float64{0.3, 0.4, 0.5, 0.6, 0.7}
			for _, y := range ys {
				_, ok := col.Drop(0.5, y)
				Expect(ok).To(BeTrue())
			}
			probes := col.Probes()
			Expect(probes).To(HaveLen(physics.MaxProbes))
			Expect(probes[0].Y).To(Equal(0.4))
			Expect(probes[3].Y).To(Equal(0.7))
		})

		It("re-reads probes after the column changes", func() {
			_, ok := col.Drop(0.5, 1)
			Expect(ok).To(BeTrue())
			col.Density = 2.0
			Expect(col.Probes()[0].Pressure).To(Equal(col.BottomPressure()))
		})
	})

	DescribeTable("fluid presets",
		func(density float64, want string) {
			Expect(physics.ActivePreset(density).Name).To(Equal(want))
		},
		Entry("oil", 0.86, "Oil"),
		Entry("water", 1.0, "Water"),
		Entry("mud", 1.27, "Mud"),
		Entry("brine", 1.45, "Brine"),
		Entry("between presets falls back to water", 1.1, "Water"),
	)

	It("lengthens the pressure vector with pressure", func() {
		Expect(physics.VectorLength(0)).To(Equal(15.0))
		Expect(physics.VectorLength(1000)).To(BeNumerically("~", 35.0, 1e-9))
	})
})
