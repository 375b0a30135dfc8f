package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/welltegra/welllab/internal/physics"
)

var _ = Describe("Gas migration", func() {
	var g *physics.GasMigration

	BeforeEach(func() {
		g = physics.NewGasMigration()
	})

	It("starts idle at the bottom", func() {
		Expect(g.Position()).To(Equal(100.0))
		Expect(g.Migrating()).To(BeFalse())
		r := g.Reading()
		Expect(r.InitialPressure).To(BeNumerically("~", 5214.7, 1e-9))
		Expect(r.ExpansionRatio).To(BeNumerically("~", 1, 1e-12))
	})

	It("doubles volume roughly halfway up a 10 ppg well", func() {
		r := physics.ReadingAt(1, 10, 50)
		Expect(r.Pressure).To(BeNumerically("~", 2614.7, 1e-9))
		Expect(r.Volume).To(BeNumerically("~", 1.99, 0.01))
		Expect(r.ExpansionRatio).To(BeNumerically("~", r.Volume, 1e-12))
	})

	It("does not move while inactive", func() {
		Expect(g.Step()).To(BeFalse())
		Expect(g.Position()).To(Equal(100.0))
	})

	It("rises monotonically to the surface and then stops", func() {
		g.Release()
		p0v0 := g.Reading().InitialPressure * g.InitialVolume()
		prev := g.Position()
		ticks := 0
		for g.Migrating() {
			Expect(g.Step()).To(BeTrue())
			ticks++
			Expect(g.Position()).To(BeNumerically("<", prev))
			r := g.Reading()
			Expect(r.Pressure * r.Volume).To(BeNumerically("~", p0v0, 1e-6))
			prev = g.Position()
			Expect(ticks).To(BeNumerically("<=", 600))
		}
		Expect(g.Position()).To(Equal(0.0))
		Expect(ticks).To(BeNumerically("~", 500, 1))
		Expect(g.Step()).To(BeFalse())
		Expect(g.Position()).To(Equal(0.0))
	})

	It("resets an idle bubble when the kick or mud changes", func() {
		g.Release()
		for range 10 {
			g.Step()
		}
		g.Pause()
		Expect(g.Position()).To(BeNumerically("<", 100))
		g.SetInitialVolume(2)
		Expect(g.Position()).To(Equal(100.0))

		g.Release()
		g.Step()
		g.Pause()
		g.SetMudWeight(12)
		Expect(g.Position()).To(Equal(100.0))
	})

	It("keeps position when settings change mid-migration", func() {
		g.Release()
		g.Step()
		pos := g.Position()
		g.SetMudWeight(14)
		Expect(g.Position()).To(Equal(pos))
		Expect(g.MudWeight()).To(Equal(14.0))
	})

	It("does not resume a bubble already at the surface", func() {
		g.Release()
		for g.Step() {
		}
		g.Resume()
		Expect(g.Migrating()).To(BeFalse())
	})

	It("labels the expansion phase by height", func() {
		Expect(physics.ReadingAt(1, 10, 80).Phase).To(Equal(physics.PhaseMigrating))
		Expect(physics.ReadingAt(1, 10, 30).Phase).To(Equal(physics.PhaseExpanding))
		Expect(physics.ReadingAt(1, 10, 5).Phase).To(Equal(physics.PhaseUnloading))
	})

	It("profiles expansion from bottom to surface", func() {
		prof := physics.ExpansionProfile(1, 10, 11)
		Expect(prof).To(HaveLen(11))
		Expect(prof[0]).To(BeNumerically("~", 1, 1e-12))
		for i := 1; i < len(prof); i++ {
			Expect(prof[i]).To(BeNumerically(">", prof[i-1]))
		}
	})
})
