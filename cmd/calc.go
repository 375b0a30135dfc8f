package cmd

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/welltegra/welllab/internal/physics"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a one-shot physics calculation",
}

var calcHydrostaticCmd = &cobra.Command{
	Use:   "hydrostatic",
	Short: "Hydrostatic pressure of a fluid column",
	RunE: func(cmd *cobra.Command, args []string) error {
		sg, _ := cmd.Flags().GetFloat64("sg")
		tvd, _ := cmd.Flags().GetFloat64("tvd")

		p := physics.PressurePsi(sg, tvd)
		preset := physics.ActivePreset(physics.DensityRange.Clamp(sg))
		fmt.Printf("Fluid:      %.2f SG (%.2f ppg, closest to %s)\n",
			physics.DensityRange.Clamp(sg), physics.DensityRange.Clamp(sg)*physics.SGToPPG, preset.Name)
		fmt.Printf("TVD:        %.0f ft\n", tvd)
		fmt.Printf("Pressure:   %d psi\n", physics.Pressure(sg, tvd))
		if tvd > 0 {
			fmt.Printf("Gradient:   %.3f psi/ft\n", p/tvd)
		}

		samples := make([]float64, 21)
		for i := range samples {
			samples[i] = physics.PressurePsi(sg, tvd*float64(i)/20)
		}
		fmt.Println()
		fmt.Println(plot(samples, "pressure (psi) from surface to TVD"))
		return nil
	},
}

var calcHoleCleanCmd = &cobra.Command{
	Use:   "holeclean",
	Short: "Cuttings transport efficiency and stuck-pipe risk",
	RunE: func(cmd *cobra.Command, args []string) error {
		h := physics.HoleCleaning{}
		h.FlowRate, _ = cmd.Flags().GetFloat64("flow")
		h.Viscosity, _ = cmd.Flags().GetFloat64("viscosity")
		h.Inclination, _ = cmd.Flags().GetFloat64("inclination")
		h.CuttingSize, _ = cmd.Flags().GetFloat64("size")

		t := h.Compute()
		fmt.Printf("Annular velocity:  %.1f ft/min\n", t.AnnularVelocity)
		fmt.Printf("Slip velocity:     %.1f ft/min\n", t.SlipVelocity)
		fmt.Printf("Boycott penalty:   %.1f ft/min\n", t.BoycottPenalty)
		fmt.Printf("Net velocity:      %.1f ft/min\n", t.NetVelocity)
		fmt.Printf("Efficiency:        %.0f%%\n", t.Efficiency*100)
		if t.Stuck {
			fmt.Println()
			fmt.Println("STUCK PIPE RISK")
			for _, r := range t.Reasons {
				fmt.Printf("  - %s\n", r)
			}
		}

		sweep := make([]float64, 19)
		for i := range sweep {
			s := h
			s.Inclination = float64(i * 5)
			sweep[i] = s.Compute().Efficiency * 100
		}
		fmt.Println()
		fmt.Println(plot(sweep, "efficiency (%) from 0 to 90 deg inclination"))
		return nil
	},
}

var calcGasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Boyle's law expansion of a gas kick from bottom to surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, _ := cmd.Flags().GetFloat64("volume")
		mud, _ := cmd.Flags().GetFloat64("mud")

		fmt.Printf("%8s  %10s  %10s  %8s  %s\n", "TVD ft", "Pressure", "Volume", "Ratio", "Phase")
		fmt.Println(strings.Repeat("─", 60))
		for pos := 100.0; pos >= 0; pos -= 10 {
			r := physics.ReadingAt(volume, mud, pos)
			fmt.Printf("%8.0f  %10.1f  %10.2f  %8.1f  %s\n",
				r.TVD, r.Pressure, r.Volume, r.ExpansionRatio, r.Phase)
		}
		fmt.Println()
		fmt.Println(plot(physics.ExpansionProfile(volume, mud, 50), "expansion ratio from bottom to surface"))
		return nil
	},
}

var calcTrajectoryCmd = &cobra.Command{
	Use:   "trajectory",
	Short: "Integrate a build-and-hold well path",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan := trajectoryPlanFromFlags(cmd)
		traj := plan.Integrate()

		fmt.Printf("%6s  %6s  %7s  %8s  %8s  %8s\n", "MD", "Inc", "Azi", "TVD", "North", "East")
		fmt.Println(strings.Repeat("─", 54))
		for _, p := range traj.Points {
			fmt.Printf("%6.0f  %6.1f  %7.1f  %8.1f  %8.1f  %8.1f\n",
				p.MD, p.Inclination, p.Azimuth, p.TVDFt(), p.NorthFt(), p.EastFt())
		}
		fmt.Println()
		fmt.Printf("Dogleg severity:  %.2f deg/100ft\n", traj.DLS)
		fmt.Printf("Departure:        %.1f ft\n", traj.DepartureFt())
		if traj.HighDogleg() {
			fmt.Printf("HIGH DOGLEG: above %.0f deg/100ft\n", physics.HighDLS)
		}

		inc := make([]float64, len(traj.Points))
		for i, p := range traj.Points {
			inc[i] = p.Inclination
		}
		fmt.Println()
		fmt.Println(plot(inc, "inclination (deg) along measured depth"))
		return nil
	},
}

func trajectoryPlanFromFlags(cmd *cobra.Command) physics.TrajectoryPlan {
	plan := physics.TrajectoryPlan{}
	plan.BuildRate, _ = cmd.Flags().GetFloat64("build")
	plan.TurnRate, _ = cmd.Flags().GetFloat64("turn")
	plan.HoldAngle, _ = cmd.Flags().GetFloat64("hold")
	return plan
}

func addTrajectoryFlags(cmd *cobra.Command) {
	def := physics.DefaultTrajectoryPlan()
	cmd.Flags().Float64("build", def.BuildRate, "Build rate in deg/100ft")
	cmd.Flags().Float64("turn", def.TurnRate, "Turn rate in deg/100ft")
	cmd.Flags().Float64("hold", def.HoldAngle, "Target inclination in deg")
}

func addGasFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("volume", 1, "Kick volume at bottom in bbl")
	cmd.Flags().Float64("mud", 10, "Mud weight in ppg")
}

func plot(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption))
}

func init() {
	calcHydrostaticCmd.Flags().Float64("sg", 1.0, "Fluid specific gravity")
	calcHydrostaticCmd.Flags().Float64("tvd", 10000, "True vertical depth in ft")

	def := physics.DefaultHoleCleaning()
	calcHoleCleanCmd.Flags().Float64("flow", def.FlowRate, "Flow rate in gpm")
	calcHoleCleanCmd.Flags().Float64("viscosity", def.Viscosity, "Mud viscosity in cP")
	calcHoleCleanCmd.Flags().Float64("inclination", def.Inclination, "Hole inclination in deg")
	calcHoleCleanCmd.Flags().Float64("size", def.CuttingSize, "Cutting size in mm")

	addGasFlags(calcGasCmd)
	addTrajectoryFlags(calcTrajectoryCmd)

	calcCmd.AddCommand(calcHydrostaticCmd)
	calcCmd.AddCommand(calcHoleCleanCmd)
	calcCmd.AddCommand(calcGasCmd)
	calcCmd.AddCommand(calcTrajectoryCmd)
}
