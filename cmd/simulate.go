package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/migration"
	"github.com/welltegra/welllab/internal/physics"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a live simulation in the terminal",
}

var simulateGasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Watch a gas kick migrate up a shut-in well",
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, _ := cmd.Flags().GetFloat64("volume")
		mud, _ := cmd.Flags().GetFloat64("mud")
		interval, _ := cmd.Flags().GetDuration("interval")
		every, _ := cmd.Flags().GetInt("every")
		if every < 1 {
			every = 1
		}

		logger, err := newLogger(cmd, false)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		sim := physics.NewGasMigration()
		sim.SetInitialVolume(volume)
		sim.SetMudWeight(mud)
		sim.Release()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		runner := migration.NewRunner(sim, interval, logger)
		fmt.Printf("%6s  %8s  %10s  %10s  %8s  %s\n", "Tick", "TVD ft", "Pressure", "Volume", "Ratio", "Phase")
		fmt.Println(strings.Repeat("─", 64))

		h, err := runner.Start(ctx, func(s migration.Snapshot) {
			if s.Tick%every != 0 && s.Migrating {
				return
			}
			r := s.Reading
			fmt.Printf("%6d  %8.0f  %10.1f  %10.2f  %8.1f  %s\n",
				s.Tick, r.TVD, r.Pressure, r.Volume, r.ExpansionRatio, r.Phase)
		})
		if err != nil {
			return fmt.Errorf("start migration: %w", err)
		}
		<-h.Done()

		final := runner.Snapshot()
		if ctx.Err() != nil && final.Migrating {
			fmt.Println("\nInterrupted.")
			return nil
		}
		if final.Position == 0 {
			fmt.Printf("\nGas at surface: %.1fx expansion, %.2f bbl.\n",
				final.Reading.ExpansionRatio, final.Reading.Volume)
			logger.Info("gas reached surface",
				zap.Float64("initial_volume", sim.InitialVolume()),
				zap.Float64("expansion_ratio", final.Reading.ExpansionRatio))
		}
		return nil
	},
}

func init() {
	addGasFlags(simulateGasCmd)
	simulateGasCmd.Flags().Duration("interval", physics.MigrationInterval, "Time between migration steps")
	simulateGasCmd.Flags().Int("every", 25, "Print every Nth tick")

	simulateCmd.AddCommand(simulateGasCmd)
}
