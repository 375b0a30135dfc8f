package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/welltegra/welllab/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write lab results to an xlsx workbook",
}

var exportTrajectoryCmd = &cobra.Command{
	Use:   "trajectory",
	Short: "Export a well path survey",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := export.TrajectoryWorkbook(trajectoryPlanFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
		return saveWorkbook(cmd, f)
	},
}

var exportGasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Export a gas migration table",
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, _ := cmd.Flags().GetFloat64("volume")
		mud, _ := cmd.Flags().GetFloat64("mud")
		samples, _ := cmd.Flags().GetInt("samples")
		f, err := export.GasWorkbook(volume, mud, samples)
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
		return saveWorkbook(cmd, f)
	},
}

func saveWorkbook(cmd *cobra.Command, f *excelize.File) error {
	out, _ := cmd.Flags().GetString("out")
	if err := export.Save(f, out); err != nil {
		return err
	}
	fmt.Println("Wrote", out)
	return nil
}

func init() {
	addTrajectoryFlags(exportTrajectoryCmd)
	exportTrajectoryCmd.Flags().StringP("out", "o", "trajectory.xlsx", "Output file")

	addGasFlags(exportGasCmd)
	exportGasCmd.Flags().Int("samples", 21, "Number of positions from bottom to surface")
	exportGasCmd.Flags().StringP("out", "o", "gas-migration.xlsx", "Output file")

	exportCmd.AddCommand(exportTrajectoryCmd)
	exportCmd.AddCommand(exportGasCmd)
}
