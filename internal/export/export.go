// Package export writes lab results to xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/welltegra/welllab/internal/physics"
)

const (
	SurveySheet    = "Survey"
	PlanSheet      = "Plan"
	MigrationSheet = "Migration"
)

var (
	surveyHeader    = []any{"Station", "MD (ft)", "Inc (deg)", "Azi (deg)", "TVD (ft)", "North (ft)", "East (ft)"}
	migrationHeader = []any{"Position (%)", "TVD (ft)", "Pressure (psi)", "Hydrostatic (psi)", "Volume (bbl)", "Expansion", "Phase"}
)

// TrajectoryWorkbook builds a survey listing and a plan summary for plan.
func TrajectoryWorkbook(plan physics.TrajectoryPlan) (*excelize.File, error) {
	traj := plan.Integrate()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SurveySheet); err != nil {
		f.Close()
		return nil, err
	}

	rows := [][]any{surveyHeader}
	for i, p := range traj.Points {
		rows = append(rows, []any{
			i, round2(p.MD), round2(p.Inclination), round2(p.Azimuth),
			round2(p.TVDFt()), round2(p.NorthFt()), round2(p.EastFt()),
		})
	}
	if err := writeRows(f, SurveySheet, rows); err != nil {
		f.Close()
		return nil, err
	}

	end := traj.End()
	summary := [][]any{
		{"Parameter", "Value"},
		{"Build rate (deg/100ft)", round2(plan.BuildRate)},
		{"Turn rate (deg/100ft)", round2(plan.TurnRate)},
		{"Target inclination (deg)", round2(plan.HoldAngle)},
		{"Dogleg severity (deg/100ft)", round2(traj.DLS)},
		{"High dogleg", traj.HighDogleg()},
		{"Final MD (ft)", round2(end.MD)},
		{"Final TVD (ft)", round2(end.TVDFt())},
		{"Departure (ft)", round2(traj.DepartureFt())},
	}
	if _, err := f.NewSheet(PlanSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, PlanSheet, summary); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// GasWorkbook tabulates a migrating kick at samples evenly spaced
// positions from bottom to surface.
func GasWorkbook(initialVolume, mudPPG float64, samples int) (*excelize.File, error) {
	if samples < 2 {
		samples = 2
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", MigrationSheet); err != nil {
		f.Close()
		return nil, err
	}

	rows := [][]any{migrationHeader}
	for i := range samples {
		pos := physics.BubblePositionRange.Max * float64(samples-1-i) / float64(samples-1)
		r := physics.ReadingAt(initialVolume, mudPPG, pos)
		rows = append(rows, []any{
			round2(pos), round2(r.TVD), round2(r.Pressure), round2(r.Hydrostatic),
			round2(r.Volume), round2(r.ExpansionRatio), string(r.Phase),
		})
	}
	if err := writeRows(f, MigrationSheet, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Write serializes the workbook to w and closes it.
func Write(f *excelize.File, w io.Writer) error {
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Save writes the workbook to path and closes it.
func Save(f *excelize.File, path string) error {
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "G", 16)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
