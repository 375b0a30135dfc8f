package lab

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/physics"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

const (
	tankRows = 10
	tankCols = 16

	// probeCursorStep is how far [ and ] move the probe cursor.
	probeCursorStep = 0.1
)

// probeColumns are the horizontal positions successive probes cycle
// through, so readings at one depth show up side by side.
var probeColumns = []float64{0.25, 0.5, 0.75}

// HydrostaticScreen visualizes pressure in a static fluid column.
type HydrostaticScreen struct {
	panel
	column  *physics.Column
	cursorY float64
	drops   int
	note    string
}

var _ screen.Screen = (*HydrostaticScreen)(nil)
var _ screen.KeyHintProvider = (*HydrostaticScreen)(nil)

// NewHydrostatic returns a full-depth water column.
func NewHydrostatic() *HydrostaticScreen {
	col := physics.NewColumn()
	return &HydrostaticScreen{
		panel: panel{
			params:    components.NewParamList(physics.HydrostaticParams, col.Density, col.Depth),
			theory:    hydrostaticTheory,
			analogies: hydrostaticAnalogies,
		},
		column:  col,
		cursorY: 1,
	}
}

func (s *HydrostaticScreen) Init() tea.Cmd { return nil }

func (s *HydrostaticScreen) Title() string { return Hydrostatic.Label() }

// Column exposes the simulated column.
func (s *HydrostaticScreen) Column() *physics.Column { return s.column }

func (s *HydrostaticScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if handled, changed := s.handleKey(kmsg); handled {
		if changed {
			s.column.Density = s.params.Value("density")
			s.column.Depth = s.params.Value("depth")
		}
		return s, nil
	}
	if s.mode != ModeSimulation {
		return s, nil
	}

	switch kmsg.String() {
	case "[":
		s.cursorY = math.Max(0, s.cursorY-probeCursorStep)
	case "]":
		s.cursorY = math.Min(1, s.cursorY+probeCursorStep)
	case "p":
		x := probeColumns[s.drops%len(probeColumns)]
		if p, ok := s.column.Drop(x, s.cursorY); ok {
			s.drops++
			s.note = fmt.Sprintf("Probe reads %d psi", p.Pressure)
		} else {
			s.note = "Probe is above the fluid surface"
		}
	case "c":
		s.column.ClearProbes()
		s.note = ""
	case "f":
		s.cyclePreset()
	}
	return s, nil
}

// cyclePreset jumps to the next reference fluid.
func (s *HydrostaticScreen) cyclePreset() {
	cur := physics.ActivePreset(s.column.Density)
	next := physics.FluidPresets[0]
	for i, p := range physics.FluidPresets {
		if p.Name == cur.Name {
			next = physics.FluidPresets[(i+1)%len(physics.FluidPresets)]
			break
		}
	}
	s.column.Density = next.Density
	s.params.Set("density", next.Density)
}

func (s *HydrostaticScreen) KeyHints() []layout.KeyHint {
	return s.keyHints(
		layout.KeyHint{Key: "[ ]", Description: "Aim"},
		layout.KeyHint{Key: "P", Description: "Probe"},
		layout.KeyHint{Key: "F", Description: "Fluid"},
	)
}

func (s *HydrostaticScreen) View(width, height int) string {
	return s.render(width, height, s.simulation)
}

func (s *HydrostaticScreen) simulation(w int) string {
	tank := s.renderTank()

	preset := physics.ActivePreset(s.column.Density)
	rows := [][2]string{
		{"Fluid", fmt.Sprintf("%s (%.2f SG, %.1f ppg)", preset.Name, s.column.Density, s.column.Density*physics.SGToPPG)},
		{"TVD", fmt.Sprintf("%.0f ft", s.column.TVD())},
		{"Bottom pressure", fmt.Sprintf("%d psi", s.column.BottomPressure())},
	}
	for i, p := range s.column.Probes() {
		arrow := strings.Repeat("→", int(physics.VectorLength(p.Pressure)/10))
		rows = append(rows, [2]string{
			fmt.Sprintf("Probe %d", i+1),
			fmt.Sprintf("%d psi %s", p.Pressure, arrow),
		})
	}
	info := readout(rows)
	if s.note != "" {
		info += "\n\n" + theme.Hint.Render(s.note)
	}

	profile := make([]float64, 11)
	for i := range profile {
		profile[i] = physics.PressurePsi(s.column.Density, s.column.TVD()*float64(i)/10)
	}
	chart := components.Chart(profile, max(w-tankCols-12, 20), 4, "pressure (psi), surface → bottom")

	right := info + "\n\n" + chart
	return lipgloss.JoinHorizontal(lipgloss.Top, tank, "   ", right)
}

// renderTank draws the tank with fluid, probes and the probe cursor.
func (s *HydrostaticScreen) renderTank() string {
	fluid := lipgloss.NewStyle().Foreground(theme.Secondary)
	probe := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.Border)

	top := int(math.Round(s.column.FluidTop() * tankRows))
	cursorRow := min(int(s.cursorY*tankRows), tankRows-1)

	grid := make([][]string, tankRows)
	for r := range grid {
		grid[r] = make([]string, tankCols)
		for c := range grid[r] {
			if r >= top {
				grid[r][c] = fluid.Render("░")
			} else {
				grid[r][c] = " "
			}
		}
	}
	for _, p := range s.column.Probes() {
		r := min(int(p.Y*tankRows), tankRows-1)
		c := min(int(p.X*tankCols), tankCols-1)
		grid[r][c] = probe.Render("◉")
	}

	var b strings.Builder
	for r, row := range grid {
		b.WriteString(dim.Render("│") + strings.Join(row, "") + dim.Render("│"))
		if r == cursorRow {
			b.WriteString(probe.Render(" ◂"))
		}
		b.WriteString("\n")
	}
	b.WriteString(dim.Render("└" + strings.Repeat("─", tankCols) + "┘"))
	return b.String()
}
