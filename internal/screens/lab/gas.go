package lab

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/physics"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

const (
	wellRows     = 12
	profilePoint = 40
)

// gasTickMsg advances the migration belonging to run.
type gasTickMsg struct {
	run string
}

// GasScreen animates a gas kick rising through a shut-in well.
type GasScreen struct {
	panel
	svc screen.Services
	sim *physics.GasMigration
	// run identifies the live tick chain. Ticks carrying any other id
	// are dropped without rescheduling.
	run string
}

var _ screen.Screen = (*GasScreen)(nil)
var _ screen.KeyHintProvider = (*GasScreen)(nil)

// NewGas returns an idle 1 bbl kick at the bottom of a 10 ppg well.
func NewGas(svc screen.Services) *GasScreen {
	sim := physics.NewGasMigration()
	return &GasScreen{
		panel: panel{
			params:    components.NewParamList(physics.GasParams, sim.InitialVolume(), sim.MudWeight()),
			theory:    gasTheory,
			analogies: gasAnalogies,
		},
		svc: svc,
		sim: sim,
	}
}

func (s *GasScreen) Init() tea.Cmd { return nil }

func (s *GasScreen) Title() string { return Gas.Label() }

// Sim exposes the simulation.
func (s *GasScreen) Sim() *physics.GasMigration { return s.sim }

func (s *GasScreen) tick() tea.Cmd {
	run := s.run
	return tea.Tick(physics.MigrationInterval, func(time.Time) tea.Msg {
		return gasTickMsg{run: run}
	})
}

// start begins a new tick chain and invalidates any older one.
func (s *GasScreen) start() tea.Cmd {
	s.run = uuid.NewString()
	return s.tick()
}

// stop invalidates the live tick chain.
func (s *GasScreen) stop() {
	s.run = ""
}

func (s *GasScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gasTickMsg:
		if msg.run == "" || msg.run != s.run {
			return s, nil
		}
		s.sim.Step()
		if !s.sim.Migrating() {
			s.stop()
			if s.sim.Position() == 0 {
				s.svc.Log().Info("gas reached surface",
					zap.Float64("initial_bbl", s.sim.InitialVolume()),
					zap.Float64("mud_ppg", s.sim.MudWeight()),
					zap.Float64("final_bbl", s.sim.Reading().Volume))
			}
			return s, nil
		}
		return s, s.tick()

	case tea.KeyMsg:
		if _, changed := s.handleKey(msg); changed {
			s.sim.SetInitialVolume(s.params.Value("volume"))
			s.sim.SetMudWeight(s.params.Value("mud"))
			return s, nil
		}
		if s.mode != ModeSimulation {
			return s, nil
		}
		switch msg.String() {
		case "r":
			s.sim.Release()
			s.svc.Log().Debug("kick released",
				zap.Float64("initial_bbl", s.sim.InitialVolume()),
				zap.Float64("mud_ppg", s.sim.MudWeight()))
			return s, s.start()
		case "space", " ":
			if s.sim.Migrating() {
				s.sim.Pause()
				s.stop()
				return s, nil
			}
			s.sim.Resume()
			if s.sim.Migrating() {
				return s, s.start()
			}
		}
	}
	return s, nil
}

func (s *GasScreen) KeyHints() []layout.KeyHint {
	toggle := "Resume"
	if s.sim.Migrating() {
		toggle = "Pause"
	}
	return s.keyHints(
		layout.KeyHint{Key: "R", Description: "Release kick"},
		layout.KeyHint{Key: "Space", Description: toggle},
	)
}

func (s *GasScreen) View(width, height int) string {
	return s.render(width, height, s.simulation)
}

func (s *GasScreen) simulation(w int) string {
	r := s.sim.Reading()

	state := "idle"
	if s.sim.Migrating() {
		state = "migrating"
	} else if s.sim.Position() == 0 {
		state = "at surface"
	} else if s.sim.Position() < physics.BubblePositionRange.Max {
		state = "paused"
	}

	info := readout([][2]string{
		{"State", state},
		{"Bubble TVD", fmt.Sprintf("%.0f ft", r.TVD)},
		{"Pressure", fmt.Sprintf("%.0f psi", r.Pressure)},
		{"Mud above bubble", fmt.Sprintf("%.0f psi", r.Hydrostatic)},
		{"Volume", fmt.Sprintf("%.2f bbl", r.Volume)},
		{"Expansion", fmt.Sprintf("%.1fx", r.ExpansionRatio)},
	})
	info += "\n\n" + phaseBadge(r.Phase)

	profile := physics.ExpansionProfile(s.sim.InitialVolume(), s.sim.MudWeight(), profilePoint)
	chart := components.Chart(profile, max(w-20, 20), 5, "expansion ratio, bottom → surface")

	return lipgloss.JoinHorizontal(lipgloss.Top, s.renderWell(r.Phase), "   ", info) + "\n\n" + chart
}

func phaseBadge(p physics.Phase) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(theme.BgDark)
	switch p {
	case physics.PhaseUnloading:
		style = style.Background(theme.Error)
	case physics.PhaseExpanding:
		style = style.Background(theme.Warning)
	default:
		style = style.Background(theme.Secondary)
	}
	return style.Render(string(p))
}

// renderWell draws the wellbore with the bubble at its current depth.
func (s *GasScreen) renderWell(phase physics.Phase) string {
	mud := lipgloss.NewStyle().Foreground(theme.Mud)
	gas := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	wall := lipgloss.NewStyle().Foreground(theme.Rock)

	bubble := "•"
	switch phase {
	case physics.PhaseExpanding:
		bubble = "●"
	case physics.PhaseUnloading:
		bubble = "◉◉"
	}

	row := int(s.sim.Position() / physics.BubblePositionRange.Max * float64(wellRows-1))
	var b strings.Builder
	b.WriteString(wall.Render("═╡    ╞═") + "\n")
	for i := range wellRows {
		fill := mud.Render("░░░░")
		if i == row {
			pad := 4 - lipgloss.Width(bubble)
			fill = mud.Render(strings.Repeat("░", pad/2)) + gas.Render(bubble) + mud.Render(strings.Repeat("░", pad-pad/2))
		}
		b.WriteString(wall.Render(" │") + fill + wall.Render("│") + "\n")
	}
	b.WriteString(wall.Render(" └────┘"))
	return b.String()
}
