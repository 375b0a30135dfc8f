package lab

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/physics"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// DirectionalScreen integrates and plots a build-and-hold well path.
type DirectionalScreen struct {
	panel
	plan physics.TrajectoryPlan
	path physics.Trajectory
}

var _ screen.Screen = (*DirectionalScreen)(nil)
var _ screen.KeyHintProvider = (*DirectionalScreen)(nil)

// NewDirectional starts from physics.DefaultTrajectoryPlan.
func NewDirectional() *DirectionalScreen {
	plan := physics.DefaultTrajectoryPlan()
	return &DirectionalScreen{
		panel: panel{
			params: components.NewParamList(physics.TrajectoryParams,
				plan.BuildRate, plan.TurnRate, plan.HoldAngle),
			theory:    directionalTheory,
			analogies: directionalAnalogies,
		},
		plan: plan,
		path: plan.Integrate(),
	}
}

func (s *DirectionalScreen) Init() tea.Cmd { return nil }

func (s *DirectionalScreen) Title() string { return Directional.Label() }

// Path returns the trajectory for the current controls.
func (s *DirectionalScreen) Path() physics.Trajectory { return s.path }

func (s *DirectionalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if _, changed := s.handleKey(kmsg); changed {
		s.plan = physics.TrajectoryPlan{
			BuildRate: s.params.Value("build"),
			TurnRate:  s.params.Value("turn"),
			HoldAngle: s.params.Value("hold"),
		}
		s.path = s.plan.Integrate()
	}
	return s, nil
}

func (s *DirectionalScreen) KeyHints() []layout.KeyHint {
	return s.keyHints()
}

func (s *DirectionalScreen) View(width, height int) string {
	return s.render(width, height, s.simulation)
}

func (s *DirectionalScreen) simulation(w int) string {
	end := s.path.End()
	info := readout([][2]string{
		{"Measured depth", fmt.Sprintf("%.0f ft", end.MD)},
		{"True vertical depth", fmt.Sprintf("%.0f ft", end.TVDFt())},
		{"Departure", fmt.Sprintf("%.0f ft", s.path.DepartureFt())},
		{"Final inclination", fmt.Sprintf("%.1f deg", end.Inclination)},
		{"Final azimuth", fmt.Sprintf("%.1f deg", end.Azimuth)},
		{"Dogleg severity", fmt.Sprintf("%.2f deg/100ft", s.path.DLS)},
	})
	if s.path.HighDogleg() {
		info += "\n\n" + theme.Alarm.Render("HIGH DOGLEG") + " " +
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("above %.0f deg/100ft", physics.HighDLS))
	}

	inc := make([]float64, len(s.path.Points))
	dep := make([]float64, len(s.path.Points))
	for i, p := range s.path.Points {
		inc[i] = p.Inclination
		dep[i] = -p.TVDFt()
	}
	half := max(w/2-8, 20)
	incChart := components.Chart(inc, half, 5, "inclination (deg) by station")
	tvdChart := components.Chart(dep, half, 5, "TVD (ft, negative down) by station")

	return info + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, incChart, "  ", tvdChart)
}
