package lab

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/physics"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// sweepPoints is the number of inclinations sampled for the chart.
const sweepPoints = 19

// HoleCleaningScreen visualizes cuttings transport in the annulus.
type HoleCleaningScreen struct {
	panel
	state     physics.HoleCleaning
	transport physics.Transport
}

var _ screen.Screen = (*HoleCleaningScreen)(nil)
var _ screen.KeyHintProvider = (*HoleCleaningScreen)(nil)

// NewHoleCleaning starts from physics.DefaultHoleCleaning.
func NewHoleCleaning() *HoleCleaningScreen {
	st := physics.DefaultHoleCleaning()
	return &HoleCleaningScreen{
		panel: panel{
			params: components.NewParamList(physics.HoleCleaningParams,
				st.FlowRate, st.Viscosity, st.Inclination, st.CuttingSize),
			theory:    holeCleaningTheory,
			analogies: holeCleaningAnalogies,
		},
		state:     st,
		transport: st.Compute(),
	}
}

func (s *HoleCleaningScreen) Init() tea.Cmd { return nil }

func (s *HoleCleaningScreen) Title() string { return HoleCleaning.Label() }

// Transport returns the derived state for the current controls.
func (s *HoleCleaningScreen) Transport() physics.Transport { return s.transport }

func (s *HoleCleaningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if _, changed := s.handleKey(kmsg); changed {
		s.state = physics.HoleCleaning{
			FlowRate:    s.params.Value("flow"),
			Viscosity:   s.params.Value("viscosity"),
			Inclination: s.params.Value("inclination"),
			CuttingSize: s.params.Value("size"),
		}
		s.transport = s.state.Compute()
	}
	return s, nil
}

func (s *HoleCleaningScreen) KeyHints() []layout.KeyHint {
	return s.keyHints()
}

func (s *HoleCleaningScreen) View(width, height int) string {
	return s.render(width, height, s.simulation)
}

func (s *HoleCleaningScreen) simulation(w int) string {
	t := s.transport
	info := readout([][2]string{
		{"Annular velocity", fmt.Sprintf("%.1f ft/min", t.AnnularVelocity)},
		{"Slip velocity", fmt.Sprintf("%.1f ft/min", t.SlipVelocity)},
		{"Boycott penalty", fmt.Sprintf("%.1f ft/min", t.BoycottPenalty)},
		{"Net velocity", fmt.Sprintf("%.1f ft/min", t.NetVelocity)},
	})

	gaugeW := min(w/2, 40)
	gauge := components.NewProgressBar("Efficiency", t.Efficiency, true, gaugeW).View()

	status := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✔ Hole is cleaning")
	if t.Stuck {
		reasons := make([]string, len(t.Reasons))
		for i, r := range t.Reasons {
			reasons[i] = "  • " + string(r)
		}
		status = theme.Alarm.Render("STUCK PIPE RISK") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Error).Render(strings.Join(reasons, "\n"))
	}

	sweep := make([]float64, sweepPoints)
	for i := range sweep {
		st := s.state
		st.Inclination = physics.InclinationRange.Max * float64(i) / float64(sweepPoints-1)
		sweep[i] = st.Compute().Efficiency * 100
	}
	chart := components.Chart(sweep, max(w-10, 20), 4, "efficiency (%) vs inclination, 0 → 90 deg")

	left := info + "\n\n" + gauge + "\n\n" + status
	return left + "\n\n" + chart
}
