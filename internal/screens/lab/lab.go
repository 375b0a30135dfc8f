// Package lab holds the physics lab: a menu of visualizers, each pairing
// a calculator from internal/physics with sliders, a diagram and charts.
package lab

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// Kind names a visualizer. Lessons refer to labs by these values.
type Kind string

const (
	Hydrostatic  Kind = "hydrostatic"
	HoleCleaning Kind = "holeclean"
	Gas          Kind = "gas"
	Directional  Kind = "directional"
)

// Kinds lists the visualizers in menu order.
var Kinds = []Kind{Hydrostatic, HoleCleaning, Gas, Directional}

// Label is the human name of the visualizer.
func (k Kind) Label() string {
	switch k {
	case Hydrostatic:
		return "Hydrostatic Pressure"
	case HoleCleaning:
		return "Hole Cleaning"
	case Gas:
		return "Gas Migration"
	case Directional:
		return "Directional Drilling"
	}
	return string(k)
}

func (k Kind) blurb() string {
	switch k {
	case Hydrostatic:
		return "density x depth, probes, fluid presets"
	case HoleCleaning:
		return "annular velocity, slip, Boycott settling"
	case Gas:
		return "Boyle's law expansion of a rising kick"
	case Directional:
		return "build, turn and dogleg severity"
	}
	return ""
}

// Open builds the visualizer for k.
func Open(k Kind, svc screen.Services) (screen.Screen, error) {
	switch k {
	case Hydrostatic:
		return NewHydrostatic(), nil
	case HoleCleaning:
		return NewHoleCleaning(), nil
	case Gas:
		return NewGas(svc), nil
	case Directional:
		return NewDirectional(), nil
	}
	return nil, fmt.Errorf("unknown lab %q", k)
}

// LabScreen is the physics lab menu.
type LabScreen struct {
	svc  screen.Services
	menu components.Menu
}

var _ screen.Screen = (*LabScreen)(nil)

// New creates the lab menu.
func New(svc screen.Services) *LabScreen {
	items := make([]components.MenuItem, len(Kinds))
	for i, k := range Kinds {
		items[i] = components.MenuItem{
			Label: k.Label(),
			Badge: k.blurb(),
			Action: func() tea.Cmd {
				s, err := Open(k, svc)
				if err != nil {
					svc.Log().Error("open lab", zap.String("lab", string(k)), zap.Error(err))
					return nil
				}
				return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
			},
		}
	}
	return &LabScreen{svc: svc, menu: components.NewMenu(items)}
}

func (l *LabScreen) Init() tea.Cmd {
	return nil
}

func (l *LabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LabScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	head := theme.Title.Width(cw).Render("Physics Lab")
	sub := theme.Subtitle.Width(cw).Render("Pick a visualizer. Every control is clamped to a field-realistic range.")
	content := head + "\n" + sub + "\n\n" + components.Card(l.menu.View(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LabScreen) Title() string {
	return "Physics Lab"
}
