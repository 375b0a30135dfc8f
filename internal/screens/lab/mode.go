package lab

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// ViewMode is the closed set of panes every visualizer offers.
type ViewMode int

const (
	ModeSimulation ViewMode = iota
	ModeTheory
	ModeAnalogies
)

var viewModes = []ViewMode{ModeSimulation, ModeTheory, ModeAnalogies}

func (m ViewMode) String() string {
	switch m {
	case ModeSimulation:
		return "Simulation"
	case ModeTheory:
		return "Theory"
	case ModeAnalogies:
		return "Analogies"
	}
	return "Unknown"
}

// Next cycles forward through the modes.
func (m ViewMode) Next() ViewMode {
	return viewModes[(int(m)+1)%len(viewModes)]
}

// Prev cycles backward through the modes.
func (m ViewMode) Prev() ViewMode {
	return viewModes[(int(m)+len(viewModes)-1)%len(viewModes)]
}

// panel is the state every visualizer shares: the active pane, the
// sliders, and the static reading material.
type panel struct {
	mode      ViewMode
	params    components.ParamList
	theory    string
	analogies string
}

// handleKey applies mode switching and, in the simulation pane, slider
// movement. It reports whether the key was consumed and whether a
// control value changed.
func (p *panel) handleKey(msg tea.KeyMsg) (handled, changed bool) {
	switch msg.String() {
	case "tab":
		p.mode = p.mode.Next()
		return true, false
	case "shift+tab":
		p.mode = p.mode.Prev()
		return true, false
	}
	if p.mode != ModeSimulation {
		return false, false
	}
	before := p.params.Selected
	p.params, changed = p.params.Update(msg)
	return changed || before != p.params.Selected, changed
}

// render draws the tab strip and the active pane. sim renders the
// simulation pane at the given width.
func (p *panel) render(width, height int, sim func(w int) string) string {
	names := make([]string, len(viewModes))
	for i, m := range viewModes {
		names[i] = m.String()
	}
	tabs := components.Tabs(names, int(p.mode))

	w := max(width-4, 20)
	var body string
	switch p.mode {
	case ModeSimulation:
		body = p.params.View(w) + "\n\n" + sim(w)
	case ModeTheory:
		body = components.Markdown(p.theory, w)
	case ModeAnalogies:
		body = components.Markdown(p.analogies, w)
	}

	return lipgloss.NewStyle().
		Width(width).
		MaxHeight(height).
		Padding(0, 2).
		Render(tabs + "\n\n" + body)
}

func (p *panel) keyHints(extra ...layout.KeyHint) []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "View"}}
	if p.mode == ModeSimulation {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Control"},
			layout.KeyHint{Key: "←→", Description: "Adjust"},
		)
		hints = append(hints, extra...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// readout renders label/value rows aligned in two columns.
func readout(rows [][2]string) string {
	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r[0]))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = theme.Label.Width(labelW+2).Render(r[0]) + theme.Value.Render(r[1])
	}
	return strings.Join(lines, "\n")
}
