package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/physics"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// bigStep is how many steps shift+arrow moves a slider.
const bigStep = 5

// ParamList is a stack of sliders over physics.Param controls.
type ParamList struct {
	Params   []physics.Param
	Values   []float64
	Selected int
}

// NewParamList creates a slider list. Missing values start at each
// range's minimum.
func NewParamList(params []physics.Param, values ...float64) ParamList {
	vals := make([]float64, len(params))
	for i, p := range params {
		v := p.Range.Min
		if i < len(values) {
			v = values[i]
		}
		vals[i] = p.Range.Clamp(v)
	}
	return ParamList{Params: params, Values: vals}
}

// Update moves the selection with up/down and the selected slider with
// left/right. It reports whether any value changed.
func (p ParamList) Update(msg tea.Msg) (ParamList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Params) == 0 {
		return p, false
	}

	steps := 0
	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Params)-1 {
			p.Selected++
		}
	case "left", "h":
		steps = -1
	case "right", "l":
		steps = 1
	case "shift+left", "H":
		steps = -bigStep
	case "shift+right", "L":
		steps = bigStep
	}
	if steps == 0 {
		return p, false
	}

	old := p.Values[p.Selected]
	p.Values = append([]float64(nil), p.Values...)
	p.Values[p.Selected] = p.Params[p.Selected].Nudge(old, steps)
	return p, p.Values[p.Selected] != old
}

// Value returns the value of the control named key, or 0.
func (p ParamList) Value(key string) float64 {
	for i, prm := range p.Params {
		if prm.Key == key {
			return p.Values[i]
		}
	}
	return 0
}

// Set assigns the control named key, clamped to its range.
func (p *ParamList) Set(key string, v float64) {
	for i, prm := range p.Params {
		if prm.Key == key {
			p.Values[i] = prm.Range.Clamp(v)
			return
		}
	}
}

// View renders one slider per line at the given width.
func (p ParamList) View(width int) string {
	labelW := 0
	for _, prm := range p.Params {
		labelW = max(labelW, lipgloss.Width(prm.Label))
	}
	barW := max(width-labelW-22, 8)

	lines := make([]string, len(p.Params))
	for i, prm := range p.Params {
		lines[i] = renderSlider(prm, p.Values[i], i == p.Selected, labelW, barW)
	}
	return strings.Join(lines, "\n")
}

func renderSlider(prm physics.Param, v float64, selected bool, labelW, barW int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(labelW)
	marker := "  "
	if selected {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		marker = "▸ "
	}

	pos := int(prm.Range.Fraction(v) * float64(barW-1))
	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", pos)) +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●") +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barW-1-pos))

	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s %s", FormatValue(v, prm.Step), prm.Unit))

	return marker + labelStyle.Render(prm.Label) + "  " + bar + "  " + value
}

// FormatValue prints v with as many decimals as step needs.
func FormatValue(v, step float64) string {
	switch {
	case step >= 1:
		return fmt.Sprintf("%.0f", v)
	case step >= 0.1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
