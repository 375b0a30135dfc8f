package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/welltegra/welllab/internal/physics"
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keySpecial(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(keySpecial(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(keyRune('k'))
	if m.Selected != 1 {
		t.Errorf("after k = %d, want 1", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(keySpecial(tea.KeyEnter))
	if !ran {
		t.Error("enter should run the selected action")
	}
}

func TestMenuViewShowsBadge(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Fundamentals", Badge: "complete"}})
	v := m.View()
	if !strings.Contains(v, "Fundamentals") || !strings.Contains(v, "complete") {
		t.Errorf("view missing label or badge: %q", v)
	}
}

func TestMultiChoiceSubmit(t *testing.T) {
	mc := NewMultiChoice("Q?", []string{"a", "b", "c", "d", "e"}, 4)
	for range 10 {
		mc, _ = mc.Update(keySpecial(tea.KeyDown))
	}
	if mc.Selected != 4 {
		t.Fatalf("selection should stop at last option, got %d", mc.Selected)
	}
	mc, _ = mc.Update(keySpecial(tea.KeyEnter))
	if !mc.IsCorrect() {
		t.Error("expected correct answer")
	}
	if !strings.Contains(mc.View(), "E)") {
		t.Error("fifth option should be lettered E")
	}

	mc, _ = mc.Update(keySpecial(tea.KeyUp))
	if mc.Selected != 4 {
		t.Error("submitted choice should ignore navigation")
	}
}

func TestParamListNudge(t *testing.T) {
	p := NewParamList(physics.HydrostaticParams, 1.0, 100)

	p, changed := p.Update(keySpecial(tea.KeyRight))
	if !changed {
		t.Fatal("right should change the selected value")
	}
	if got := p.Value("density"); got != 1.05 {
		t.Errorf("density = %v, want 1.05", got)
	}

	p, _ = p.Update(keySpecial(tea.KeyDown))
	p, changed = p.Update(keySpecial(tea.KeyRight))
	if changed {
		t.Error("depth is already at max; nothing should change")
	}
	if got := p.Value("depth"); got != 100 {
		t.Errorf("depth = %v, want 100", got)
	}

	p, _ = p.Update(keyRune('h'))
	if got := p.Value("depth"); got != 95 {
		t.Errorf("depth = %v, want 95", got)
	}
}

func TestParamListSetClamps(t *testing.T) {
	p := NewParamList(physics.GasParams)
	p.Set("mud", 99)
	if got := p.Value("mud"); got != physics.MudWeightRange.Max {
		t.Errorf("mud = %v, want %v", got, physics.MudWeightRange.Max)
	}
	if got := p.Value("volume"); got != physics.GasVolumeRange.Min {
		t.Errorf("volume default = %v, want range min", got)
	}
	if got := p.Value("nope"); got != 0 {
		t.Errorf("unknown key = %v, want 0", got)
	}
}

func TestParamListView(t *testing.T) {
	p := NewParamList(physics.HoleCleaningParams, 600, 40, 0, 5)
	v := p.View(80)
	for _, want := range []string{"Flow rate", "600 gpm", "Cutting size", "▸"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{600, 25, "600"},
		{10.5, 0.5, "10.5"},
		{1.05, 0.05, "1.05"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.step); got != tt.want {
			t.Errorf("FormatValue(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestChart(t *testing.T) {
	if Chart(nil, 40, 5, "") != "" {
		t.Error("empty data should render nothing")
	}
	out := Chart([]float64{1, 2, 4, 8}, 40, 5, "expansion")
	if !strings.Contains(out, "expansion") {
		t.Errorf("chart missing caption: %q", out)
	}
	if Chart([]float64{3}, 40, 5, "") == "" {
		t.Error("a single sample should still plot")
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown("# Heading\n\nHydrostatics", 60)
	if !strings.Contains(out, "Hydrostatics") {
		t.Errorf("markdown lost body text: %q", out)
	}
}

func TestTabs(t *testing.T) {
	out := Tabs([]string{"Simulation", "Theory"}, 1)
	if !strings.Contains(out, "Simulation") || !strings.Contains(out, "Theory") {
		t.Errorf("tabs missing labels: %q", out)
	}
}

func TestSpinnerAdvanceWraps(t *testing.T) {
	var s Spinner
	for range len(spinnerFrames) {
		s.Advance()
	}
	if s.frame != 0 {
		t.Errorf("frame = %d, want 0 after a full cycle", s.frame)
	}
	if s.Tick() == nil {
		t.Error("Tick should return a command")
	}
}

func TestTextInputMissing(t *testing.T) {
	in := NewTextInput("Interests", "", true, 100)
	if !in.Missing() {
		t.Error("blank required input should be missing")
	}
	in.SetValue("  geology ")
	if in.Missing() || in.Value() != "geology" {
		t.Errorf("value = %q", in.Value())
	}
}
