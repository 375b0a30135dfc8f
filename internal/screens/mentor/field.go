package mentor

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// field is one input row of a mentor form.
type field interface {
	label() string
	value() string
	missing() bool
	focus() tea.Cmd
	blur()
	update(msg tea.Msg) tea.Cmd
	view(focused bool) string
}

// textField is free text with optional suggestions cycled by ctrl+n.
type textField struct {
	input       components.TextInput
	suggestions []string
	next        int
}

func newTextField(label, placeholder string, required bool, suggestions ...string) *textField {
	return &textField{
		input:       components.NewTextInput(label, placeholder, required, 200),
		suggestions: suggestions,
	}
}

func (f *textField) label() string     { return f.input.Label }
func (f *textField) value() string     { return f.input.Value() }
func (f *textField) missing() bool     { return f.input.Missing() }
func (f *textField) focus() tea.Cmd    { return f.input.Focus() }
func (f *textField) blur()             { f.input.Blur() }
func (f *textField) setValue(s string) { f.input.SetValue(s) }

func (f *textField) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+n" && len(f.suggestions) > 0 {
		f.input.SetValue(f.suggestions[f.next])
		f.next = (f.next + 1) % len(f.suggestions)
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *textField) view(bool) string {
	v := f.input.View()
	if len(f.suggestions) > 0 && f.input.Focused() {
		v += "\n" + theme.Hint.Render("ctrl+n: suggestion")
	}
	return v
}

// choiceField picks one of a fixed set of options with left/right.
type choiceField struct {
	name     string
	options  []string
	selected int
	focused  bool
}

func newChoiceField(name string, options []string) *choiceField {
	return &choiceField{name: name, options: options}
}

func (f *choiceField) label() string { return f.name }

func (f *choiceField) value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.selected]
}

func (f *choiceField) missing() bool  { return len(f.options) == 0 }
func (f *choiceField) focus() tea.Cmd { f.focused = true; return nil }
func (f *choiceField) blur()          { f.focused = false }

func (f *choiceField) update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(f.options) == 0 {
		return nil
	}
	n := len(f.options)
	switch k.String() {
	case "left", "h":
		f.selected = (f.selected - 1 + n) % n
	case "right", "l", "space", " ":
		f.selected = (f.selected + 1) % n
	}
	return nil
}

func (f *choiceField) view(focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := theme.Unselected
	if focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		valueStyle = theme.Selected
	}
	return labelStyle.Render(f.name) + "\n" +
		valueStyle.Render("◂ "+f.value()+" ▸")
}
