package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/ui/theme"
)

// ErrorNotice renders a blocking failure notification.
func ErrorNotice(text string, width int) string {
	head := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ Request failed")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(text)
	hint := theme.Hint.Render("Press any key to dismiss")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Width(min(width, 60)).
		Padding(0, 1).
		Render(head + "\n\n" + body + "\n\n" + hint)
}

// SpinnerInterval is the frame period of Spinner.
const SpinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances a Spinner by one frame.
type SpinnerTickMsg struct{}

// Spinner is a braille activity indicator.
type Spinner struct {
	frame int
}

// Tick schedules the next frame.
func (s Spinner) Tick() tea.Cmd {
	return tea.Tick(SpinnerInterval, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// Advance moves to the next frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// View renders the current frame followed by label.
func (s Spinner) View(label string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(spinnerFrames[s.frame]) +
		" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
