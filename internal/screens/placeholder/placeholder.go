package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// NoAdvisorMessage explains why an advisor feature cannot open.
const NoAdvisorMessage = "This feature needs a generative model.\n\n" +
	"Set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY\n" +
	"or OPENROUTER_API_KEY and restart welllab."

// PlaceholderScreen stands in for a feature that cannot run right now.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and message.
func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	head := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("╌╌ Unavailable ╌╌")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(p.message)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(head + "\n\n" + body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
