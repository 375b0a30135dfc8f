package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/quiz"
	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// Result is a finished knowledge check.
type Result struct {
	LessonTitle string
	Questions   []quiz.Question
	Answers     []quiz.Answer
	Score       int
}

// Accuracy returns the fraction of questions answered correctly.
func (r Result) Accuracy() float64 {
	if len(r.Questions) == 0 {
		return 0
	}
	return float64(r.Score) / float64(len(r.Questions))
}

// SummaryScreen displays the result of a knowledge check.
type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Check Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to lesson"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Lesson complete!")
	center(lipgloss.NewStyle().Foreground(theme.TextDim), r.LessonTitle)
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
			len(r.Questions), r.Score, r.Accuracy()*100))

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lineW := min(width-8, 60)
	for i, q := range r.Questions {
		mark := theme.Incorrect.Render("✗")
		if i < len(r.Answers) && r.Answers[i].Correct {
			mark = theme.Correct.Render("✓")
		}
		prompt := q.Prompt
		if lipgloss.Width(prompt) > lineW-4 && lineW > 8 {
			prompt = string([]rune(prompt)[:lineW-7]) + "..."
		}
		line := lipgloss.NewStyle().Width(lineW).Render(mark + "  " + prompt)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
