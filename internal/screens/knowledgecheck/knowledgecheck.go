// Package knowledgecheck runs a generated quiz for one lesson.
package knowledgecheck

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/quiz"
	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/screens/summary"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// CheckScreen walks the learner through select, verify and next.
type CheckScreen struct {
	lesson course.Lesson
	check  *quiz.Check
	choice components.MultiChoice
}

var _ screen.Screen = (*CheckScreen)(nil)
var _ screen.KeyHintProvider = (*CheckScreen)(nil)

// New starts a knowledge check. It fails if any question is malformed.
func New(lesson course.Lesson, questions []quiz.Question) (*CheckScreen, error) {
	check, err := quiz.New(questions)
	if err != nil {
		return nil, fmt.Errorf("knowledge check for %s: %w", lesson.ID, err)
	}
	s := &CheckScreen{lesson: lesson, check: check}
	s.loadQuestion()
	return s, nil
}

func (s *CheckScreen) loadQuestion() {
	q := s.check.Current()
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	// quiz.Check starts with nothing selected; mirror the highlight.
	_ = s.check.Select(0)
}

func (s *CheckScreen) Init() tea.Cmd { return nil }

func (s *CheckScreen) Title() string { return "Knowledge Check" }

// Check exposes the underlying quiz state.
func (s *CheckScreen) Check() *quiz.Check { return s.check }

func (s *CheckScreen) KeyHints() []layout.KeyHint {
	if s.check.Verified() {
		label := "Next"
		if s.check.IsLast() {
			label = "Finish"
		}
		return []layout.KeyHint{{Key: "Enter", Description: label}, {Key: "Esc", Description: "Abandon"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Verify"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *CheckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.check.Done() {
		return s, nil
	}

	if kmsg.String() != "enter" {
		if !s.check.Verified() {
			s.choice, _ = s.choice.Update(kmsg)
			_ = s.check.Select(s.choice.Selected)
		}
		return s, nil
	}

	if !s.check.Verified() {
		if _, err := s.check.Verify(); err != nil {
			return s, nil
		}
		s.choice.Submit()
		return s, nil
	}

	if err := s.check.Next(); err != nil {
		return s, nil
	}
	if !s.check.Done() {
		s.loadQuestion()
		return s, nil
	}
	return s, s.finish()
}

// finish reports the score and swaps in the result screen.
func (s *CheckScreen) finish() tea.Cmd {
	done := screen.LessonCompletedMsg{LessonID: s.lesson.ID, Score: s.check.Score()}
	result := summary.New(summary.Result{
		LessonTitle: s.lesson.Title,
		Questions:   s.check.Questions(),
		Answers:     s.check.Answers(),
		Score:       s.check.Score(),
	})
	return tea.Batch(
		func() tea.Msg { return done },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: result} },
	)
}

func (s *CheckScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	head := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · question %d of %d", s.lesson.Title, s.check.Index()+1, s.check.Len()))
	dots := make([]string, s.check.Len())
	answers := s.check.Answers()
	for i := range dots {
		switch {
		case i < len(answers) && answers[i].Correct:
			dots[i] = theme.Correct.Render("●")
		case i < len(answers):
			dots[i] = theme.Incorrect.Render("●")
		default:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}

	body := s.choice.View()
	if s.check.Verified() {
		verdict := theme.Incorrect.Render("✗ Not quite.")
		if s.choice.IsCorrect() {
			verdict = theme.Correct.Render("✓ Correct!")
		}
		body += "\n" + verdict
		if exp := s.check.Current().Explanation; exp != "" {
			body += "\n" + lipgloss.NewStyle().Foreground(theme.Text).Width(cw-4).Render(exp)
		}
	}

	content := head + "  " + strings.Join(dots, " ") + "\n\n" + components.Card(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
