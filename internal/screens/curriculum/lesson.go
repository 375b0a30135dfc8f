package curriculum

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/quiz"
	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/screens/knowledgecheck"
	"github.com/welltegra/welllab/internal/screens/lab"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// checkReadyMsg carries generated questions back to the lesson. request
// ties it to the screen that asked, so a reopened lesson drops results
// meant for an earlier instance.
type checkReadyMsg struct {
	lessonID  string
	request   string
	questions []quiz.Question
	err       error
}

// LessonScreen shows a lesson and launches its knowledge check.
type LessonScreen struct {
	svc    screen.Services
	module course.Module
	lesson course.Lesson

	offset   int
	rendered string
	renderW  int

	loading bool
	request string
	spinner components.Spinner
	errMsg  string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// NewLesson creates a reader for l.
func NewLesson(svc screen.Services, m course.Module, l course.Lesson) *LessonScreen {
	return &LessonScreen{svc: svc, module: m, lesson: l}
}

func (s *LessonScreen) Init() tea.Cmd { return nil }

func (s *LessonScreen) Title() string { return s.lesson.Title }

// Loading reports whether a knowledge check is being generated.
func (s *LessonScreen) Loading() bool { return s.loading }

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Knowledge check"},
	}
	if s.lesson.Lab != "" {
		hints = append(hints, layout.KeyHint{Key: "L", Description: "Open lab"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkReadyMsg:
		return s, s.handleCheck(msg)

	case components.SpinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.spinner.Tick()

	case tea.KeyMsg:
		if s.errMsg != "" {
			s.errMsg = ""
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			s.offset = max(s.offset-1, 0)
		case "down", "j":
			s.offset++
		case "enter":
			return s, s.startCheck()
		case "l":
			return s, s.openLab()
		}
	}
	return s, nil
}

// startCheck requests questions. Repeated presses while a request is in
// flight are ignored.
func (s *LessonScreen) startCheck() tea.Cmd {
	if s.loading {
		return nil
	}
	if !s.svc.AdvisorReady() {
		s.errMsg = "Knowledge checks need a generative model. Set an LLM API key and restart."
		return nil
	}
	s.loading = true
	s.request = uuid.NewString()
	svc, lesson, request := s.svc, s.lesson, s.request
	generate := func() tea.Msg {
		qs, err := svc.Advisor.KnowledgeCheck(svc.Context(), lesson.Title, lesson.Content)
		return checkReadyMsg{lessonID: lesson.ID, request: request, questions: qs, err: err}
	}
	return tea.Batch(generate, s.spinner.Tick())
}

func (s *LessonScreen) handleCheck(msg checkReadyMsg) tea.Cmd {
	if !s.loading || msg.lessonID != s.lesson.ID || msg.request != s.request {
		return nil
	}
	s.loading = false
	s.request = ""
	if msg.err != nil {
		s.svc.Log().Warn("knowledge check failed", zap.String("lesson", s.lesson.ID), zap.Error(msg.err))
		s.errMsg = screen.FailureText("generate the knowledge check", msg.err)
		return nil
	}
	check, err := knowledgecheck.New(s.lesson, msg.questions)
	if err != nil {
		s.svc.Log().Warn("knowledge check rejected", zap.String("lesson", s.lesson.ID), zap.Error(err))
		s.errMsg = screen.FailureText("generate the knowledge check", err)
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: check} }
}

func (s *LessonScreen) openLab() tea.Cmd {
	if s.lesson.Lab == "" {
		return nil
	}
	v, err := lab.Open(lab.Kind(s.lesson.Lab), s.svc)
	if err != nil {
		s.svc.Log().Error("open lab", zap.String("lab", s.lesson.Lab), zap.Error(err))
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: v} }
}

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			components.ErrorNotice(s.errMsg, width-8))
	}

	textW := min(width-4, 100)
	if s.rendered == "" || s.renderW != textW {
		s.rendered = components.Markdown(s.lesson.Content, textW)
		s.renderW = textW
	}

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		s.module.Title + " · " + s.lesson.Duration)
	status := s.statusLine()

	bodyH := max(height-4, 1)
	lines := strings.Split(s.rendered, "\n")
	s.offset = min(s.offset, max(len(lines)-bodyH, 0))
	visible := lines[s.offset:min(s.offset+bodyH, len(lines))]

	return lipgloss.NewStyle().Padding(0, 2).Render(
		meta + "\n\n" + strings.Join(visible, "\n") + "\n\n" + status)
}

func (s *LessonScreen) statusLine() string {
	if s.loading {
		return s.spinner.View("Generating knowledge check...")
	}
	if s.svc.Progress != nil {
		if score, ok := s.svc.Progress.Score(s.lesson.ID); ok {
			return theme.Correct.Render("✔ Completed") +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					fmt.Sprintf(" · last score %d · press Enter to retake", score))
		}
	}
	return theme.Hint.Render("Press Enter for a knowledge check")
}
