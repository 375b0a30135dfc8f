// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/progress"
	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/screens/home"
	"github.com/welltegra/welllab/internal/screens/welcome"
	"github.com/welltegra/welllab/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Catalog *course.Catalog
	// Tracker is created empty when nil. Progress lives for the process only.
	Tracker *progress.Tracker
	// Advisor is nil when no LLM provider is configured.
	Advisor   *advisor.Service
	Logger    *zap.Logger
	SessionID string
}

// AppModel is the root Bubble Tea model. It owns the progress tracker;
// screens only ever read it.
type AppModel struct {
	router  *router.Router
	tracker *progress.Tracker
	catalog *course.Catalog
	logger  *zap.Logger
	width   int
	height  int
}

// newAppModel creates the model, starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	tracker := opts.Tracker
	if tracker == nil {
		tracker = progress.NewTracker()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := screen.Services{
		Catalog:   opts.Catalog,
		Progress:  tracker,
		Advisor:   opts.Advisor,
		Logger:    logger,
		SessionID: opts.SessionID,
	}
	start := welcome.New(func() screen.Screen { return home.New(svc) })
	return AppModel{
		router:  router.New(start),
		tracker: tracker,
		catalog: opts.Catalog,
		logger:  logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.LessonCompletedMsg:
		m.tracker.RecordQuizResult(msg.LessonID, msg.Score)
		m.logger.Info("lesson completed",
			zap.String("lesson", msg.LessonID),
			zap.Int("score", msg.Score),
			zap.Int("completion", m.completion()))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// completion is the header percentage, or -1 without a catalog.
func (m AppModel) completion() int {
	if m.catalog == nil {
		return -1
	}
	return m.tracker.CompletionPercent(m.catalog.AllLessonIDs())
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Active().Title(), m.completion(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return errors.New("app: no course catalog")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}
