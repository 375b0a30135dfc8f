package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/screens/curriculum"
	"github.com/welltegra/welllab/internal/screens/lab"
	"github.com/welltegra/welllab/internal/screens/mentor"
	"github.com/welltegra/welllab/internal/screens/placeholder"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
)

// Menu labels, in display order.
const (
	MenuCurriculum = "CURRICULUM"
	MenuLab        = "PHYSICS LAB"
	MenuCareer     = "CAREER MAPPER"
	MenuBridge     = "CONCEPT BRIDGE"
	MenuAudit      = "SKILL AUDIT"
	MenuExit       = "EXIT"
)

// HomeScreen is the dashboard: overall progress plus the main menu.
type HomeScreen struct {
	svc        screen.Services
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc screen.Services) *HomeScreen {
	menuLabels := []string{MenuCurriculum, MenuLab, MenuCareer, MenuBridge, MenuAudit, MenuExit}

	push := func(s func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s()} }
		}
	}
	advised := func(title string, s func() screen.Screen) func() tea.Cmd {
		if !svc.AdvisorReady() {
			return push(func() screen.Screen {
				return placeholder.New(title, placeholder.NoAdvisorMessage)
			})
		}
		return push(s)
	}

	items := []components.MenuItem{
		{Label: MenuCurriculum, Action: push(func() screen.Screen { return curriculum.New(svc) })},
		{Label: MenuLab, Action: push(func() screen.Screen { return lab.New(svc) })},
		{Label: MenuCareer, Action: advised("Career Mapper", func() screen.Screen { return mentor.NewCareer(svc) })},
		{Label: MenuBridge, Action: advised("Concept Bridge", func() screen.Screen { return mentor.NewBridge(svc) })},
		{Label: MenuAudit, Action: advised("Skill Audit", func() screen.Screen { return mentor.NewAudit(svc) })},
		{Label: MenuExit, Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		svc:        svc,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// stats reads the current progress. It is recomputed on every render so
// the dashboard reflects knowledge checks finished deeper in the stack.
func (h *HomeScreen) stats() stats {
	var s stats
	if h.svc.Catalog == nil || h.svc.Progress == nil {
		return s
	}
	all := h.svc.Catalog.AllLessonIDs()
	s.lessonsTotal = len(all)
	s.lessonsDone = h.svc.Progress.CompletedCount()
	s.percent = h.svc.Progress.CompletionPercent(all)
	for _, m := range h.svc.Catalog.Modules() {
		s.modulesTotal++
		if h.svc.Progress.IsModuleComplete(m.LessonIDs()) {
			s.modulesDone++
		}
	}
	return s
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100
	buttons := termHeight >= 44

	cw := components.ContentWidth(width)
	st := h.stats()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderRigBox(RigFor(st.percent), cw))
	}
	sections = append(sections, renderStatsBar(st, cw, compact))
	if !h.svc.AdvisorReady() {
		sections = append(sections, renderLLMBanner(cw))
	}
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, !buttons))

	return components.PanelFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
