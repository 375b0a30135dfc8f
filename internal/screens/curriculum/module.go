package curriculum

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// ModuleScreen lists a module's lessons.
type ModuleScreen struct {
	svc    screen.Services
	module course.Module
	menu   components.Menu
}

var _ screen.Screen = (*ModuleScreen)(nil)

// NewModule creates the lesson list for m.
func NewModule(svc screen.Services, m course.Module) *ModuleScreen {
	items := make([]components.MenuItem, len(m.Lessons))
	for i, l := range m.Lessons {
		items[i] = components.MenuItem{
			Label: l.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: NewLesson(svc, m, l)} }
			},
		}
	}
	return &ModuleScreen{svc: svc, module: m, menu: components.NewMenu(items)}
}

func (s *ModuleScreen) Init() tea.Cmd { return nil }

func (s *ModuleScreen) Title() string { return s.module.Title }

func (s *ModuleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModuleScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	for i, l := range s.module.Lessons {
		s.menu.Items[i].Badge = lessonBadge(s.svc, l)
	}

	head := theme.Title.Width(cw).Render(s.module.Title)
	obj := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).
		Render(s.module.Objective)
	content := head + "\n" + obj + "\n\n" + components.Card(s.menu.View(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func lessonBadge(svc screen.Services, l course.Lesson) string {
	badge := l.Duration
	if svc.Progress != nil {
		if score, ok := svc.Progress.Score(l.ID); ok {
			badge = fmt.Sprintf("✔ score %d · %s", score, badge)
		}
	}
	if l.Lab != "" {
		badge += " · lab"
	}
	return badge
}
