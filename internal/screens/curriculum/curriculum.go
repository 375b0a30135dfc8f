// Package curriculum lets the learner browse modules and read lessons.
package curriculum

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/progress"
	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// CurriculumScreen lists the modules with their completion status.
type CurriculumScreen struct {
	svc     screen.Services
	modules []course.Module
	menu    components.Menu
}

var _ screen.Screen = (*CurriculumScreen)(nil)

// New creates the module list.
func New(svc screen.Services) *CurriculumScreen {
	var modules []course.Module
	if svc.Catalog != nil {
		modules = svc.Catalog.Modules()
	}
	items := make([]components.MenuItem, len(modules))
	for i, m := range modules {
		items[i] = components.MenuItem{
			Label: fmt.Sprintf("%d. %s", i+1, m.Title),
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: NewModule(svc, m)} }
			},
		}
	}
	return &CurriculumScreen{svc: svc, modules: modules, menu: components.NewMenu(items)}
}

func (c *CurriculumScreen) Init() tea.Cmd { return nil }

func (c *CurriculumScreen) Title() string { return "Curriculum" }

func (c *CurriculumScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CurriculumScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if len(c.modules) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No course catalog loaded."))
	}

	// Badges are refreshed on every render; progress changes while this
	// screen sits lower in the stack.
	for i, m := range c.modules {
		c.menu.Items[i].Badge = statusBadge(c.svc.Progress, m)
	}

	head := theme.Title.Width(cw).Render("Curriculum")
	sub := theme.Subtitle.Width(cw).Render(fmt.Sprintf("%d modules", len(c.modules)))
	body := c.menu.View()
	if sel := c.menu.Selected; sel >= 0 && sel < len(c.modules) {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-4).
			Render(c.modules[sel].Objective)
	}
	content := head + "\n" + sub + "\n\n" + components.Card(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// statusBadge renders "[3/4] in progress" style badges.
func statusBadge(p progress.Reader, m course.Module) string {
	ids := m.LessonIDs()
	if p == nil {
		return fmt.Sprintf("[0/%d]", len(ids))
	}
	done := 0
	for _, id := range ids {
		if p.IsCompleted(id) {
			done++
		}
	}
	badge := fmt.Sprintf("[%d/%d] %s", done, len(ids), p.ModuleStatus(ids))
	if p.IsModuleComplete(ids) {
		badge += " ★"
	}
	return badge
}
