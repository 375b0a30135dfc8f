package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/theme"
)

const titleFull = `█ █ █ █▀▀ █   █   █   ▄▀█ █▄▄
▀▄▀▄▀ ██▄ █▄▄ █▄▄ █▄▄ █▀█ █▄█`

const titleCompact = "W · E · L · L · L · A · B"

// stats is the progress summary shown on the dashboard.
type stats struct {
	percent        int
	lessonsDone    int
	lessonsTotal   int
	modulesDone    int
	modulesTotal   int
	modulesStarted int
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	sub := theme.Hint.Render("Drilling engineering study lab")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + sub)
}

// renderStatsBar renders the progress summary in a bordered box.
func renderStatsBar(s stats, cw int, compact bool) string {
	pct := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	done := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	mods := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			pct.Render(fmt.Sprintf("▰%d%%", s.percent)),
			done.Render(fmt.Sprintf("✔%d/%d", s.lessonsDone, s.lessonsTotal)),
			mods.Render(fmt.Sprintf("◆%d/%d", s.modulesDone, s.modulesTotal)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			pct.Render(fmt.Sprintf("▰ %d%% COMPLETE", s.percent)),
			done.Render(fmt.Sprintf("✔ %d/%d LESSONS", s.lessonsDone, s.lessonsTotal)),
			mods.Render(fmt.Sprintf("◆ %d/%d MODULES", s.modulesDone, s.modulesTotal)),
		)
	}

	bar := components.NewProgressBar("", float64(s.percent)/100, false, cw-6).View()

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line + "\n" + bar)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each item as a bordered button, or as plain lines when
// compact is set.
func renderMenu(items []string, selected int, cw int, compact bool) string {
	var rows []string
	for i, label := range items {
		switch {
		case compact && i == selected:
			rows = append(rows, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		case compact:
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+label))
		default:
			rows = append(rows, components.MenuButton(label, i == selected, buttonWidth))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable the advisor (see welllab --help)")
}

// renderRigBox renders the rig centered at the content width.
func renderRigBox(v RigVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderRig(v))
}
