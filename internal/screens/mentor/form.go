// Package mentor holds the generative advisor screens: the career mapper,
// the concept bridge and the skill audit.
package mentor

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/screens/placeholder"
	"github.com/welltegra/welllab/internal/ui/components"
	"github.com/welltegra/welllab/internal/ui/layout"
	"github.com/welltegra/welllab/internal/ui/theme"
)

// submitFunc runs one advisor call over the form values and returns
// markdown.
type submitFunc func(ctx context.Context, adv *advisor.Service, values []string) (string, error)

// resultMsg carries a finished advisor call. seq ties it to the request
// that produced it.
type resultMsg struct {
	seq      int
	markdown string
	err      error
}

// FormScreen collects inputs, calls the advisor and shows the result.
type FormScreen struct {
	svc    screen.Services
	title  string
	intro  string
	action string
	fields []field
	submit submitFunc

	focus int // -1 when no field has focus

	seq     int
	loading bool
	spinner components.Spinner
	notice  string

	result   string
	rendered string
	renderW  int
	offset   int
}

var (
	_ screen.Screen          = (*FormScreen)(nil)
	_ screen.KeyHintProvider = (*FormScreen)(nil)
	_ screen.InputCapturer   = (*FormScreen)(nil)
)

func newForm(svc screen.Services, title, intro, action string, submit submitFunc, fields ...field) *FormScreen {
	return &FormScreen{
		svc:    svc,
		title:  title,
		intro:  intro,
		action: action,
		fields: fields,
		submit: submit,
	}
}

func (f *FormScreen) Init() tea.Cmd { return f.setFocus(0) }

func (f *FormScreen) Title() string { return f.title }

// CapturingInput is true while a field is focused on the input form.
func (f *FormScreen) CapturingInput() bool {
	return f.focus >= 0 && f.result == "" && !f.loading && f.notice == ""
}

// Loading reports whether an advisor call is in flight.
func (f *FormScreen) Loading() bool { return f.loading }

// Result returns the markdown of the last successful call.
func (f *FormScreen) Result() string { return f.result }

// Notice returns the message currently blocking the screen, if any.
func (f *FormScreen) Notice() string { return f.notice }

func (f *FormScreen) KeyHints() []layout.KeyHint {
	switch {
	case f.notice != "":
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	case f.loading:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case f.result != "":
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "N", Description: "New query"},
			{Key: "Esc", Description: "Back"},
		}
	case f.focus < 0:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Edit"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Done editing"},
	}
}

func (f *FormScreen) setFocus(i int) tea.Cmd {
	for _, fl := range f.fields {
		fl.blur()
	}
	if i < 0 || i >= len(f.fields) {
		f.focus = -1
		return nil
	}
	f.focus = i
	return f.fields[i].focus()
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		f.handleResult(msg)
		return f, nil

	case components.SpinnerTickMsg:
		if !f.loading {
			return f, nil
		}
		f.spinner.Advance()
		return f, f.spinner.Tick()

	case tea.KeyMsg:
		if f.notice != "" {
			f.notice = ""
			return f, nil
		}
		if f.loading {
			return f, nil
		}
		if f.result != "" {
			return f, f.handleResultKey(msg)
		}
		return f, f.handleFormKey(msg)
	}

	if f.focus >= 0 {
		return f, f.fields[f.focus].update(msg)
	}
	return f, nil
}

func (f *FormScreen) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	n := len(f.fields)
	switch msg.String() {
	case "tab", "down":
		return f.setFocus((f.focus + 1) % n)
	case "shift+tab", "up":
		if f.focus <= 0 {
			return f.setFocus(n - 1)
		}
		return f.setFocus(f.focus - 1)
	case "enter":
		return f.start()
	case "esc":
		return f.setFocus(-1)
	}
	if f.focus >= 0 {
		return f.fields[f.focus].update(msg)
	}
	return nil
}

func (f *FormScreen) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		f.offset = max(f.offset-1, 0)
	case "down", "j":
		f.offset++
	case "n":
		f.result, f.rendered, f.offset = "", "", 0
		return f.setFocus(0)
	}
	return nil
}

// start validates the form and launches the advisor call.
func (f *FormScreen) start() tea.Cmd {
	values := make([]string, len(f.fields))
	for i, fl := range f.fields {
		if fl.missing() {
			f.notice = fmt.Sprintf("%s is required.", fl.label())
			return f.setFocus(i)
		}
		values[i] = fl.value()
	}
	if !f.svc.AdvisorReady() {
		f.notice = placeholder.NoAdvisorMessage
		return nil
	}

	f.setFocus(-1)
	f.loading = true
	f.seq++
	seq, svc, submit := f.seq, f.svc, f.submit
	call := func() tea.Msg {
		md, err := submit(svc.Context(), svc.Advisor, values)
		return resultMsg{seq: seq, markdown: md, err: err}
	}
	return tea.Batch(call, f.spinner.Tick())
}

func (f *FormScreen) handleResult(msg resultMsg) {
	if msg.seq != f.seq || !f.loading {
		return
	}
	f.loading = false
	if msg.err != nil {
		f.svc.Log().Warn("advisor request failed", zap.String("screen", f.title), zap.Error(msg.err))
		f.notice = screen.FailureText(f.action, msg.err)
		f.setFocus(0)
		return
	}
	f.result = msg.markdown
	f.rendered = ""
	f.offset = 0
}

func (f *FormScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if f.notice != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			components.ErrorNotice(f.notice, cw))
	}

	head := theme.Title.Render(f.title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(f.intro)

	if f.result != "" {
		return lipgloss.NewStyle().Padding(0, 2).Render(head + "\n\n" + f.resultView(cw, height-4))
	}

	rows := make([]string, len(f.fields))
	for i, fl := range f.fields {
		rows[i] = fl.view(i == f.focus)
	}
	body := strings.Join(rows, "\n\n")

	status := theme.Hint.Render("Press Enter to submit")
	if f.loading {
		status = f.spinner.View("Consulting the advisor...")
	}
	content := head + "\n\n" + components.Card(body, cw) + "\n\n" + status
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (f *FormScreen) resultView(width, height int) string {
	if f.rendered == "" || f.renderW != width {
		f.rendered = components.Markdown(f.result, width)
		f.renderW = width
	}
	lines := strings.Split(f.rendered, "\n")
	bodyH := max(height-2, 1)
	f.offset = min(f.offset, max(len(lines)-bodyH, 0))
	return strings.Join(lines[f.offset:min(f.offset+bodyH, len(lines))], "\n")
}
