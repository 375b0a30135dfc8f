package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/welltegra/welllab/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that are editing text. While
// CapturingInput reports true the app does not treat esc as back.
type InputCapturer interface {
	CapturingInput() bool
}

// LessonCompletedMsg reports a finished knowledge check. The app is the
// only place that turns it into a progress update.
type LessonCompletedMsg struct {
	LessonID string
	Score    int
}
