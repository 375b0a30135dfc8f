package home

import (
	"charm.land/lipgloss/v2"

	"github.com/welltegra/welllab/internal/ui/theme"
)

// RigVariant selects which rig art to display.
type RigVariant int

const (
	RigIdle     RigVariant = iota // Nothing completed yet
	RigDrilling                   // Some lessons completed
	RigComplete                   // Every lesson completed
)

const rigIdle = `   /\
  /||\
 /_||_\
|__||__|`

const rigDrilling = `   /\
  /||\
 /_||_\
|__||__|
   ||
   ▼`

const rigComplete = `  ✦/\✦
  /||\
 /_||_\
|__||__|
   ||
  ═╧═ TD`

// RigFor picks the variant for a completion percentage.
func RigFor(percent int) RigVariant {
	switch {
	case percent >= 100:
		return RigComplete
	case percent > 0:
		return RigDrilling
	default:
		return RigIdle
	}
}

// RenderRig returns the rig ASCII art for the given variant.
func RenderRig(v RigVariant) string {
	art := rigIdle
	fg := theme.TextDim

	switch v {
	case RigDrilling:
		art = rigDrilling
		fg = theme.Primary
	case RigComplete:
		art = rigComplete
		fg = theme.Success
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
