package home

import (
	"charm.land/lipgloss/v2"

	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

// MascotVariant selects which flask art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default crimson
	MascotCelebrating                      // Stars — last quiz scored in the good tier
	MascotAlert                            // Exclamation — session average is in the poor tier
)

const flaskIdle = ` ╭───╮
 │ ◦ │
╱  ◦  ╲
│▒▒▒▒▒│
╰─────╯`

const flaskCelebrating = ` ╭───╮
★│ • │★
╱  •  ╲
│▒▒▒▒▒│
╰─────╯`

const flaskAlert = ` ╭───╮
 │ ◦ │ !
╱  ◦  ╲
│▒▒▒▒▒│
╰─────╯`

// RenderMascot returns the flask ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = flaskCelebrating
		fg = theme.Success
	case MascotAlert:
		art = flaskAlert
		fg = theme.Accent
	default:
		art = flaskIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
