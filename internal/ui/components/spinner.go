package components

import (
	"charm.land/lipgloss/v2"

	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a minimal frame-cycling loading indicator. Screens drive
// it from their own tick messages via Advance.
type Spinner struct {
	frame int
}

// Advance moves the spinner to its next frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// View renders the spinner with a dim label after it.
func (s Spinner) View(label string) string {
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(spinnerFrames[s.frame]) +
		" " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
