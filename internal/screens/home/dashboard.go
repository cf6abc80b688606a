package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ashwinkumar/biotutor/internal/ui/components"
	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const homeTitleFull = ` ██████╗ ██╗ ██████╗ ████████╗██╗   ██╗████████╗ ██████╗ ██████╗
 ██╔══██╗██║██╔═══██╗╚══██╔══╝██║   ██║╚══██╔══╝██╔═══██╗██╔══██╗
 ██████╔╝██║██║   ██║   ██║   ██║   ██║   ██║   ██║   ██║██████╔╝
 ██╔══██╗██║██║   ██║   ██║   ██║   ██║   ██║   ██║   ██║██╔══██╗
 ██████╔╝██║╚██████╔╝   ██║   ╚██████╔╝   ██║   ╚██████╔╝██║  ██║
 ╚═════╝ ╚═╝ ╚═════╝    ╚═╝    ╚═════╝    ╚═╝    ╚═════╝ ╚═╝  ╚═╝`

const homeTitleCompact = "B · I · O · T · U · T · O · R"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(homeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(homeTitleFull))
}

// renderStatsBar renders the current session stats in a bordered box
// matching content width.
func renderStatsBar(sessionName string, topicCount, quizCount, cw int, compact bool) string {
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	topicStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	quizStyle := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			nameStyle.Render(sessionName),
			topicStyle.Render(fmt.Sprintf("◆%d", topicCount)),
			quizStyle.Render(fmt.Sprintf("★%d", quizCount)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			nameStyle.Render(strings.ToUpper(sessionName)),
			topicStyle.Render(fmt.Sprintf("◆ %d TOPICS", topicCount)),
			quizStyle.Render(fmt.Sprintf("★ %d QUIZZES", quizCount)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else {
			buttons = append(buttons, components.MenuButton(label, i == selected, buttonWidth))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.Secondary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to start studying (see biotutor --help)")
}

// renderMascotBox renders the flask centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
