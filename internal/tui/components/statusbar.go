package components

import (
	"fmt"

	"paysplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. month labels the viewed
// month on the right edge.
func RenderStatusBar(width int, month string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [h/l]month  [?]help  [q]uit"
	right := ""
	if month != "" {
		right = fmt.Sprintf("Viewing: %s ", month)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
