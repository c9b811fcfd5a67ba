package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Field renders one "LABEL  value" metadata line with the label padded to width.
func Field(label string, width int, value string) string {
	pad := max(width-lipgloss.Width(label), 0)
	return StyleDim.Render(label+strings.Repeat(" ", pad)) + "  " + value
}
