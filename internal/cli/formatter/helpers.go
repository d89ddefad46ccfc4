package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/luanbartole/kairos/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TagBadge renders a session tag in purple, or a dim dash when unset.
func TagBadge(tag string) string {
	if tag == "" || tag == "-" {
		return StyleDim.Render("-")
	}
	return StylePurple.Render(tag)
}

// MinutesOrDash formats minutes, showing a dim dash for zero.
func MinutesOrDash(min int) string {
	if s := domain.FormatMinutes(min); s != "" {
		return s
	}
	return Dim("-")
}
