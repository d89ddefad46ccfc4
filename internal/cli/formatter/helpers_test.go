package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
}

func TestRenderTableWithFooter_NilFooterAlignsColumns(t *testing.T) {
	out := RenderTableWithFooter([]string{"TAG", "MON"}, [][]string{
		{"work", "1h 30m"},
		{"deep study", ""},
	}, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	// Second column starts at the same visible offset on every row.
	col := strings.Index(lines[2], "1h 30m")
	assert.Equal(t, len("deep study")+colGap, col)
	assert.Equal(t, len("deep study")+colGap+lipgloss.Width("1h 30m"), lipgloss.Width(lines[2]))
}

func TestRenderTableWithFooter_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTableWithFooter(nil, [][]string{{"x"}}, nil))
}

func TestRenderTableWithFooter(t *testing.T) {
	out := RenderTableWithFooter([]string{"A", "B"}, [][]string{{"1", "2"}}, []string{"Total", "3"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[4], "Total")
	assert.Contains(t, lines[3], "─")
}

func TestTagBadge(t *testing.T) {
	assert.Contains(t, TagBadge("work"), "work")
	assert.Contains(t, TagBadge(""), "-")
}

func TestMinutesOrDash(t *testing.T) {
	assert.Equal(t, "1h 30m", MinutesOrDash(90))
	assert.Contains(t, MinutesOrDash(0), "-")
}
