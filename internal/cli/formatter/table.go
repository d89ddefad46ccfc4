package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the padding between table columns.
const colGap = 2

// RenderTableWithFooter renders an aligned table with a header separator
// line and a bold footer row under a second separator. Columns are padded to
// the widest visible cell, ignoring ANSI sequences. A nil footer renders no
// footer section.
func RenderTableWithFooter(headers []string, rows [][]string, footer []string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows, footer)

	var b strings.Builder
	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = StyleHeader.Render(h)
	}
	writeRow(&b, widths, styledHeaders)
	writeSeparator(&b, widths)

	for _, row := range rows {
		writeRow(&b, widths, row)
	}

	if footer != nil {
		writeSeparator(&b, widths)
		styled := make([]string, len(footer))
		for i, cell := range footer {
			styled[i] = Bold(cell)
		}
		writeRow(&b, widths, styled)
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string, footer []string) []int {
	widths := make([]int, len(headers))
	measure := func(row []string) {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	measure(footer)
	return widths
}

func writeRow(b *strings.Builder, widths []int, row []string) {
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			pad := w - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
