package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Column widths are computed on visible width so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	gap := strings.Repeat(" ", colGap)

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = padTo(StyleHeader.Render(h), widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	b.WriteString("\n")

	for i, w := range widths {
		cells[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padTo(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
		b.WriteString("\n")
	}

	return b.String()
}
