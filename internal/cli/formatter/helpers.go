package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
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

// FormatDelta renders a signed day count as "+3d" or "-2d"; zero is "±0d".
func FormatDelta(days int) string {
	if days == 0 {
		return "±0d"
	}
	return fmt.Sprintf("%+dd", days)
}

// DeltaStyled colors a delta by sign: behind in light red, ahead in dark green.
func DeltaStyled(days int) string {
	text := FormatDelta(days)
	switch {
	case days < 0:
		return StyleLightRed.Render(text)
	case days > 0:
		return StyleDarkGreen.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// ShortDate renders a date as YYYY-MM-DD.
func ShortDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ProjectedOrNA renders a projected completion date, or "N/A" dimmed when
// the projection is undefined.
func ProjectedOrNA(t *time.Time) string {
	if t == nil {
		return Dim("N/A")
	}
	return StyleFg.Render(ShortDate(*t))
}

// Percent renders a completion fraction as a right-aligned percentage.
func Percent(fraction float64) string {
	return fmt.Sprintf("%3.0f%%", fraction*100)
}

// padTo pads s with spaces to the given visible width, measuring through
// lipgloss so ANSI sequences do not skew the count.
func padTo(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad < 0 {
		pad = 0
	}
	return s + strings.Repeat(" ", pad)
}
