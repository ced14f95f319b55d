package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pmakowski/twinsight/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorDarkRed    = lipgloss.Color("#9d0006")
	ColorLightRed   = lipgloss.Color("#fb4934")
	ColorDarkGreen  = lipgloss.Color("#79740e")
	ColorLightGreen = lipgloss.Color("#b8bb26")
	ColorYellow     = lipgloss.Color("#fabd2f")
	ColorDim        = lipgloss.Color("#928374")
	ColorFg         = lipgloss.Color("#ebdbb2")
	ColorHeader     = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleDarkRed    = lipgloss.NewStyle().Foreground(ColorDarkRed)
	StyleLightRed   = lipgloss.NewStyle().Foreground(ColorLightRed)
	StyleDarkGreen  = lipgloss.NewStyle().Foreground(ColorDarkGreen)
	StyleLightGreen = lipgloss.NewStyle().Foreground(ColorLightGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateStyle returns the lipgloss style for a schedule state: delayed work
// in dark red, on-track pending work in dark green, overdue unfinished work
// in light red, not-yet-due work in light green. On-time completion carries
// no flag and renders dim.
func StateStyle(state domain.ScheduleState) lipgloss.Style {
	switch state {
	case domain.StateCompletedDelayed:
		return StyleDarkRed
	case domain.StateOnSchedulePending:
		return StyleDarkGreen
	case domain.StateBehindNotStarted:
		return StyleLightRed
	case domain.StateOnScheduleNotStarted:
		return StyleLightGreen
	default:
		return StyleDim
	}
}

// StateIndicator returns a colored state label such as "● BEHIND".
func StateIndicator(state domain.ScheduleState) string {
	switch state {
	case domain.StateCompletedDelayed:
		return StyleDarkRed.Render("● DONE LATE")
	case domain.StateCompletedOnTime:
		return StyleDim.Render("✔ DONE")
	case domain.StateOnSchedulePending:
		return StyleDarkGreen.Render("● IN PROGRESS")
	case domain.StateBehindNotStarted:
		return StyleLightRed.Render("● BEHIND")
	case domain.StateOnScheduleNotStarted:
		return StyleLightGreen.Render("○ NOT STARTED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
