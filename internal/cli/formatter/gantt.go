package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pmakowski/twinsight/internal/app"
	"github.com/pmakowski/twinsight/internal/domain"
)

const (
	barBlock    = "█"
	planBlock   = "▒"
	axisBlock   = "·"
	minBarWidth = 10
)

// RenderGantt formats a monitor response as a dual-bar Gantt chart: per
// activity a grey planned bar over an actual bar colored by schedule state,
// all on a shared date axis, followed by a detail table, state counts and
// any skipped-evidence warnings.
func RenderGantt(resp *app.MonitorResponse, barWidth int) string {
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	if len(resp.Rows) == 0 {
		return RenderBox("Progress", Dim("No activities in schedule."))
	}

	axisStart, axisEnd := axisRange(resp)

	var b strings.Builder

	// Axis header: start date left-aligned, end date right-aligned under
	// the bar columns.
	labelWidth := maxLabelWidth(resp.Rows)
	startLabel := ShortDate(axisStart)
	endLabel := ShortDate(axisEnd)
	gap := barWidth - len(startLabel) - len(endLabel)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	b.WriteString(Dim(startLabel + strings.Repeat(" ", gap) + endLabel))
	b.WriteString("\n\n")

	for _, row := range resp.Rows {
		label := truncate(row.Label, labelWidth)

		planned := renderBar(axisStart, axisEnd, row.PlannedStart, row.PlannedEnd, barWidth, StyleDim, planBlock)
		actual := renderBar(axisStart, axisEnd, row.ActualStart, row.ActualEnd, barWidth, StateStyle(row.State), barBlock)

		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			padTo(Bold(label), labelWidth),
			planned,
			Dim(fmt.Sprintf("plan %s → %s", ShortDate(row.PlannedStart), ShortDate(row.PlannedEnd))),
		))
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			strings.Repeat(" ", labelWidth),
			actual,
			overlayStyled(row),
		))
	}

	b.WriteString("\n")
	b.WriteString(renderDetailTable(resp.Rows))

	b.WriteString("\n")
	b.WriteString(summaryLine(resp.Summary))
	b.WriteString("\n")

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("as of %s", ShortDate(resp.AsOf))))

	return RenderBox("Progress", b.String())
}

// axisRange finds the date span covering every planned and actual bar plus
// the evaluation date.
func axisRange(resp *app.MonitorResponse) (time.Time, time.Time) {
	start := resp.AsOf
	end := resp.AsOf
	for _, r := range resp.Rows {
		for _, t := range []time.Time{r.PlannedStart, r.ActualStart} {
			if t.Before(start) {
				start = t
			}
		}
		for _, t := range []time.Time{r.PlannedEnd, r.ActualEnd} {
			if t.After(end) {
				end = t
			}
		}
	}
	return domain.DateOnly(start), domain.DateOnly(end)
}

// renderBar draws one bar on the shared axis: block cells inside
// [start, end], dim axis dots outside.
func renderBar(axisStart, axisEnd, start, end time.Time, width int, style lipgloss.Style, block string) string {
	total := float64(domain.DaysBetween(axisStart, axisEnd))
	if total <= 0 {
		total = 1
	}
	cell := func(t time.Time) int {
		c := int(float64(domain.DaysBetween(axisStart, t)) / total * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c > width-1 {
			c = width - 1
		}
		return c
	}

	from, to := cell(start), cell(end)
	var b strings.Builder
	if from > 0 {
		b.WriteString(Dim(strings.Repeat(axisBlock, from)))
	}
	b.WriteString(style.Render(strings.Repeat(block, to-from+1)))
	if to < width-1 {
		b.WriteString(Dim(strings.Repeat(axisBlock, width-1-to)))
	}
	return b.String()
}

// overlayStyled composes the colored overlay: percent, delta, projection.
func overlayStyled(row domain.ChartRow) string {
	parts := []string{
		StateStyle(row.State).Render(Percent(row.Fraction)),
		DeltaStyled(row.DeltaDays),
		Dim("proj ") + ProjectedOrNA(row.ProjectedCompletion),
	}
	if row.ActualOpen && row.Fraction > 0 {
		parts = append(parts, Dim("running"))
	}
	return strings.Join(parts, Dim(" · "))
}

func renderDetailTable(rows []domain.ChartRow) string {
	headers := []string{"ACTIVITY", "STATE", "DONE", "DELTA", "PROJECTED"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			Bold(r.Label),
			StateIndicator(r.State),
			Percent(r.Fraction),
			DeltaStyled(r.DeltaDays),
			ProjectedOrNA(r.ProjectedCompletion),
		})
	}
	return RenderTable(headers, tableRows)
}

func summaryLine(sum app.MonitorSummary) string {
	parts := []string{
		StyleDarkRed.Render(fmt.Sprintf("%d done late", sum.CountsCompletedDelayed)),
		StyleDim.Render(fmt.Sprintf("%d done on time", sum.CountsCompletedOnTime)),
		StyleDarkGreen.Render(fmt.Sprintf("%d in progress", sum.CountsOnSchedulePending)),
		StyleLightRed.Render(fmt.Sprintf("%d behind", sum.CountsBehindNotStarted)),
		StyleLightGreen.Render(fmt.Sprintf("%d not started", sum.CountsOnScheduleNotStarted)),
	}
	return strings.Join(parts, Dim(", "))
}

func maxLabelWidth(rows []domain.ChartRow) int {
	w := 8
	for _, r := range rows {
		if lw := lipgloss.Width(r.Label); lw > w {
			w = lw
		}
	}
	if w > 24 {
		w = 24
	}
	return w
}

// truncate shortens s to at most max terminal cells, cutting on rune
// boundaries so multi-byte labels keep the columns aligned.
func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	if max < 1 {
		return ""
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > max-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}
