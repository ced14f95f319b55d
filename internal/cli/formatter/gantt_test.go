package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmakowski/twinsight/internal/app"
	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/testutil"
)

func sampleResponse() *app.MonitorResponse {
	return &app.MonitorResponse{
		GeneratedAt: testutil.Day(7),
		AsOf:        testutil.Day(7),
		Rows: []domain.ChartRow{
			{
				ActivityID:   "act1",
				Label:        "Foundation",
				PlannedStart: testutil.Day(0),
				PlannedEnd:   testutil.Day(10),
				ActualStart:  testutil.Day(2),
				ActualEnd:    testutil.Day(7),
				ActualOpen:   true,
				State:        domain.StateOnSchedulePending,
				Fraction:     0.6,
				DeltaDays:    3,
			},
			{
				ActivityID:          "act2",
				Label:               "Framing",
				PlannedStart:        testutil.Day(5),
				PlannedEnd:          testutil.Day(15),
				ActualStart:         testutil.Day(5),
				ActualEnd:           testutil.Day(7),
				ActualOpen:          true,
				State:               domain.StateOnScheduleNotStarted,
				Fraction:            0,
				DeltaDays:           8,
				ProjectedCompletion: nil,
			},
		},
		Summary: app.MonitorSummary{
			CountsTotal:                2,
			CountsOnSchedulePending:    1,
			CountsOnScheduleNotStarted: 1,
		},
	}
}

func TestRenderGantt_ContainsLabelsAndStates(t *testing.T) {
	out := RenderGantt(sampleResponse(), 40)
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Framing")
	assert.Contains(t, out, "IN PROGRESS")
	assert.Contains(t, out, "NOT STARTED")
	assert.Contains(t, out, "60%")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "2026-03-08", "as-of date in footer")
}

func TestRenderGantt_EmptySchedule(t *testing.T) {
	resp := &app.MonitorResponse{AsOf: testutil.Day(0)}
	out := RenderGantt(resp, 40)
	assert.Contains(t, out, "No activities")
}

func TestRenderGantt_WarningsRendered(t *testing.T) {
	resp := sampleResponse()
	resp.Warnings = []string{`evidence abc skipped: node "ghost" not in schedule`}
	out := RenderGantt(resp, 40)
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "ghost")
}

func TestRenderGantt_ClampsBarWidth(t *testing.T) {
	// Too-small widths must not panic or produce negative repeats.
	out := RenderGantt(sampleResponse(), 1)
	assert.NotEmpty(t, out)
}

func TestRenderBar_SpansAxis(t *testing.T) {
	bar := renderBar(testutil.Day(0), testutil.Day(10), testutil.Day(0), testutil.Day(10), 20, StyleDarkGreen, barBlock)
	assert.Equal(t, 20, strings.Count(bar, barBlock))
	assert.Zero(t, strings.Count(bar, axisBlock))
}

func TestRenderBar_PartialSpanPadsWithAxis(t *testing.T) {
	bar := renderBar(testutil.Day(0), testutil.Day(10), testutil.Day(5), testutil.Day(10), 21, StyleDarkGreen, barBlock)
	assert.Equal(t, 11, strings.Count(bar, barBlock))
	assert.Equal(t, 10, strings.Count(bar, axisBlock))
}

func TestRenderBar_OutOfRangeClamped(t *testing.T) {
	bar := renderBar(testutil.Day(0), testutil.Day(10), testutil.Day(-5), testutil.Day(20), 20, StyleDarkGreen, barBlock)
	assert.Equal(t, 20, strings.Count(bar, barBlock))
}

func TestTruncate_CutsOnRuneBoundaries(t *testing.T) {
	// "Fundação piloto" is 15 cells but 17 bytes; a byte cut would split the
	// ã or ç and misalign the label column.
	assert.Equal(t, "Fundaçã…", truncate("Fundação piloto", 8))
	assert.Equal(t, "Fundação", truncate("Fundação", 8))
	assert.Equal(t, "基礎…", truncate("基礎工事", 5), "wide runes count as two cells")
	assert.Equal(t, "", truncate("anything", 0))
}

func TestMaxLabelWidth_MeasuresCellsNotBytes(t *testing.T) {
	rows := []domain.ChartRow{{Label: "Fundação"}}
	assert.Equal(t, 8, maxLabelWidth(rows))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "±0d", FormatDelta(0))
	assert.Equal(t, "+3d", FormatDelta(3))
	assert.Equal(t, "-2d", FormatDelta(-2))
}

func TestProjectedOrNA(t *testing.T) {
	assert.Contains(t, ProjectedOrNA(nil), "N/A")
	assert.Contains(t, ProjectedOrNA(testutil.DayPtr(4)), "2026-03-05")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "  0%", Percent(0))
	assert.Equal(t, " 40%", Percent(0.4))
	assert.Equal(t, "100%", Percent(1))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGHEADER"}, [][]string{{"x", "y"}, {"longer-cell", "z"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, out, "LONGHEADER")
	assert.Contains(t, out, "longer-cell")
}

func TestStateIndicator_CoversAllStates(t *testing.T) {
	states := []domain.ScheduleState{
		domain.StateCompletedDelayed,
		domain.StateCompletedOnTime,
		domain.StateOnSchedulePending,
		domain.StateBehindNotStarted,
		domain.StateOnScheduleNotStarted,
	}
	seen := make(map[string]bool)
	for _, s := range states {
		label := StateIndicator(s)
		assert.NotEmpty(t, label)
		seen[label] = true
	}
	assert.Len(t, seen, len(states), "each state has a distinct label")
}
