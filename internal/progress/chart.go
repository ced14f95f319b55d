package progress

import (
	"fmt"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/schedule"
)

// BuildChartRows turns classified progress into the renderable row set: one
// row per activity in declared schedule order, each pairing the planned bar
// with the as-performed bar. Pure transform, no side effects.
func BuildChartRows(
	s *schedule.Schedule,
	aggregates map[string]domain.AggregatedProgress,
	statuses map[string]domain.ProgressStatus,
	asOf time.Time,
) []domain.ChartRow {
	activities := s.Activities()
	rows := make([]domain.ChartRow, 0, len(activities))

	for _, a := range activities {
		agg := aggregates[a.ID]
		status := statuses[a.ID]

		row := domain.ChartRow{
			ActivityID:          a.ID,
			Label:               a.Title,
			PlannedStart:        a.PlannedStart,
			PlannedEnd:          a.PlannedEnd,
			State:               status.State,
			Fraction:            agg.Fraction,
			DeltaDays:           status.DeltaDays,
			ProjectedCompletion: status.ProjectedCompletion,
		}

		// Actual bar falls back to the planned start when nothing has been
		// observed, and stays open at the evaluation date until finished.
		row.ActualStart = a.PlannedStart
		if agg.ActualStart != nil {
			row.ActualStart = *agg.ActualStart
		}
		if agg.ActualEnd != nil {
			row.ActualEnd = *agg.ActualEnd
		} else {
			row.ActualEnd = asOf
			row.ActualOpen = true
		}

		row.Overlay = overlayText(a.Title, agg, status)
		rows = append(rows, row)
	}
	return rows
}

// overlayText composes the caption drawn next to an activity's bars.
func overlayText(title string, agg domain.AggregatedProgress, status domain.ProgressStatus) string {
	projected := "N/A"
	if status.ProjectedCompletion != nil {
		projected = status.ProjectedCompletion.Format("2006-01-02")
	}
	return fmt.Sprintf("%s · %.0f%% · %+dd · proj %s", title, agg.Fraction*100, status.DeltaDays, projected)
}
