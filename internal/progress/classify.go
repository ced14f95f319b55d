package progress

import (
	"math"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
)

// Classify maps a planned node and its aggregated progress onto a schedule
// state, a signed day delta and an optional projected completion date,
// evaluated as of the given date. The rule set is total: every combination
// of fraction, timestamps and evaluation date lands in exactly one state.
func Classify(node domain.PlannedNode, prog domain.AggregatedProgress, asOf time.Time) domain.ProgressStatus {
	status := domain.ProgressStatus{NodeID: node.ID}

	// A node counts as finished only once it carries an end timestamp. An
	// interior node can reach fraction 1.0 from its weighted siblings while a
	// zero-weight child without evidence keeps the end open; such a node is
	// still pending.
	if prog.Complete() && prog.ActualEnd != nil {
		// Finished work: the delta compares the actual finish against the
		// plan (positive = finished early).
		status.DeltaDays = domain.DaysBetween(*prog.ActualEnd, node.PlannedEnd)
		if prog.ActualEnd.After(node.PlannedEnd) {
			status.State = domain.StateCompletedDelayed
		} else {
			status.State = domain.StateCompletedOnTime
		}
		return status
	}

	// Unfinished work: the delta is slack against the deadline
	// (positive = days remaining, negative = days overdue).
	status.DeltaDays = domain.DaysBetween(asOf, node.PlannedEnd)
	status.ProjectedCompletion = projectCompletion(prog, asOf)

	switch {
	case asOf.After(node.PlannedEnd):
		// Past the deadline the bucket is the same for zero and partial
		// progress; DeltaDays carries the magnitude.
		status.State = domain.StateBehindNotStarted
	case prog.Started():
		status.State = domain.StateOnSchedulePending
	default:
		status.State = domain.StateOnScheduleNotStarted
	}
	return status
}

// projectCompletion linearly extrapolates a finish date from the pace so
// far: actual start plus elapsed/fraction, rounded up to the next whole day.
// Returns nil when the projection is undefined (no start or zero progress);
// callers render that as "unknown" rather than failing the run.
func projectCompletion(prog domain.AggregatedProgress, asOf time.Time) *time.Time {
	if prog.ActualStart == nil || prog.Fraction <= 0 || prog.Fraction >= 1 {
		return nil
	}
	elapsed := asOf.Sub(*prog.ActualStart)
	if elapsed < 0 {
		return nil
	}
	totalDays := math.Ceil(elapsed.Hours() / 24 / prog.Fraction)
	projected := domain.DateOnly(*prog.ActualStart).AddDate(0, 0, int(totalDays))
	return &projected
}
