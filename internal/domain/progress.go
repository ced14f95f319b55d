package domain

import "time"

// AggregatedProgress is the derived as-performed state of one planned node.
// Recomputed on every run; never persisted.
type AggregatedProgress struct {
	NodeID string
	// Fraction is completion in [0,1]. Weighted average of children for
	// interior nodes, capped evidence sum for actions.
	Fraction    float64
	ActualStart *time.Time
	// ActualEnd is set only when Fraction is 1.0.
	ActualEnd *time.Time
}

// Started reports whether any evidence exists under the node.
func (p AggregatedProgress) Started() bool {
	return p.ActualStart != nil
}

// Complete reports whether the node is fully done.
func (p AggregatedProgress) Complete() bool {
	return p.Fraction >= 1.0
}

// ProgressStatus is the per-node classification computed fresh per run from
// a PlannedNode and its AggregatedProgress.
type ProgressStatus struct {
	NodeID string
	State  ScheduleState
	// DeltaDays is positive when ahead of schedule, negative when behind.
	DeltaDays int
	// ProjectedCompletion is a linear extrapolation of the finish date.
	// Nil when no projection is defined (no start, or zero progress).
	ProjectedCompletion *time.Time
}

// ChartRow is one renderable activity row: a planned bar paired with an
// actual bar plus overlay text. Operations and actions are not charted.
type ChartRow struct {
	ActivityID   string
	Label        string
	PlannedStart time.Time
	PlannedEnd   time.Time
	ActualStart  time.Time
	ActualEnd    time.Time
	// ActualOpen is true when the actual bar ends at the evaluation date
	// because the work is still running.
	ActualOpen          bool
	State               ScheduleState
	Fraction            float64
	DeltaDays           int
	ProjectedCompletion *time.Time
	Overlay             string
}
