package app

import (
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
)

// MonitorRequest configures one progress-monitoring run.
type MonitorRequest struct {
	// AsOf is the evaluation date. Nil means now (UTC).
	AsOf *time.Time
	// Since limits the evidence snapshot to records captured on or after
	// this time. Nil means the full history.
	Since *time.Time
	// ActivityScope restricts the chart to the named activity IDs.
	// Empty means all activities.
	ActivityScope []string
}

func NewMonitorRequest() MonitorRequest {
	return MonitorRequest{}
}

// MonitorSummary counts activities per schedule state.
type MonitorSummary struct {
	CountsTotal                int
	CountsCompletedDelayed     int
	CountsCompletedOnTime      int
	CountsOnSchedulePending    int
	CountsBehindNotStarted     int
	CountsOnScheduleNotStarted int
}

// MonitorResponse is the complete result of one run: the renderable rows
// plus everything the caller must be told about (skipped evidence,
// warnings). A run either produces this in full or fails outright on a
// malformed schedule.
type MonitorResponse struct {
	GeneratedAt time.Time
	AsOf        time.Time
	Rows        []domain.ChartRow
	// Skipped holds evidence records that referenced node IDs absent from
	// the schedule. They are reported, not silently dropped.
	Skipped  []domain.EvidenceRecord
	Warnings []string
	Summary  MonitorSummary
}
