package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pmakowski/twinsight/internal/app"
	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/progress"
)

type monitorService struct {
	graph GraphSource
}

func NewMonitorService(graph GraphSource) MonitorService {
	return &monitorService{graph: graph}
}

// Run performs one synchronous monitoring pass: snapshot the schedule and
// evidence, aggregate, classify, and build chart rows. The computation is
// read-only over its inputs and returns a fresh response, so concurrent
// runs are safe without locking.
func (s *monitorService) Run(ctx context.Context, req app.MonitorRequest) (*app.MonitorResponse, error) {
	now := time.Now().UTC()
	asOf := now
	if req.AsOf != nil {
		asOf = req.AsOf.UTC()
	}

	sched, err := s.graph.FetchSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}

	records, err := s.graph.FetchEvidence(ctx, req.Since)
	if err != nil {
		return nil, fmt.Errorf("fetching evidence: %w", err)
	}

	aggregates, skipped := progress.Aggregate(sched, records)

	statuses := make(map[string]domain.ProgressStatus, sched.Len())
	for _, n := range sched.Traverse() {
		statuses[n.ID] = progress.Classify(n, aggregates[n.ID], asOf)
	}

	rows := progress.BuildChartRows(sched, aggregates, statuses, asOf)
	rows = filterRowsByScope(rows, req.ActivityScope)

	resp := &app.MonitorResponse{
		GeneratedAt: now,
		AsOf:        asOf,
		Rows:        rows,
		Skipped:     skipped,
		Summary:     buildSummary(rows),
	}
	for _, r := range skipped {
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("evidence %s skipped: node %q not in schedule", r.ID, r.NodeID))
	}
	if sched.Len() == 0 {
		resp.Warnings = append(resp.Warnings, "schedule is empty; run import first")
	}
	return resp, nil
}

func filterRowsByScope(rows []domain.ChartRow, scope []string) []domain.ChartRow {
	if len(scope) == 0 {
		return rows
	}
	keep := make(map[string]bool, len(scope))
	for _, id := range scope {
		keep[id] = true
	}
	out := rows[:0]
	for _, r := range rows {
		if keep[r.ActivityID] {
			out = append(out, r)
		}
	}
	return out
}

func buildSummary(rows []domain.ChartRow) app.MonitorSummary {
	var sum app.MonitorSummary
	sum.CountsTotal = len(rows)
	for _, r := range rows {
		switch r.State {
		case domain.StateCompletedDelayed:
			sum.CountsCompletedDelayed++
		case domain.StateCompletedOnTime:
			sum.CountsCompletedOnTime++
		case domain.StateOnSchedulePending:
			sum.CountsOnSchedulePending++
		case domain.StateBehindNotStarted:
			sum.CountsBehindNotStarted++
		case domain.StateOnScheduleNotStarted:
			sum.CountsOnScheduleNotStarted++
		}
	}
	return sum
}
