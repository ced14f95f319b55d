package progress

import (
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/schedule"
)

// Aggregate derives per-node as-performed progress from an evidence set.
// It returns one AggregatedProgress per schedule node plus the evidence
// records that referenced unknown node IDs. Orphans are skipped, never
// fatal: upstream ingestion may lag the planned schedule, and one bad record
// must not block the whole report.
//
// The fold is pure: the same schedule and evidence always produce the same
// result, and adding evidence never lowers any node's fraction.
func Aggregate(s *schedule.Schedule, records []domain.EvidenceRecord) (map[string]domain.AggregatedProgress, []domain.EvidenceRecord) {
	byNode := make(map[string][]domain.EvidenceRecord)
	var skipped []domain.EvidenceRecord
	for _, r := range records {
		if !s.Contains(r.NodeID) {
			skipped = append(skipped, r)
			continue
		}
		byNode[r.NodeID] = append(byNode[r.NodeID], r)
	}

	out := make(map[string]domain.AggregatedProgress, s.Len())
	for _, n := range s.PostOrder() {
		if n.Level == domain.LevelAction {
			out[n.ID] = foldAction(n, byNode[n.ID])
			continue
		}
		out[n.ID] = foldChildren(n, s.Children(n.ID), out)
	}
	return out, skipped
}

// foldAction folds the evidence attached directly to a leaf action.
func foldAction(n domain.PlannedNode, records []domain.EvidenceRecord) domain.AggregatedProgress {
	agg := domain.AggregatedProgress{NodeID: n.ID}
	if len(records) == 0 {
		return agg
	}

	var sum float64
	var earliest, latest time.Time
	for i, r := range records {
		sum += r.Contribution
		if i == 0 || r.CapturedAt.Before(earliest) {
			earliest = r.CapturedAt
		}
		if i == 0 || r.CapturedAt.After(latest) {
			latest = r.CapturedAt
		}
	}

	agg.Fraction = min(1.0, sum)
	start := earliest
	agg.ActualStart = &start
	if agg.Fraction >= 1.0 {
		end := latest
		agg.ActualEnd = &end
	}
	return agg
}

// foldChildren combines child aggregates one level up. Fractions are
// weighted by planned duration in days; when every child has a zero-day
// duration the children weigh equally. A node with no children stays at
// fraction 0 with no timestamps.
func foldChildren(n domain.PlannedNode, children []domain.PlannedNode, acc map[string]domain.AggregatedProgress) domain.AggregatedProgress {
	agg := domain.AggregatedProgress{NodeID: n.ID}
	if len(children) == 0 {
		return agg
	}

	var totalWeight float64
	for _, c := range children {
		totalWeight += float64(c.PlannedDays())
	}
	equalWeights := totalWeight == 0

	var fraction float64
	allEnded := true
	var latestEnd time.Time
	for _, c := range children {
		child := acc[c.ID]

		w := float64(c.PlannedDays()) / totalWeight
		if equalWeights {
			w = 1.0 / float64(len(children))
		}
		fraction += child.Fraction * w

		if child.ActualStart != nil && (agg.ActualStart == nil || child.ActualStart.Before(*agg.ActualStart)) {
			start := *child.ActualStart
			agg.ActualStart = &start
		}
		if child.ActualEnd == nil {
			allEnded = false
		} else if child.ActualEnd.After(latestEnd) {
			latestEnd = *child.ActualEnd
		}
	}

	agg.Fraction = min(1.0, fraction)
	if allEnded {
		end := latestEnd
		agg.ActualEnd = &end
	}
	return agg
}
