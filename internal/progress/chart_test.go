package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/schedule"
	"github.com/pmakowski/twinsight/internal/testutil"
)

func TestBuildChartRows_OneRowPerActivityInOrder(t *testing.T) {
	nodes := []domain.PlannedNode{
		testutil.NewPlannedNode("act2", domain.LevelActivity, nil, 5, 15, testutil.WithOrderIndex(1)),
		testutil.NewPlannedNode("act1", domain.LevelActivity, nil, 0, 10, testutil.WithOrderIndex(0)),
	}
	s := buildSchedule(t, nodes)
	asOf := testutil.Day(6)

	agg, _ := Aggregate(s, nil)
	statuses := make(map[string]domain.ProgressStatus)
	for _, n := range s.Traverse() {
		statuses[n.ID] = Classify(n, agg[n.ID], asOf)
	}

	rows := BuildChartRows(s, agg, statuses, asOf)
	require.Len(t, rows, 2)
	assert.Equal(t, "act1", rows[0].ActivityID)
	assert.Equal(t, "act2", rows[1].ActivityID)
}

func TestBuildChartRows_FallbacksForUnstartedWork(t *testing.T) {
	s := buildSchedule(t, testutil.SimpleSchedule())
	asOf := testutil.Day(4)

	agg, _ := Aggregate(s, nil)
	statuses := map[string]domain.ProgressStatus{
		"act1": Classify(mustNode(t, s, "act1"), agg["act1"], asOf),
	}

	rows := BuildChartRows(s, agg, statuses, asOf)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, testutil.Day(0), row.ActualStart, "actual bar falls back to planned start")
	assert.Equal(t, asOf, row.ActualEnd, "open bar ends at the evaluation date")
	assert.True(t, row.ActualOpen)
	assert.Contains(t, row.Overlay, "N/A", "undefined projection renders as N/A")
}

func TestBuildChartRows_FinishedWorkClosesTheBar(t *testing.T) {
	s := buildSchedule(t, testutil.SimpleSchedule())
	asOf := testutil.Day(12)
	records := []domain.EvidenceRecord{
		testutil.NewEvidence("task1", 2, 1.0, "scan"),
		testutil.NewEvidence("task2", 9, 1.0, "scan"),
	}

	agg, _ := Aggregate(s, records)
	statuses := map[string]domain.ProgressStatus{
		"act1": Classify(mustNode(t, s, "act1"), agg["act1"], asOf),
	}

	rows := BuildChartRows(s, agg, statuses, asOf)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, testutil.Day(2), row.ActualStart)
	assert.Equal(t, testutil.Day(9), row.ActualEnd)
	assert.False(t, row.ActualOpen)
	assert.Equal(t, domain.StateCompletedOnTime, row.State)
	assert.Contains(t, row.Overlay, "100%")
}

func TestBuildChartRows_OverlayCarriesDeltaAndProjection(t *testing.T) {
	s := buildSchedule(t, testutil.SimpleSchedule())
	asOf := testutil.Day(5)
	records := []domain.EvidenceRecord{
		testutil.NewEvidence("task1", 2, 0.8, "scan"),
	}

	agg, _ := Aggregate(s, records)
	statuses := map[string]domain.ProgressStatus{
		"act1": Classify(mustNode(t, s, "act1"), agg["act1"], asOf),
	}

	rows := BuildChartRows(s, agg, statuses, asOf)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Overlay, "40%")
	assert.Contains(t, rows[0].Overlay, "+5d")
	assert.Contains(t, rows[0].Overlay, "proj ")
	assert.NotContains(t, rows[0].Overlay, "N/A")
}

func mustNode(t *testing.T, s *schedule.Schedule, id string) domain.PlannedNode {
	t.Helper()
	n, ok := s.Node(id)
	require.True(t, ok)
	return n
}
