package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmakowski/twinsight/internal/app"
	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/repository"
	"github.com/pmakowski/twinsight/internal/schedule"
	"github.com/pmakowski/twinsight/internal/testutil"
)

type monitorFixture struct {
	svc      MonitorService
	nodes    *repository.SQLitePlannedNodeRepo
	evidence *repository.SQLiteEvidenceRepo
}

func newMonitorFixture(t *testing.T) *monitorFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &monitorFixture{
		nodes:    repository.NewSQLitePlannedNodeRepo(database),
		evidence: repository.NewSQLiteEvidenceRepo(database),
	}
	f.svc = NewMonitorService(NewStoreGraphSource(f.nodes, f.evidence))
	return f
}

func (f *monitorFixture) seed(t *testing.T, nodes []domain.PlannedNode, records []domain.EvidenceRecord) {
	t.Helper()
	ctx := context.Background()
	for i := range nodes {
		require.NoError(t, f.nodes.Create(ctx, &nodes[i]))
	}
	for i := range records {
		require.NoError(t, f.evidence.Create(ctx, &records[i]))
	}
}

func asOfRequest(day int) app.MonitorRequest {
	req := app.NewMonitorRequest()
	req.AsOf = testutil.DayPtr(day)
	return req
}

func TestMonitor_RunEndToEnd(t *testing.T) {
	f := newMonitorFixture(t)
	f.seed(t, testutil.SimpleSchedule(), []domain.EvidenceRecord{
		testutil.NewEvidence("task1", 2, 1.0, "scan-a"),
		testutil.NewEvidence("task2", 6, 0.5, "scan-b"),
	})

	resp, err := f.svc.Run(context.Background(), asOfRequest(7))
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, "act1", row.ActivityID)
	assert.Equal(t, domain.StateOnSchedulePending, row.State)
	assert.InDelta(t, 0.75, row.Fraction, 1e-9)
	assert.Equal(t, 3, row.DeltaDays)
	assert.True(t, row.ActualOpen)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, 1, resp.Summary.CountsTotal)
	assert.Equal(t, 1, resp.Summary.CountsOnSchedulePending)
}

func TestMonitor_SkippedEvidenceBecomesWarning(t *testing.T) {
	f := newMonitorFixture(t)
	f.seed(t, testutil.SimpleSchedule(), []domain.EvidenceRecord{
		testutil.NewEvidence("ghost", 2, 0.5, "scan-a"),
	})

	resp, err := f.svc.Run(context.Background(), asOfRequest(3))
	require.NoError(t, err)
	require.Len(t, resp.Skipped, 1)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "ghost")
}

func TestMonitor_EmptyScheduleWarnsButSucceeds(t *testing.T) {
	f := newMonitorFixture(t)

	resp, err := f.svc.Run(context.Background(), app.NewMonitorRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "empty")
}

func TestMonitor_SinceFiltersEvidence(t *testing.T) {
	f := newMonitorFixture(t)
	f.seed(t, testutil.SimpleSchedule(), []domain.EvidenceRecord{
		testutil.NewEvidence("task1", 1, 1.0, "scan-a"),
		testutil.NewEvidence("task2", 6, 1.0, "scan-b"),
	})

	req := asOfRequest(7)
	req.Since = testutil.DayPtr(5)
	resp, err := f.svc.Run(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.InDelta(t, 0.5, resp.Rows[0].Fraction, 1e-9, "older evidence filtered out")
}

func TestMonitor_ActivityScope(t *testing.T) {
	f := newMonitorFixture(t)
	nodes := []domain.PlannedNode{
		testutil.NewPlannedNode("act1", domain.LevelActivity, nil, 0, 10, testutil.WithOrderIndex(0)),
		testutil.NewPlannedNode("act2", domain.LevelActivity, nil, 0, 10, testutil.WithOrderIndex(1)),
	}
	f.seed(t, nodes, nil)

	req := asOfRequest(3)
	req.ActivityScope = []string{"act2"}
	resp, err := f.svc.Run(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "act2", resp.Rows[0].ActivityID)
	assert.Equal(t, 1, resp.Summary.CountsTotal)
}

func TestMonitor_MalformedStoredScheduleFails(t *testing.T) {
	f := newMonitorFixture(t)
	ctx := context.Background()

	// An operation whose parent was never imported is a structural fault.
	node := testutil.NewPlannedNode("op1", domain.LevelOperation, nil, 0, 10)
	require.NoError(t, f.nodes.Create(ctx, &node))

	_, err := f.svc.Run(ctx, app.NewMonitorRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrMalformedSchedule)
}
