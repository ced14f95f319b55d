package service

import (
	"context"
	"time"

	"github.com/pmakowski/twinsight/internal/app"
	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/schedule"
)

// GraphSource is the read side of the digital-twin graph: idempotent,
// side-effect-free fetches of the planned schedule and the as-performed
// evidence snapshot.
type GraphSource interface {
	FetchSchedule(ctx context.Context) (*schedule.Schedule, error)
	FetchEvidence(ctx context.Context, since *time.Time) ([]domain.EvidenceRecord, error)
}

type MonitorService interface {
	Run(ctx context.Context, req app.MonitorRequest) (*app.MonitorResponse, error)
}

// ImportResult holds the outcome of a planned-schedule import.
type ImportResult struct {
	ScheduleName string
	NodeCount    int
	Replaced     bool
}

type ImportService interface {
	ImportSchedule(ctx context.Context, filePath string) (*ImportResult, error)
	ImportScheduleFromSchema(ctx context.Context, schema *schedule.FileSchema) (*ImportResult, error)
}

// IngestResult holds the outcome of an as-performed evidence ingest.
type IngestResult struct {
	Created int
	Updated int
	Skipped int
}

// PruneResult holds per-level deletion counts.
type PruneResult struct {
	Deleted map[domain.NodeLevel]int
}

// LifecycleService maintains the as-performed side of the store. Every
// mutation is mirrored into the session log for auditing and reversal.
type LifecycleService interface {
	// Ingest loads a scan-report file of evidence records. Records whose
	// (node, source) pair already exists are skipped unless forceUpdate.
	Ingest(ctx context.Context, filePath string, forceUpdate bool) (*IngestResult, error)
	// Prune deletes evidence attached to planned nodes of the target level;
	// LevelAll removes everything.
	Prune(ctx context.Context, target PruneTarget) (*PruneResult, error)
}

// PruneTarget selects the scope of a prune.
type PruneTarget struct {
	Level domain.NodeLevel
	All   bool
	// DryRun counts matching records without deleting or logging anything.
	DryRun bool
}
