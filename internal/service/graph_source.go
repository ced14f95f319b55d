package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/repository"
	"github.com/pmakowski/twinsight/internal/schedule"
)

// storeGraphSource serves schedule and evidence snapshots from the local
// store. Each fetch materializes a fresh snapshot, so concurrent monitor
// runs never share mutable state.
type storeGraphSource struct {
	nodes    repository.PlannedNodeRepo
	evidence repository.EvidenceRepo
}

// NewStoreGraphSource creates a GraphSource backed by the local store.
func NewStoreGraphSource(nodes repository.PlannedNodeRepo, evidence repository.EvidenceRepo) GraphSource {
	return &storeGraphSource{nodes: nodes, evidence: evidence}
}

func (g *storeGraphSource) FetchSchedule(ctx context.Context) (*schedule.Schedule, error) {
	rows, err := g.nodes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading planned nodes: %w", err)
	}
	nodes := make([]domain.PlannedNode, 0, len(rows))
	for _, r := range rows {
		nodes = append(nodes, *r)
	}
	s, err := schedule.Build(nodes)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (g *storeGraphSource) FetchEvidence(ctx context.Context, since *time.Time) ([]domain.EvidenceRecord, error) {
	var rows []*domain.EvidenceRecord
	var err error
	if since != nil {
		rows, err = g.evidence.ListSince(ctx, *since)
	} else {
		rows, err = g.evidence.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("loading evidence records: %w", err)
	}
	records := make([]domain.EvidenceRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, *r)
	}
	return records, nil
}
