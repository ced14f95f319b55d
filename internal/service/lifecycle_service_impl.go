package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/repository"
)

// ScanReport is the JSON structure produced by the upstream scan pipeline.
type ScanReport struct {
	Source  string             `json:"source"`
	Records []ScanRecordImport `json:"records"`
}

// ScanRecordImport is one as-performed observation in a scan report.
type ScanRecordImport struct {
	NodeID       string  `json:"node_id"`
	CapturedAt   string  `json:"captured_at"`
	Contribution float64 `json:"contribution"`
	// Source overrides the report-level source for this record.
	Source string `json:"source,omitempty"`
}

type lifecycleService struct {
	nodes    repository.PlannedNodeRepo
	evidence repository.EvidenceRepo
	log      repository.SessionLogRepo
}

func NewLifecycleService(
	nodes repository.PlannedNodeRepo,
	evidence repository.EvidenceRepo,
	log repository.SessionLogRepo,
) LifecycleService {
	return &lifecycleService{nodes: nodes, evidence: evidence, log: log}
}

func (s *lifecycleService) Ingest(ctx context.Context, filePath string, forceUpdate bool) (*IngestResult, error) {
	report, err := loadScanReport(filePath)
	if err != nil {
		return nil, err
	}

	result := &IngestResult{}
	now := time.Now().UTC()

	for i, rec := range report.Records {
		source := rec.Source
		if source == "" {
			source = report.Source
		}
		if rec.NodeID == "" || source == "" {
			return nil, fmt.Errorf("records[%d]: node_id and source are required", i)
		}
		if rec.Contribution < 0 || rec.Contribution > 1 {
			return nil, fmt.Errorf("records[%d]: contribution %v out of range [0,1]", i, rec.Contribution)
		}
		capturedAt, err := time.Parse(time.RFC3339, rec.CapturedAt)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: parsing captured_at: %w", i, err)
		}

		existing, err := s.evidence.GetByNodeAndSource(ctx, rec.NodeID, source)
		switch {
		case err == nil:
			if !forceUpdate {
				result.Skipped++
				continue
			}
			existing.CapturedAt = capturedAt
			existing.Contribution = rec.Contribution
			if err := s.evidence.Update(ctx, existing); err != nil {
				return nil, err
			}
			if err := s.appendLog(ctx, domain.OpIngest, existing, now); err != nil {
				return nil, err
			}
			result.Updated++
		case errors.Is(err, repository.ErrNotFound):
			record := &domain.EvidenceRecord{
				ID:           uuid.NewString(),
				NodeID:       rec.NodeID,
				CapturedAt:   capturedAt,
				Contribution: rec.Contribution,
				Source:       source,
				CreatedAt:    now,
			}
			if err := s.evidence.Create(ctx, record); err != nil {
				return nil, err
			}
			if err := s.appendLog(ctx, domain.OpIngest, record, now); err != nil {
				return nil, err
			}
			result.Created++
		default:
			return nil, err
		}
	}

	return result, nil
}

func (s *lifecycleService) Prune(ctx context.Context, target PruneTarget) (*PruneResult, error) {
	levels := []domain.NodeLevel{target.Level}
	if target.All {
		levels = []domain.NodeLevel{domain.LevelActivity, domain.LevelOperation, domain.LevelAction}
	}

	result := &PruneResult{Deleted: make(map[domain.NodeLevel]int)}
	now := time.Now().UTC()

	for _, level := range levels {
		nodes, err := s.nodes.ListByLevel(ctx, level)
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			records, err := s.evidence.ListByNode(ctx, n.ID)
			if err != nil {
				return nil, err
			}
			for _, r := range records {
				if target.DryRun {
					result.Deleted[level]++
					continue
				}
				// Log before deleting so the full record survives for reversal.
				if err := s.appendLog(ctx, domain.OpPrune, r, now); err != nil {
					return nil, err
				}
				if err := s.evidence.Delete(ctx, r.ID); err != nil {
					return nil, err
				}
				result.Deleted[level]++
			}
		}
	}

	return result, nil
}

func (s *lifecycleService) appendLog(ctx context.Context, op domain.SessionOp, record *domain.EvidenceRecord, now time.Time) error {
	detail, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding session log detail: %w", err)
	}
	return s.log.Append(ctx, &domain.SessionLogEntry{
		ID:        uuid.NewString(),
		Op:        op,
		Detail:    string(detail),
		CreatedAt: now,
	})
}

func loadScanReport(path string) (*ScanReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var report ScanReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing scan report: %w", err)
	}
	return &report, nil
}
