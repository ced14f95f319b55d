package service

import (
	"context"
	"fmt"

	"github.com/pmakowski/twinsight/internal/repository"
	"github.com/pmakowski/twinsight/internal/schedule"
)

type importService struct {
	nodes repository.PlannedNodeRepo
}

func NewImportService(nodes repository.PlannedNodeRepo) ImportService {
	return &importService{nodes: nodes}
}

func (s *importService) ImportSchedule(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := schedule.LoadFileSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading schedule file: %w", err)
	}
	return s.ImportScheduleFromSchema(ctx, schema)
}

func (s *importService) ImportScheduleFromSchema(ctx context.Context, schema *schedule.FileSchema) (*ImportResult, error) {
	if errs := schedule.ValidateFileSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	nodes, err := schedule.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting schedule file: %w", err)
	}

	// Building up front surfaces structural problems (level nesting,
	// dangling parents) before anything touches the store.
	if _, err := schedule.Build(nodes); err != nil {
		return nil, err
	}

	existing, err := s.nodes.Count(ctx)
	if err != nil {
		return nil, err
	}
	replaced := existing > 0
	if replaced {
		if err := s.nodes.DeleteAll(ctx); err != nil {
			return nil, err
		}
	}

	for i := range nodes {
		if err := s.nodes.Create(ctx, &nodes[i]); err != nil {
			return nil, fmt.Errorf("creating planned node %q: %w", nodes[i].ID, err)
		}
	}

	return &ImportResult{
		ScheduleName: schema.Schedule.Name,
		NodeCount:    len(nodes),
		Replaced:     replaced,
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("schedule validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
