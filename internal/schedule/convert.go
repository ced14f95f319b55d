package schedule

import (
	"fmt"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
)

// Convert flattens a validated schedule file into domain nodes, assigning
// parent references and per-sibling order indexes. Call ValidateFileSchema
// first; Convert assumes the dates parse.
func Convert(schema *FileSchema) ([]domain.PlannedNode, error) {
	now := time.Now().UTC()
	var nodes []domain.PlannedNode

	for ai, a := range schema.Activities {
		actNode, err := toNode(a.ID, nil, a.Title, domain.LevelActivity, ai, a.PlannedStart, a.PlannedEnd, now)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, actNode)

		for oi, op := range a.Operations {
			parentID := a.ID
			opNode, err := toNode(op.ID, &parentID, op.Title, domain.LevelOperation, oi, op.PlannedStart, op.PlannedEnd, now)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, opNode)

			for ti, act := range op.Actions {
				opID := op.ID
				leaf, err := toNode(act.ID, &opID, act.Title, domain.LevelAction, ti, act.PlannedStart, act.PlannedEnd, now)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, leaf)
			}
		}
	}

	return nodes, nil
}

func toNode(id string, parentID *string, title string, level domain.NodeLevel, order int, start, end string, now time.Time) (domain.PlannedNode, error) {
	startT, err := time.Parse(dateLayout, start)
	if err != nil {
		return domain.PlannedNode{}, fmt.Errorf("node %q: parsing planned_start: %w", id, err)
	}
	endT, err := time.Parse(dateLayout, end)
	if err != nil {
		return domain.PlannedNode{}, fmt.Errorf("node %q: parsing planned_end: %w", id, err)
	}
	return domain.PlannedNode{
		ID:           id,
		ParentID:     parentID,
		Title:        title,
		Level:        level,
		OrderIndex:   order,
		PlannedStart: startT,
		PlannedEnd:   endT,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
