package schedule

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileSchema is the top-level JSON structure for a planned-schedule file.
type FileSchema struct {
	Schedule   ScheduleImport   `json:"schedule"`
	Activities []ActivityImport `json:"activities"`
}

// ScheduleImport carries file-level metadata.
type ScheduleImport struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
}

// ActivityImport defines an activity and its nested operations.
type ActivityImport struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	PlannedStart string            `json:"planned_start"`
	PlannedEnd   string            `json:"planned_end"`
	Operations   []OperationImport `json:"operations,omitempty"`
}

// OperationImport defines an operation and its nested actions.
type OperationImport struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	PlannedStart string         `json:"planned_start"`
	PlannedEnd   string         `json:"planned_end"`
	Actions      []ActionImport `json:"actions,omitempty"`
}

// ActionImport defines a leaf action.
type ActionImport struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	PlannedStart string `json:"planned_start"`
	PlannedEnd   string `json:"planned_end"`
}

// LoadFileSchema reads and parses a planned-schedule JSON file.
func LoadFileSchema(path string) (*FileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema FileSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing schedule file: %w", err)
	}
	return &schema, nil
}
