package schedule

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateFileSchema checks a planned-schedule file for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateFileSchema(schema *FileSchema) []error {
	var errs []error

	if schema.Schedule.Name == "" {
		errs = append(errs, fmt.Errorf("schedule.name is required"))
	}

	seen := make(map[string]bool)
	for i, a := range schema.Activities {
		prefix := fmt.Sprintf("activities[%d]", i)
		errs = append(errs, validateNodeFields(prefix, a.ID, a.Title, a.PlannedStart, a.PlannedEnd, seen)...)

		for j, op := range a.Operations {
			opPrefix := fmt.Sprintf("%s.operations[%d]", prefix, j)
			errs = append(errs, validateNodeFields(opPrefix, op.ID, op.Title, op.PlannedStart, op.PlannedEnd, seen)...)

			for k, act := range op.Actions {
				actPrefix := fmt.Sprintf("%s.actions[%d]", opPrefix, k)
				errs = append(errs, validateNodeFields(actPrefix, act.ID, act.Title, act.PlannedStart, act.PlannedEnd, seen)...)
			}
		}
	}

	return errs
}

func validateNodeFields(prefix, id, title, start, end string, seen map[string]bool) []error {
	var errs []error

	if id == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	} else if seen[id] {
		errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, id))
	} else {
		seen[id] = true
	}

	if title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}

	startT, startErr := parseDate(prefix+".planned_start", start, &errs)
	endT, endErr := parseDate(prefix+".planned_end", end, &errs)
	if startErr == nil && endErr == nil && endT.Before(startT) {
		errs = append(errs, fmt.Errorf("%s: planned_end %q precedes planned_start %q", prefix, end, start))
	}

	return errs
}

func parseDate(field, value string, errs *[]error) (time.Time, error) {
	if value == "" {
		err := fmt.Errorf("%s is required", field)
		*errs = append(*errs, err)
		return time.Time{}, err
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value))
		return time.Time{}, err
	}
	return t, nil
}
