package domain

type NodeLevel string

const (
	LevelActivity  NodeLevel = "activity"
	LevelOperation NodeLevel = "operation"
	LevelAction    NodeLevel = "action"
)

// ValidNodeLevels is the canonical set of accepted node level strings.
var ValidNodeLevels = map[string]bool{
	"activity": true, "operation": true, "action": true,
}

// ChildLevel returns the level one step below l, or "" for leaf actions.
func ChildLevel(l NodeLevel) NodeLevel {
	switch l {
	case LevelActivity:
		return LevelOperation
	case LevelOperation:
		return LevelAction
	default:
		return ""
	}
}

type ScheduleState string

const (
	// StateCompletedDelayed marks work that finished after its planned end.
	StateCompletedDelayed ScheduleState = "completed_delayed"
	// StateCompletedOnTime marks work that finished on or before its planned
	// end. It is terminal and carries no schedule flag.
	StateCompletedOnTime ScheduleState = "completed_on_time"
	// StateOnSchedulePending marks unfinished work that has started and whose
	// planned end has not passed.
	StateOnSchedulePending ScheduleState = "on_schedule_pending"
	// StateBehindNotStarted marks unfinished work whose planned end has
	// passed, whether or not partial progress exists. DeltaDays carries the
	// magnitude of the slip.
	StateBehindNotStarted ScheduleState = "behind_not_started"
	// StateOnScheduleNotStarted marks work with no evidence and a planned end
	// still in the future.
	StateOnScheduleNotStarted ScheduleState = "on_schedule_not_started"
)

type SessionOp string

const (
	OpIngest SessionOp = "INGEST"
	OpPrune  SessionOp = "PRUNE"
)
