package domain

import "time"

// EvidenceRecord is one as-performed observation tied to a planned node.
// Records are immutable once captured; the aggregator only reads them.
type EvidenceRecord struct {
	ID         string
	NodeID     string
	CapturedAt time.Time
	// Contribution is the fractional credit (0–1) this record proves
	// complete on its leaf action.
	Contribution float64
	// Source identifies the scan or field report the record came from.
	Source    string
	CreatedAt time.Time
}

// SessionLogEntry is one audit-log line written by the evidence lifecycle
// operations, kept so ingests and prunes can be reviewed and reversed.
type SessionLogEntry struct {
	ID        string
	Op        SessionOp
	Detail    string // JSON payload of the affected record
	CreatedAt time.Time
}
