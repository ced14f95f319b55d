package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds all schema statements, applied in order. Statements are
// idempotent (IF NOT EXISTS) so the set can be re-run against an existing
// database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS planned_nodes (
		id            TEXT PRIMARY KEY,
		parent_id     TEXT REFERENCES planned_nodes(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		level         TEXT NOT NULL CHECK(level IN ('activity','operation','action')),
		order_index   INTEGER NOT NULL DEFAULT 0,
		planned_start TEXT NOT NULL,
		planned_end   TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_planned_nodes_parent ON planned_nodes(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_planned_nodes_level ON planned_nodes(level)`,

	// node_id deliberately has no foreign key: evidence for nodes the
	// schedule does not know yet must stay storable (upstream data lag).
	`CREATE TABLE IF NOT EXISTS evidence_records (
		id           TEXT PRIMARY KEY,
		node_id      TEXT NOT NULL,
		captured_at  TEXT NOT NULL,
		contribution REAL NOT NULL CHECK(contribution >= 0.0 AND contribution <= 1.0),
		source       TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evidence_node ON evidence_records(node_id)`,
	`CREATE INDEX IF NOT EXISTS idx_evidence_captured ON evidence_records(captured_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_evidence_node_source ON evidence_records(node_id, source)`,

	`CREATE TABLE IF NOT EXISTS session_logs (
		id         TEXT PRIMARY KEY,
		op         TEXT NOT NULL CHECK(op IN ('INGEST','PRUNE')),
		detail     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_logs_op ON session_logs(op)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
