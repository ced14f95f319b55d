package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"planned_nodes", "evidence_records", "session_logs"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s must exist", table)
	}
}

func TestOpenDB_FileStoreReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "twinsight.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO session_logs (id, op, detail, created_at)
		VALUES ('log1', 'INGEST', '{}', '2026-03-01T00:00:00Z')`)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	database, err = OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM session_logs`).Scan(&count))
	assert.Equal(t, 1, count, "rows written before reopen must persist")
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; a second run must be a no-op.
	assert.NoError(t, Migrate(database))
}

func TestOpenDB_ForeignKeysEnabled(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var enabled int
	require.NoError(t, database.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestOpenDB_ParentDeleteCascades(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO planned_nodes
		(id, parent_id, title, level, order_index, planned_start, planned_end, created_at, updated_at)
		VALUES ('a', NULL, 'A', 'activity', 0, '2026-03-01', '2026-03-10', '2026-03-01T00:00:00Z', '2026-03-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO planned_nodes
		(id, parent_id, title, level, order_index, planned_start, planned_end, created_at, updated_at)
		VALUES ('o', 'a', 'O', 'operation', 0, '2026-03-01', '2026-03-10', '2026-03-01T00:00:00Z', '2026-03-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM planned_nodes WHERE id = 'a'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM planned_nodes`).Scan(&count))
	assert.Equal(t, 0, count)
}
