package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Statements are
// idempotent (CREATE ... IF NOT EXISTS) so the whole slice re-runs on every
// open; ALTER TABLE additions tolerate the duplicate-column error instead.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		title         TEXT NOT NULL,
		difficulty    INTEGER NOT NULL DEFAULT 3
		              CHECK(difficulty BETWEEN 1 AND 5),
		estimated_min INTEGER NOT NULL CHECK(estimated_min > 0),
		priority      TEXT NOT NULL
		              CHECK(priority IN ('sacred','important','optional')),
		status        TEXT NOT NULL DEFAULT 'todo'
		              CHECK(status IN ('inbox','todo','doing','done')),
		kanban_column TEXT NOT NULL DEFAULT 'todo'
		              CHECK(kanban_column IN ('inbox','todo','doing','done')),
		deadline      TEXT,
		deleted_at    TEXT,
		archived_at   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS task_dependencies (
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		created_at    TEXT NOT NULL,
		PRIMARY KEY (task_id, depends_on_id)
	)`,

	`CREATE TABLE IF NOT EXISTS time_blocks (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		date       TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		block_type TEXT NOT NULL
		           CHECK(block_type IN ('sacred','important','optional','buffer','rescue')),
		task_id    TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		task_title TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_time_blocks_user_date ON time_blocks(user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_time_blocks_task ON time_blocks(task_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
