package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/amorasol/weekplan/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, user_id, title, difficulty, estimated_min, priority,
		status, kanban_column, deadline, deleted_at, archived_at, created_at, updated_at`

// taskColumnsAliased is the same column list prefixed with "t." for join queries.
const taskColumnsAliased = `t.id, t.user_id, t.title, t.difficulty, t.estimated_min, t.priority,
		t.status, t.kanban_column, t.deadline, t.deleted_at, t.archived_at, t.created_at, t.updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Difficulty,
		t.EstimatedMin,
		string(t.Priority),
		string(t.Status),
		string(t.KanbanColumn),
		nullableTimeToString(t.Deadline, dateLayout),
		nullableTimeToString(t.DeletedAt, time.RFC3339),
		nullableTimeToString(t.ArchivedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	if err := insertDependencies(ctx, tx, t.ID, t.Dependencies); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing task insert: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	deps, err := r.loadDependencies(ctx, []string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Dependencies = deps[t.ID]
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, userID string, includeDeleted bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	if !includeDeleted {
		query += ` AND deleted_at IS NULL AND archived_at IS NULL`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachDependencies(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tasks SET title = ?, difficulty = ?, estimated_min = ?, priority = ?,
		status = ?, kanban_column = ?, deadline = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`
	res, err := tx.ExecContext(ctx, query,
		t.Title,
		t.Difficulty,
		t.EstimatedMin,
		string(t.Priority),
		string(t.Status),
		string(t.KanbanColumn),
		nullableTimeToString(t.Deadline, dateLayout),
		nowUTC(),
		t.UserID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_dependencies WHERE task_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing task dependencies: %w", err)
	}
	if err := insertDependencies(ctx, tx, t.ID, t.Dependencies); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing task update: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) MarkDone(ctx context.Context, userID, id string) error {
	return r.exec(ctx,
		`UPDATE tasks SET status = 'done', kanban_column = 'done', updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		nowUTC(), userID, id)
}

func (r *SQLiteTaskRepo) Archive(ctx context.Context, userID, id string) error {
	now := nowUTC()
	return r.exec(ctx,
		`UPDATE tasks SET archived_at = ?, updated_at = ? WHERE user_id = ? AND id = ?`,
		now, now, userID, id)
}

func (r *SQLiteTaskRepo) SoftDelete(ctx context.Context, userID, id string) error {
	now := nowUTC()
	return r.exec(ctx,
		`UPDATE tasks SET deleted_at = ?, updated_at = ? WHERE user_id = ? AND id = ?`,
		now, now, userID, id)
}

// exec runs an UPDATE that must affect exactly one task row.
func (r *SQLiteTaskRepo) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQLiteTaskRepo) ListEligibleForWeek(ctx context.Context, userID string, weekStart time.Time) ([]domain.Task, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)

	// Priority desc means sacred before important; optional never qualifies.
	// Deadline asc with nulls last, then id for a deterministic fetch order.
	query := `SELECT ` + taskColumnsAliased + `
		FROM tasks t
		WHERE t.user_id = ?
		  AND t.priority IN ('sacred', 'important')
		  AND t.status = 'todo'
		  AND t.kanban_column = 'todo'
		  AND t.deleted_at IS NULL
		  AND t.archived_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM time_blocks b
			WHERE b.task_id = t.id AND b.user_id = t.user_id
			  AND b.date >= ? AND b.date < ?
		  )
		ORDER BY CASE t.priority WHEN 'sacred' THEN 0 ELSE 1 END,
			t.difficulty DESC,
			t.deadline IS NULL, t.deadline,
			t.id`

	rows, err := r.db.QueryContext(ctx, query,
		userID, weekStart.Format(dateLayout), weekEnd.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing eligible tasks: %w", err)
	}
	defer rows.Close()

	return r.collectWithDependencies(ctx, rows)
}

func (r *SQLiteTaskRepo) ListBlockedInWeek(ctx context.Context, userID string, weekStart time.Time) ([]domain.Task, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)

	query := `SELECT DISTINCT ` + taskColumnsAliased + `
		FROM tasks t
		JOIN time_blocks b ON b.task_id = t.id
		WHERE t.user_id = ?
		  AND b.user_id = t.user_id
		  AND b.date >= ? AND b.date < ?
		  AND t.deleted_at IS NULL
		  AND t.archived_at IS NULL
		ORDER BY t.id`

	rows, err := r.db.QueryContext(ctx, query,
		userID, weekStart.Format(dateLayout), weekEnd.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing tasks blocked in week: %w", err)
	}
	defer rows.Close()

	return r.collectWithDependencies(ctx, rows)
}

func (r *SQLiteTaskRepo) collectWithDependencies(ctx context.Context, rows *sql.Rows) ([]domain.Task, error) {
	ptrs, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachDependencies(ctx, ptrs); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, len(ptrs))
	for i, p := range ptrs {
		tasks[i] = *p
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) attachDependencies(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	deps, err := r.loadDependencies(ctx, ids)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		t.Dependencies = deps[t.ID]
	}
	return nil
}

func (r *SQLiteTaskRepo) loadDependencies(ctx context.Context, taskIDs []string) (map[string][]string, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(taskIDs)), ", ")
	args := make([]interface{}, len(taskIDs))
	for i, id := range taskIDs {
		args[i] = id
	}

	query := `SELECT task_id, depends_on_id FROM task_dependencies
		WHERE task_id IN (` + placeholders + `)
		ORDER BY task_id, depends_on_id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading task dependencies: %w", err)
	}
	defer rows.Close()

	deps := make(map[string][]string)
	for rows.Next() {
		var taskID, dependsOn string
		if err := rows.Scan(&taskID, &dependsOn); err != nil {
			return nil, fmt.Errorf("scanning dependency row: %w", err)
		}
		deps[taskID] = append(deps[taskID], dependsOn)
	}
	return deps, rows.Err()
}

func insertDependencies(ctx context.Context, tx *sql.Tx, taskID string, deps []string) error {
	for _, dep := range deps {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO task_dependencies (task_id, depends_on_id, created_at) VALUES (?, ?, ?)`,
			taskID, dep, nowUTC())
		if err != nil {
			return fmt.Errorf("inserting dependency %s -> %s: %w", taskID, dep, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var priority, status, column string
	var deadline, deletedAt, archivedAt sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Difficulty,
		&t.EstimatedMin,
		&priority,
		&status,
		&column,
		&deadline,
		&deletedAt,
		&archivedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.KanbanColumn = domain.KanbanColumn(column)
	t.Deadline = parseNullableTime(deadline, dateLayout)
	t.DeletedAt = parseNullableTime(deletedAt, time.RFC3339)
	t.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
