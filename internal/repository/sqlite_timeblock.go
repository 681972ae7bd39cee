package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amorasol/weekplan/internal/domain"
	"github.com/google/uuid"
)

const timeBlockColumns = `id, user_id, date, start_time, end_time, block_type, task_id, task_title, created_at`

// SQLiteTimeBlockRepo implements TimeBlockRepo using a SQLite database.
type SQLiteTimeBlockRepo struct {
	db *sql.DB
}

// NewSQLiteTimeBlockRepo creates a new SQLiteTimeBlockRepo.
func NewSQLiteTimeBlockRepo(db *sql.DB) *SQLiteTimeBlockRepo {
	return &SQLiteTimeBlockRepo{db: db}
}

func (r *SQLiteTimeBlockRepo) CreateBatch(ctx context.Context, blocks []domain.TimeBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO time_blocks (` + timeBlockColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, b := range blocks {
		id := b.ID
		if id == "" {
			id = uuid.NewString()
		}
		var taskID interface{}
		if b.TaskID != "" {
			taskID = b.TaskID
		}
		_, err := tx.ExecContext(ctx, query,
			id,
			b.UserID,
			b.Date.Format(dateLayout),
			b.StartTime.UTC().Format(time.RFC3339),
			b.EndTime.UTC().Format(time.RFC3339),
			string(b.BlockType),
			taskID,
			b.TaskTitle,
			nowUTC(),
		)
		if err != nil {
			return fmt.Errorf("inserting time block: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing time block batch: %w", err)
	}
	return nil
}

func (r *SQLiteTimeBlockRepo) ListForWeek(ctx context.Context, userID string, weekStart time.Time) ([]domain.TimeBlock, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)

	query := `SELECT ` + timeBlockColumns + ` FROM time_blocks
		WHERE user_id = ? AND date >= ? AND date < ?
		ORDER BY date, start_time, id`
	rows, err := r.db.QueryContext(ctx, query,
		userID, weekStart.Format(dateLayout), weekEnd.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing time blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.TimeBlock
	for rows.Next() {
		b, err := scanTimeBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning time block row: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (r *SQLiteTimeBlockRepo) DeleteForWeek(ctx context.Context, userID string, weekStart time.Time) error {
	weekEnd := weekStart.AddDate(0, 0, 7)

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM time_blocks WHERE user_id = ? AND date >= ? AND date < ?`,
		userID, weekStart.Format(dateLayout), weekEnd.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("deleting time blocks: %w", err)
	}
	return nil
}

func scanTimeBlock(row rowScanner) (domain.TimeBlock, error) {
	var b domain.TimeBlock
	var date, startTime, endTime, blockType, createdAt string
	var taskID, taskTitle sql.NullString

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&date,
		&startTime,
		&endTime,
		&blockType,
		&taskID,
		&taskTitle,
		&createdAt,
	)
	if err != nil {
		return domain.TimeBlock{}, err
	}

	b.Date, _ = time.Parse(dateLayout, date)
	b.StartTime, _ = time.Parse(time.RFC3339, startTime)
	b.EndTime, _ = time.Parse(time.RFC3339, endTime)
	b.BlockType = domain.BlockType(blockType)
	b.TaskID = taskID.String
	b.TaskTitle = taskTitle.String
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return b, nil
}
