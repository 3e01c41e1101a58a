package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
)

type ReminderRepository struct {
	db *sql.DB
}

func NewReminderRepository(db *sql.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Exists(ctx context.Context, key domain.ReminderKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reminders
			WHERE homework_id = $1 AND student_id = $2 AND offset_seconds = $3
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, key.HomeworkID, key.StudentID, offsetSeconds(key.Offset)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reminder: %w", err)
	}
	return exists, nil
}

// InsertIfAbsent relies on the unique (homework_id, student_id, offset_seconds)
// constraint, so concurrent sweeps cannot both insert.
func (r *ReminderRepository) InsertIfAbsent(ctx context.Context, reminder *domain.Reminder) (bool, error) {
	query := `
		INSERT INTO reminders (id, homework_id, student_id, offset_seconds, fired_at, is_read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		ON CONFLICT (homework_id, student_id, offset_seconds) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.HomeworkID,
		reminder.StudentID,
		offsetSeconds(reminder.Offset),
		reminder.FiredAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert reminder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

func (r *ReminderRepository) ListUnread(ctx context.Context, studentID uuid.UUID) ([]*domain.Reminder, error) {
	query := `
		SELECT id, homework_id, student_id, offset_seconds, fired_at, is_read
		FROM reminders
		WHERE student_id = $1 AND NOT is_read
		ORDER BY fired_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*domain.Reminder
	for rows.Next() {
		var (
			rem     domain.Reminder
			seconds int64
		)
		if err := rows.Scan(&rem.ID, &rem.HomeworkID, &rem.StudentID, &seconds, &rem.FiredAt, &rem.IsRead); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		rem.Offset = time.Duration(seconds) * time.Second
		rem.FiredAt = rem.FiredAt.UTC()
		reminders = append(reminders, &rem)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return reminders, nil
}

func (r *ReminderRepository) MarkRead(ctx context.Context, id, studentID uuid.UUID) error {
	query := `UPDATE reminders SET is_read = TRUE WHERE id = $1 AND student_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, studentID)
	if err != nil {
		return fmt.Errorf("failed to mark reminder read: %w", err)
	}

	return expectRow(result)
}

func offsetSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
