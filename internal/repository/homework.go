package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
)

const homeworkColumns = `id, teacher_id, class_id, subject, title, description, due_date, is_active, created_at, edited_at`

type HomeworkRepository struct {
	db *sql.DB
}

func NewHomeworkRepository(db *sql.DB) *HomeworkRepository {
	return &HomeworkRepository{db: db}
}

func (r *HomeworkRepository) Create(ctx context.Context, homework *domain.Homework) error {
	query := `
		INSERT INTO homework
			(id, teacher_id, class_id, subject, title, description, due_date, is_active, created_at, edited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		homework.ID,
		homework.TeacherID,
		homework.ClassID,
		homework.Subject,
		homework.Title,
		homework.Description,
		homework.DueDate.UTC(),
		homework.IsActive,
		homework.CreatedAt.UTC(),
		homework.EditedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create homework: %w", handleError(err))
	}

	return nil
}

func (r *HomeworkRepository) Update(ctx context.Context, homework *domain.Homework) error {
	query := `
		UPDATE homework
		SET subject = $1, title = $2, description = $3, due_date = $4, edited_at = $5
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		homework.Subject,
		homework.Title,
		homework.Description,
		homework.DueDate.UTC(),
		homework.EditedAt.UTC(),
		homework.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update homework: %w", err)
	}

	return expectRow(result)
}

func (r *HomeworkRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE homework SET is_active = FALSE, edited_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate homework: %w", err)
	}

	return expectRow(result)
}

func (r *HomeworkRepository) GetHomework(ctx context.Context, id uuid.UUID) (*domain.Homework, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homework WHERE id = $1`

	homework, err := scanHomework(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if isNotFound(err) {
			return nil, errdefs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get homework: %w", err)
	}

	return homework, nil
}

func (r *HomeworkRepository) ListActiveHomework(ctx context.Context, after, before time.Time) ([]*domain.Homework, error) {
	query := `SELECT ` + homeworkColumns + `
		FROM homework
		WHERE is_active AND due_date > $1 AND due_date <= $2
		ORDER BY due_date
	`

	return r.list(ctx, query, after.UTC(), before.UTC())
}

func (r *HomeworkRepository) ListByFilter(ctx context.Context, filter domain.HomeworkFilter) ([]*domain.Homework, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homework WHERE 1=1`
	var args []interface{}
	argsCount := 1

	if filter.ClassID != uuid.Nil {
		query += fmt.Sprintf(" AND class_id = $%d", argsCount)
		args = append(args, filter.ClassID)
		argsCount++
	}

	if !filter.DueFrom.IsZero() {
		query += fmt.Sprintf(" AND due_date >= $%d", argsCount)
		args = append(args, filter.DueFrom.UTC())
		argsCount++
	}

	if !filter.DueUntil.IsZero() {
		query += fmt.Sprintf(" AND due_date < $%d", argsCount)
		args = append(args, filter.DueUntil.UTC())
	}

	if filter.ActiveOnly {
		query += " AND is_active"
	}

	query += " ORDER BY due_date"

	return r.list(ctx, query, args...)
}

func (r *HomeworkRepository) ListStudents(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT student_id FROM class_students WHERE class_id = $1 ORDER BY student_id`

	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to query class students: %w", err)
	}
	defer rows.Close()

	var students []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return students, nil
}

func (r *HomeworkRepository) Enroll(ctx context.Context, classID, studentID uuid.UUID) error {
	query := `
		INSERT INTO class_students (class_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, classID, studentID); err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}
	return nil
}

func (r *HomeworkRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Homework, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query homework: %w", err)
	}
	defer rows.Close()

	var homework []*domain.Homework
	for rows.Next() {
		h, err := scanHomework(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan homework: %w", err)
		}
		homework = append(homework, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return homework, nil
}

func scanHomework(row rowScanner) (*domain.Homework, error) {
	var h domain.Homework
	err := row.Scan(
		&h.ID,
		&h.TeacherID,
		&h.ClassID,
		&h.Subject,
		&h.Title,
		&h.Description,
		&h.DueDate,
		&h.IsActive,
		&h.CreatedAt,
		&h.EditedAt,
	)
	if err != nil {
		return nil, err
	}
	h.DueDate = h.DueDate.UTC()
	return &h, nil
}

func expectRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errdefs.ErrNotFound
	}

	return nil
}
