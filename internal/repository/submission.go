package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
)

const submissionColumns = `
	id, homework_id, student_id,
	text, attachment_file_id, audio_file_id, image_file_id, pdf_file_id,
	submitted_at, status, is_late, grade, feedback, graded_at,
	version, created_at, edited_at`

type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Get(ctx context.Context, homeworkID, studentID uuid.UUID) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE homework_id = $1 AND student_id = $2`

	submission, err := scanSubmission(r.db.QueryRowContext(ctx, query, homeworkID, studentID))
	if err != nil {
		return nil, handleError(err)
	}
	return submission, nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

	submission, err := scanSubmission(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, handleError(err)
	}
	return submission, nil
}

// Upsert inserts a new row when Version is 0 and otherwise updates the row
// only if its version is unchanged since it was read.
func (r *SubmissionRepository) Upsert(ctx context.Context, s *domain.Submission) error {
	if s.Version == 0 {
		return r.insert(ctx, s)
	}

	query := `
		UPDATE submissions
		SET text = $1, attachment_file_id = $2, audio_file_id = $3, image_file_id = $4, pdf_file_id = $5,
			submitted_at = $6, status = $7, is_late = $8, grade = $9, feedback = $10, graded_at = $11,
			edited_at = $12, version = version + 1
		WHERE id = $13 AND version = $14
	`
	result, err := r.db.ExecContext(ctx, query,
		s.Payload.Text,
		s.Payload.AttachmentFileID,
		s.Payload.AudioFileID,
		s.Payload.ImageFileID,
		s.Payload.PDFFileID,
		s.SubmittedAt.UTC(),
		s.Status,
		s.IsLate,
		s.Grade,
		s.Feedback,
		s.GradedAt,
		s.EditedAt.UTC(),
		s.ID,
		s.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errdefs.ErrConcurrencyConflict
	}

	s.Version++
	return nil
}

func (r *SubmissionRepository) insert(ctx context.Context, s *domain.Submission) error {
	query := `
		INSERT INTO submissions (` + submissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 1, $15, $16)
		ON CONFLICT (homework_id, student_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.HomeworkID,
		s.StudentID,
		s.Payload.Text,
		s.Payload.AttachmentFileID,
		s.Payload.AudioFileID,
		s.Payload.ImageFileID,
		s.Payload.PDFFileID,
		s.SubmittedAt.UTC(),
		s.Status,
		s.IsLate,
		s.Grade,
		s.Feedback,
		s.GradedAt,
		s.CreatedAt.UTC(),
		s.EditedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", handleError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errdefs.ErrConcurrencyConflict
	}

	s.Version = 1
	return nil
}

func (r *SubmissionRepository) ListByHomework(ctx context.Context, homeworkID uuid.UUID) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE homework_id = $1`

	return r.list(ctx, query, homeworkID)
}

func (r *SubmissionRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, homeworkIDs []uuid.UUID) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + `
		FROM submissions
		WHERE student_id = $1 AND homework_id = ANY($2::uuid[])
	`

	return r.list(ctx, query, studentID, uuidArray(homeworkIDs))
}

func (r *SubmissionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var submissions []*domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return submissions, nil
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(
		&s.ID,
		&s.HomeworkID,
		&s.StudentID,
		&s.Payload.Text,
		&s.Payload.AttachmentFileID,
		&s.Payload.AudioFileID,
		&s.Payload.ImageFileID,
		&s.Payload.PDFFileID,
		&s.SubmittedAt,
		&s.Status,
		&s.IsLate,
		&s.Grade,
		&s.Feedback,
		&s.GradedAt,
		&s.Version,
		&s.CreatedAt,
		&s.EditedAt,
	)
	if err != nil {
		return nil, err
	}
	s.SubmittedAt = s.SubmittedAt.UTC()
	return &s, nil
}
