package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Save(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (
			id, student_id, class_id, window_from, window_to,
			total_assigned, total_completed, completion_rate,
			on_time_submissions, late_submissions, average_score, generated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.StudentID,
		report.ClassID,
		report.Window.From.UTC(),
		report.Window.To.UTC(),
		report.TotalAssigned,
		report.TotalCompleted,
		report.CompletionRate,
		report.OnTimeSubmissions,
		report.LateSubmissions,
		report.AverageScore,
		report.GeneratedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", handleError(err))
	}
	return nil
}

func (r *ReportRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Report, error) {
	query := `
		SELECT id, student_id, class_id, window_from, window_to,
			total_assigned, total_completed, completion_rate,
			on_time_submissions, late_submissions, average_score, generated_at
		FROM reports
		WHERE student_id = $1
		ORDER BY generated_at
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		var rep domain.Report
		err := rows.Scan(
			&rep.ID,
			&rep.StudentID,
			&rep.ClassID,
			&rep.Window.From,
			&rep.Window.To,
			&rep.TotalAssigned,
			&rep.TotalCompleted,
			&rep.CompletionRate,
			&rep.OnTimeSubmissions,
			&rep.LateSubmissions,
			&rep.AverageScore,
			&rep.GeneratedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, &rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return reports, nil
}
