package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
	"homework_tracker/pkg/logger"
)

const defaultBatchConcurrency = 4

type ReportAggregator struct {
	homework    HomeworkSource
	submissions SubmissionStore
	reports     ReportStore
	clock       Clock
	concurrency int
	logger      *logger.Logger
}

func NewReportAggregator(
	homework HomeworkSource,
	submissions SubmissionStore,
	reports ReportStore,
	clock Clock,
	concurrency int,
	log *logger.Logger,
) *ReportAggregator {
	if clock == nil {
		clock = SystemClock{}
	}
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &ReportAggregator{
		homework:    homework,
		submissions: submissions,
		reports:     reports,
		clock:       clock,
		concurrency: concurrency,
		logger:      log,
	}
}

// Aggregate computes and stores a new snapshot. Earlier snapshots for the
// same student and window are left untouched.
func (a *ReportAggregator) Aggregate(
	ctx context.Context,
	studentID, classID uuid.UUID,
	window domain.ReportWindow,
) (*domain.Report, error) {
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: report window must be non-empty", errdefs.ErrValidation)
	}

	// deactivated homework no longer accepts submissions, so it is not assigned work
	homework, err := a.homework.ListByFilter(ctx, domain.HomeworkFilter{
		ClassID:    classID,
		DueFrom:    window.From,
		DueUntil:   window.To,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list homework: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(homework))
	for _, h := range homework {
		ids = append(ids, h.ID)
	}

	var submissions []*domain.Submission
	if len(ids) > 0 {
		submissions, err = a.submissions.ListByStudent(ctx, studentID, ids)
		if err != nil {
			return nil, fmt.Errorf("list submissions: %w", err)
		}
	}

	report := domain.BuildReport(studentID, classID, window, homework, submissions)

	report.ID, err = uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}
	report.GeneratedAt = a.clock.Now().UTC()

	if err := a.reports.Save(ctx, &report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	return &report, nil
}

// AggregateBatch builds reports for many students. A failing student is
// logged and reported in the returned error; the others still complete.
func (a *ReportAggregator) AggregateBatch(
	ctx context.Context,
	classID uuid.UUID,
	studentIDs []uuid.UUID,
	window domain.ReportWindow,
) ([]*domain.Report, error) {
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: report window must be non-empty", errdefs.ErrValidation)
	}

	var (
		mu      sync.Mutex
		reports = make([]*domain.Report, 0, len(studentIDs))
		errs    error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for _, studentID := range studentIDs {
		g.Go(func() error {
			report, err := a.Aggregate(gctx, studentID, classID, window)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("student %s: %w", studentID, err))
				a.logger.ErrorContext(ctx, "report aggregation failed",
					zap.String("student_id", studentID.String()),
					zap.String("class_id", classID.String()),
					zap.Error(err),
				)
				return nil
			}
			reports = append(reports, report)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, errs
}

func (a *ReportAggregator) History(ctx context.Context, studentID uuid.UUID) ([]*domain.Report, error) {
	return a.reports.ListByStudent(ctx, studentID)
}
