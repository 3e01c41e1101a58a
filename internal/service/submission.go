package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
	"homework_tracker/pkg/keylock"
	"homework_tracker/pkg/logger"
)

type submissionKey struct {
	homeworkID uuid.UUID
	studentID  uuid.UUID
}

// SubmissionTracker owns submission state transitions and lateness.
type SubmissionTracker struct {
	homework    HomeworkSource
	submissions SubmissionStore
	publisher   EventPublisher
	locks       *keylock.Map[submissionKey]
	logger      *logger.Logger
}

func NewSubmissionTracker(
	homework HomeworkSource,
	submissions SubmissionStore,
	publisher EventPublisher,
	log *logger.Logger,
) *SubmissionTracker {
	return &SubmissionTracker{
		homework:    homework,
		submissions: submissions,
		publisher:   publisher,
		locks:       keylock.New[submissionKey](),
		logger:      log,
	}
}

// RecordSubmission creates or overwrites the single submission for the
// (homework, student) pair.
func (t *SubmissionTracker) RecordSubmission(
	ctx context.Context,
	homeworkID, studentID uuid.UUID,
	payload domain.SubmissionPayload,
	now time.Time,
) (*domain.Submission, error) {
	if payload.IsEmpty() {
		return nil, fmt.Errorf("%w: submission payload is empty", errdefs.ErrValidation)
	}

	homework, err := t.homework.GetHomework(ctx, homeworkID)
	if err != nil {
		return nil, fmt.Errorf("get homework %s: %w", homeworkID, err)
	}
	if !homework.IsActive {
		return nil, fmt.Errorf("%w: homework %s is deactivated", errdefs.ErrInvalidState, homeworkID)
	}

	unlock, err := t.locks.LockContext(ctx, submissionKey{homeworkID: homeworkID, studentID: studentID})
	if err != nil {
		return nil, fmt.Errorf("wait for submission lock: %w", err)
	}
	defer unlock()

	existing, err := t.submissions.Get(ctx, homeworkID, studentID)
	if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	now = now.UTC()
	submission := existing
	if submission == nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate UUID: %w", err)
		}
		submission = &domain.Submission{
			ID:         id,
			HomeworkID: homeworkID,
			StudentID:  studentID,
			CreatedAt:  now,
		}
	} else if submission.Status == domain.SubmissionStatusGraded {
		return nil, fmt.Errorf("%w: submission %s is already graded", errdefs.ErrInvalidState, submission.ID)
	}

	submission.Payload = payload
	submission.SubmittedAt = now
	submission.IsLate = domain.IsLate(now, homework.DueDate)
	submission.Status = domain.SubmissionStatusSubmitted
	if submission.IsLate {
		submission.Status = domain.SubmissionStatusLate
	}
	submission.EditedAt = now

	if err := t.submissions.Upsert(ctx, submission); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	t.publish(ctx, domain.NewSubmissionEvent(domain.EventKindSubmitted, submission, now))
	if !submission.IsLate {
		t.publish(ctx, domain.NewSubmissionEvent(domain.EventKindSubmittedOnTime, submission, now))
	}

	return submission, nil
}

// Grade moves a SUBMITTED or LATE submission to GRADED. Grading an already
// graded submission edits grade and feedback only.
func (t *SubmissionTracker) Grade(
	ctx context.Context,
	submissionID uuid.UUID,
	grade int,
	feedback *string,
	now time.Time,
) (*domain.Submission, error) {
	if !domain.ValidateGrade(grade) {
		return nil, fmt.Errorf("%w: grade %d outside [%d, %d]", errdefs.ErrValidation, grade, domain.GradeMin, domain.GradeMax)
	}

	found, err := t.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", submissionID, err)
	}

	unlock, err := t.locks.LockContext(ctx, submissionKey{homeworkID: found.HomeworkID, studentID: found.StudentID})
	if err != nil {
		return nil, fmt.Errorf("wait for submission lock: %w", err)
	}
	defer unlock()

	// re-read under the key lock
	submission, err := t.submissions.Get(ctx, found.HomeworkID, found.StudentID)
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", submissionID, err)
	}

	now = now.UTC()
	switch submission.Status {
	case domain.SubmissionStatusSubmitted, domain.SubmissionStatusLate:
		submission.Status = domain.SubmissionStatusGraded
		submission.GradedAt = &now
	case domain.SubmissionStatusGraded:
	case domain.SubmissionStatusNotSubmitted:
		return nil, fmt.Errorf("%w: submission %s was not submitted", errdefs.ErrInvalidState, submissionID)
	default:
		return nil, fmt.Errorf("%w: unknown status %q", errdefs.ErrInvalidState, submission.Status)
	}

	submission.Grade = &grade
	submission.Feedback = feedback
	submission.EditedAt = now

	if err := t.submissions.Upsert(ctx, submission); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	t.publish(ctx, domain.NewSubmissionEvent(domain.EventKindGraded, submission, now))

	return submission, nil
}

// Status defaults to NOT_SUBMITTED when no record exists.
func (t *SubmissionTracker) Status(ctx context.Context, homeworkID, studentID uuid.UUID) (domain.SubmissionStatus, error) {
	submission, err := t.submissions.Get(ctx, homeworkID, studentID)
	if errors.Is(err, errdefs.ErrNotFound) {
		return domain.SubmissionStatusNotSubmitted, nil
	}
	if err != nil {
		return "", fmt.Errorf("get submission: %w", err)
	}
	return submission.Status, nil
}

func (t *SubmissionTracker) publish(ctx context.Context, event domain.SubmissionEvent) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(ctx, event); err != nil {
		t.logger.ErrorContext(ctx, "failed to publish submission event",
			zap.String("event_id", event.ID.String()),
			zap.String("kind", string(event.Kind)),
			zap.String("submission_id", event.SubmissionID.String()),
			zap.Error(err),
		)
	}
}
