package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
	"homework_tracker/internal/service"
	"homework_tracker/internal/service/mocks"
	"homework_tracker/internal/testutils"
	"homework_tracker/pkg/logger"
)

var dueDate = time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)

func textPayload(s string) domain.SubmissionPayload {
	return domain.SubmissionPayload{Text: &s}
}

type trackerFixture struct {
	tracker     *service.SubmissionTracker
	homework    *testutils.HomeworkStore
	submissions *testutils.SubmissionStore
	publisher   *mocks.MockEventPublisher
	hw          *domain.Homework
}

func setupTracker(t *testing.T) *trackerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	homework := testutils.NewHomeworkStore()
	submissions := testutils.NewSubmissionStore()
	publisher := mocks.NewMockEventPublisher(ctrl)

	hw := homework.Put(domain.Homework{
		ID:        uuid.New(),
		TeacherID: uuid.New(),
		ClassID:   uuid.New(),
		Subject:   "Math",
		DueDate:   dueDate,
		IsActive:  true,
	})

	return &trackerFixture{
		tracker:     service.NewSubmissionTracker(homework, submissions, publisher, logger.NewNop()),
		homework:    homework,
		submissions: submissions,
		publisher:   publisher,
		hw:          hw,
	}
}

type eventKindMatcher domain.EventKind

func (m eventKindMatcher) Matches(x any) bool {
	e, ok := x.(domain.SubmissionEvent)
	return ok && e.Kind == domain.EventKind(m)
}

func (m eventKindMatcher) String() string {
	return "event of kind " + string(m)
}

func kindIs(kind domain.EventKind) gomock.Matcher {
	return eventKindMatcher(kind)
}

func TestRecordSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("On time", func(t *testing.T) {
		f := setupTracker(t)
		studentID := uuid.New()

		f.publisher.EXPECT().Publish(gomock.Any(), kindIs(domain.EventKindSubmitted)).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), kindIs(domain.EventKindSubmittedOnTime)).Return(nil)

		sub, err := f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("x=2"),
			time.Date(2024, 5, 10, 22, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, domain.SubmissionStatusSubmitted, sub.Status)
		assert.False(t, sub.IsLate)
		assert.Equal(t, int64(1), sub.Version)
	})

	t.Run("Late", func(t *testing.T) {
		f := setupTracker(t)
		studentID := uuid.New()

		f.publisher.EXPECT().Publish(gomock.Any(), kindIs(domain.EventKindSubmitted)).Return(nil)

		sub, err := f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("x=2"),
			time.Date(2024, 5, 11, 0, 1, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, domain.SubmissionStatusLate, sub.Status)
		assert.True(t, sub.IsLate)
	})

	t.Run("Resubmission overwrites", func(t *testing.T) {
		f := setupTracker(t)
		studentID := uuid.New()

		var ids []uuid.UUID
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e domain.SubmissionEvent) error {
				if e.Kind == domain.EventKindSubmitted {
					ids = append(ids, e.ID)
				}
				return nil
			}).AnyTimes()

		first, err := f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("draft"),
			time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		second, err := f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("final"),
			time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "final", *second.Payload.Text)
		assert.Equal(t, domain.SubmissionStatusLate, second.Status)
		assert.Equal(t, 1, f.submissions.Count())

		require.Len(t, ids, 2)
		assert.Equal(t, ids[0], ids[1], "resubmission must reuse the event id")
	})

	t.Run("Empty payload", func(t *testing.T) {
		f := setupTracker(t)

		_, err := f.tracker.RecordSubmission(ctx, f.hw.ID, uuid.New(), textPayload("   "), dueDate)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
		assert.Zero(t, f.submissions.Count())
	})

	t.Run("Unknown homework", func(t *testing.T) {
		f := setupTracker(t)

		_, err := f.tracker.RecordSubmission(ctx, uuid.New(), uuid.New(), textPayload("x"), dueDate)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("Deactivated homework", func(t *testing.T) {
		f := setupTracker(t)
		require.NoError(t, f.homework.Deactivate(ctx, f.hw.ID))

		_, err := f.tracker.RecordSubmission(ctx, f.hw.ID, uuid.New(), textPayload("x"), dueDate)
		assert.ErrorIs(t, err, errdefs.ErrInvalidState)
	})

	t.Run("Graded submission is frozen", func(t *testing.T) {
		f := setupTracker(t)
		studentID := uuid.New()
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		sub, err := f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("x"), dueDate)
		require.NoError(t, err)
		_, err = f.tracker.Grade(ctx, sub.ID, 90, nil, dueDate.Add(time.Hour))
		require.NoError(t, err)

		_, err = f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("y"), dueDate.Add(2*time.Hour))
		assert.ErrorIs(t, err, errdefs.ErrInvalidState)
	})

	t.Run("Publish failure does not fail the submission", func(t *testing.T) {
		f := setupTracker(t)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(2)

		sub, err := f.tracker.RecordSubmission(ctx, f.hw.ID, uuid.New(), textPayload("x"), dueDate)
		require.NoError(t, err)
		assert.Equal(t, domain.SubmissionStatusSubmitted, sub.Status)
	})

	t.Run("Cancelled context is not recorded", func(t *testing.T) {
		f := setupTracker(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.tracker.RecordSubmission(cancelled, f.hw.ID, uuid.New(), textPayload("x"), dueDate)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, f.submissions.Count())
	})

	t.Run("Concurrent submissions keep one record", func(t *testing.T) {
		f := setupTracker(t)
		studentID := uuid.New()
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("x"), dueDate)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		assert.Equal(t, 1, f.submissions.Count())
	})
}

func TestGrade(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, f *trackerFixture) *domain.Submission {
		t.Helper()
		sub, err := f.tracker.RecordSubmission(ctx, f.hw.ID, uuid.New(), textPayload("x"), dueDate.Add(-time.Hour))
		require.NoError(t, err)
		return sub
	}

	t.Run("Success", func(t *testing.T) {
		f := setupTracker(t)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		sub := submit(t, f)

		feedback := "well done"
		f.publisher.EXPECT().Publish(gomock.Any(), kindIs(domain.EventKindGraded)).DoAndReturn(
			func(_ context.Context, e domain.SubmissionEvent) error {
				require.NotNil(t, e.Grade)
				assert.Equal(t, 95, *e.Grade)
				return nil
			})

		graded, err := f.tracker.Grade(ctx, sub.ID, 95, &feedback, dueDate.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, domain.SubmissionStatusGraded, graded.Status)
		assert.Equal(t, 95, *graded.Grade)
		assert.Equal(t, "well done", *graded.Feedback)
		require.NotNil(t, graded.GradedAt)
		assert.False(t, graded.IsLate)
	})

	t.Run("Regrade edits grade only", func(t *testing.T) {
		f := setupTracker(t)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		sub := submit(t, f)

		first, err := f.tracker.Grade(ctx, sub.ID, 70, nil, dueDate.Add(time.Hour))
		require.NoError(t, err)
		gradedAt := *first.GradedAt

		second, err := f.tracker.Grade(ctx, sub.ID, 80, nil, dueDate.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 80, *second.Grade)
		assert.Equal(t, gradedAt, *second.GradedAt)
		assert.Equal(t, domain.SubmissionStatusGraded, second.Status)
	})

	t.Run("Out of range", func(t *testing.T) {
		f := setupTracker(t)

		for _, grade := range []int{-1, 101} {
			_, err := f.tracker.Grade(ctx, uuid.New(), grade, nil, dueDate)
			assert.ErrorIs(t, err, errdefs.ErrValidation)
		}
	})

	t.Run("Missing submission", func(t *testing.T) {
		f := setupTracker(t)

		_, err := f.tracker.Grade(ctx, uuid.New(), 50, nil, dueDate)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("Not submitted", func(t *testing.T) {
		f := setupTracker(t)
		sub := &domain.Submission{
			ID:         uuid.New(),
			HomeworkID: f.hw.ID,
			StudentID:  uuid.New(),
			Status:     domain.SubmissionStatusNotSubmitted,
		}
		require.NoError(t, f.submissions.Upsert(ctx, sub))

		_, err := f.tracker.Grade(ctx, sub.ID, 50, nil, dueDate)
		assert.ErrorIs(t, err, errdefs.ErrInvalidState)
	})
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	f := setupTracker(t)
	studentID := uuid.New()

	status, err := f.tracker.Status(ctx, f.hw.ID, studentID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusNotSubmitted, status)

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	_, err = f.tracker.RecordSubmission(ctx, f.hw.ID, studentID, textPayload("x"), dueDate.Add(time.Minute))
	require.NoError(t, err)

	status, err = f.tracker.Status(ctx, f.hw.ID, studentID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusLate, status)
}
