//go:generate mockgen -source=interface.go -destination=mocks/mocks.go -package=mocks

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type HomeworkSource interface {
	GetHomework(ctx context.Context, id uuid.UUID) (*domain.Homework, error)
	// ListActiveHomework returns active homework due in (after, before].
	ListActiveHomework(ctx context.Context, after, before time.Time) ([]*domain.Homework, error)
	ListByFilter(ctx context.Context, filter domain.HomeworkFilter) ([]*domain.Homework, error)
}

type HomeworkRepository interface {
	HomeworkSource
	Create(ctx context.Context, homework *domain.Homework) error
	Update(ctx context.Context, homework *domain.Homework) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ClassRoster interface {
	ListStudents(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error)
}

type SubmissionStore interface {
	Get(ctx context.Context, homeworkID, studentID uuid.UUID) (*domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	// Upsert inserts when Version is 0, otherwise updates only if the stored
	// version still matches. It bumps Version on success.
	Upsert(ctx context.Context, submission *domain.Submission) error
	ListByHomework(ctx context.Context, homeworkID uuid.UUID) ([]*domain.Submission, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, homeworkIDs []uuid.UUID) ([]*domain.Submission, error)
}

type ReminderStore interface {
	Exists(ctx context.Context, key domain.ReminderKey) (bool, error)
	// InsertIfAbsent atomically inserts the reminder unless one exists for
	// its key, and reports whether it inserted.
	InsertIfAbsent(ctx context.Context, reminder *domain.Reminder) (bool, error)
	ListUnread(ctx context.Context, studentID uuid.UUID) ([]*domain.Reminder, error)
	MarkRead(ctx context.Context, id, studentID uuid.UUID) error
}

// NotificationSink hands notifications to the delivery subsystem. It never
// reports delivery failures back to the caller.
type NotificationSink interface {
	Enqueue(ctx context.Context, notification domain.Notification)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.SubmissionEvent) error
}

type PointLedger interface {
	CreditPoints(ctx context.Context, userID uuid.UUID, amount int64) error
	// CreditReward credits a challenge's reward at most once per
	// (user, challenge). It reports false when the reward was already paid.
	CreditReward(ctx context.Context, userID, challengeID uuid.UUID, amount int64) (bool, error)
	GetTotalPoints(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Leaderboard interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type ChallengeStore interface {
	ListActiveChallenges(ctx context.Context, challengeType domain.ChallengeType, now time.Time) ([]*domain.Challenge, error)
	// GetProgress returns a zero progress entry (Version 0) when the user
	// has not advanced the challenge yet.
	GetProgress(ctx context.Context, userID, challengeID uuid.UUID) (*domain.ChallengeProgress, error)
	// UpdateProgress stores progress if its Version is current and eventID
	// was not recorded before; it bumps Version on success.
	UpdateProgress(ctx context.Context, progress *domain.ChallengeProgress, eventID uuid.UUID) error
}

type ReportStore interface {
	Save(ctx context.Context, report *domain.Report) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Report, error)
}
