package domain

import (
	"time"

	"github.com/google/uuid"
)

var eventNamespace = uuid.MustParse("6f1c1a52-3f0e-4b6e-9d0a-5c2f7e1b8a44")

// SubmissionEvent is emitted by the submission tracker and consumed by the
// gamification engine and downstream subscribers.
type SubmissionEvent struct {
	ID           uuid.UUID
	Kind         EventKind
	UserID       uuid.UUID
	HomeworkID   uuid.UUID
	SubmissionID uuid.UUID
	Grade        *int
	OccurredAt   time.Time
}

// NewEventID derives a stable id for the logical event, so a redelivered or
// re-emitted event carries the same id as the first one.
func NewEventID(kind EventKind, submissionID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(eventNamespace, []byte(string(kind)+":"+submissionID.String()))
}

func NewSubmissionEvent(kind EventKind, s *Submission, at time.Time) SubmissionEvent {
	return SubmissionEvent{
		ID:           NewEventID(kind, s.ID),
		Kind:         kind,
		UserID:       s.StudentID,
		HomeworkID:   s.HomeworkID,
		SubmissionID: s.ID,
		Grade:        s.Grade,
		OccurredAt:   at.UTC(),
	}
}
