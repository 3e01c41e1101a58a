package domain

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	ID         uuid.UUID
	HomeworkID uuid.UUID
	StudentID  uuid.UUID
	Offset     time.Duration
	FiredAt    time.Time
	IsRead     bool
}

// ReminderKey identifies the single reminder allowed per homework, student
// and offset.
type ReminderKey struct {
	HomeworkID uuid.UUID
	StudentID  uuid.UUID
	Offset     time.Duration
}

func (r *Reminder) Key() ReminderKey {
	return ReminderKey{HomeworkID: r.HomeworkID, StudentID: r.StudentID, Offset: r.Offset}
}

// InReminderWindow reports whether now falls in [due-offset, due-offset+interval).
func InReminderWindow(now, due time.Time, offset, interval time.Duration) bool {
	start := due.UTC().Add(-offset)
	end := start.Add(interval)
	now = now.UTC()
	return !now.Before(start) && now.Before(end)
}

type Notification struct {
	UserID  uuid.UUID
	Title   string
	Message string
	DueDate time.Time
}
