package domain

import (
	"time"

	"github.com/google/uuid"
)

type Homework struct {
	ID          uuid.UUID
	TeacherID   uuid.UUID
	ClassID     uuid.UUID
	Subject     string
	Title       *string
	Description *string
	DueDate     time.Time
	IsActive    bool
	CreatedAt   time.Time
	EditedAt    time.Time
}

// IsOpen reports whether the homework still accepts reminders at t.
func (h *Homework) IsOpen(t time.Time) bool {
	return h.IsActive && h.DueDate.UTC().After(t.UTC())
}

type HomeworkFilter struct {
	ClassID    uuid.UUID
	DueFrom    time.Time
	DueUntil   time.Time
	ActiveOnly bool
}
