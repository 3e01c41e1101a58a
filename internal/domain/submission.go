package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	GradeMin = 0
	GradeMax = 100
)

type SubmissionPayload struct {
	Text             *string
	AttachmentFileID *uuid.UUID
	AudioFileID      *uuid.UUID
	ImageFileID      *uuid.UUID
	PDFFileID        *uuid.UUID
}

// IsEmpty is true when no content field carries anything. Whitespace-only
// text counts as empty.
func (p SubmissionPayload) IsEmpty() bool {
	if p.Text != nil && strings.TrimSpace(*p.Text) != "" {
		return false
	}
	return p.AttachmentFileID == nil &&
		p.AudioFileID == nil &&
		p.ImageFileID == nil &&
		p.PDFFileID == nil
}

type Submission struct {
	ID          uuid.UUID
	HomeworkID  uuid.UUID
	StudentID   uuid.UUID
	Payload     SubmissionPayload
	SubmittedAt time.Time
	Status      SubmissionStatus
	IsLate      bool
	Grade       *int
	Feedback    *string
	GradedAt    *time.Time
	Version     int64
	CreatedAt   time.Time
	EditedAt    time.Time
}

// IsLate is true when submittedAt is strictly after dueDate. Both instants
// are compared in UTC.
func IsLate(submittedAt, dueDate time.Time) bool {
	return submittedAt.UTC().After(dueDate.UTC())
}

func ValidateGrade(grade int) bool {
	return grade >= GradeMin && grade <= GradeMax
}
