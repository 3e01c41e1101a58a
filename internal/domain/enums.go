package domain

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
	UserRoleAdmin   UserRole = "admin"
)

type SubmissionStatus string

const (
	SubmissionStatusNotSubmitted SubmissionStatus = "NOT_SUBMITTED"
	SubmissionStatusSubmitted    SubmissionStatus = "SUBMITTED"
	SubmissionStatusLate         SubmissionStatus = "LATE"
	SubmissionStatusGraded       SubmissionStatus = "GRADED"
)

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusNotSubmitted, SubmissionStatusSubmitted,
		SubmissionStatusLate, SubmissionStatusGraded:
		return true
	default:
		return false
	}
}

// IsCompleted reports whether the student has handed the work in.
func (s SubmissionStatus) IsCompleted() bool {
	switch s {
	case SubmissionStatusSubmitted, SubmissionStatusLate, SubmissionStatusGraded:
		return true
	case SubmissionStatusNotSubmitted:
		return false
	default:
		return false
	}
}

func ToSubmissionStatus(status string) SubmissionStatus {
	switch status {
	case "SUBMITTED":
		return SubmissionStatusSubmitted
	case "LATE":
		return SubmissionStatusLate
	case "GRADED":
		return SubmissionStatusGraded
	default:
		return SubmissionStatusNotSubmitted
	}
}

type ChallengeType string

const (
	ChallengeTypeSubmissionCount ChallengeType = "submission_count"
	ChallengeTypeStreak          ChallengeType = "streak"
	ChallengeTypeOnTimeCount     ChallengeType = "on_time_count"
	ChallengeTypeGradedCount     ChallengeType = "graded_count"
	ChallengeTypePerfectScore    ChallengeType = "perfect_score"
)

func (t ChallengeType) IsValid() bool {
	switch t {
	case ChallengeTypeSubmissionCount, ChallengeTypeStreak, ChallengeTypeOnTimeCount,
		ChallengeTypeGradedCount, ChallengeTypePerfectScore:
		return true
	default:
		return false
	}
}

type EventKind string

const (
	EventKindSubmitted       EventKind = "submitted"
	EventKindSubmittedOnTime EventKind = "submitted_on_time"
	EventKindGraded          EventKind = "graded"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventKindSubmitted, EventKindSubmittedOnTime, EventKindGraded:
		return true
	default:
		return false
	}
}

// ChallengeTypes lists the challenge types an event of kind k advances.
func (k EventKind) ChallengeTypes() []ChallengeType {
	switch k {
	case EventKindSubmitted:
		return []ChallengeType{ChallengeTypeSubmissionCount, ChallengeTypeStreak}
	case EventKindSubmittedOnTime:
		return []ChallengeType{ChallengeTypeOnTimeCount}
	case EventKindGraded:
		return []ChallengeType{ChallengeTypeGradedCount, ChallengeTypePerfectScore}
	default:
		return nil
	}
}
