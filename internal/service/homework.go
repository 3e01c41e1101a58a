package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
	"homework_tracker/pkg/ctxdata"
)

type HomeworkService struct {
	homeworkRepo HomeworkRepository
	clock        Clock
}

func NewHomeworkService(homeworkRepo HomeworkRepository, clock Clock) *HomeworkService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &HomeworkService{
		homeworkRepo: homeworkRepo,
		clock:        clock,
	}
}

func (s *HomeworkService) CreateHomework(ctx context.Context, req *domain.Homework) (*domain.Homework, error) {
	user, ok := ctxdata.GetUser(ctx)
	if !ok || user.Role != string(domain.UserRoleTeacher) {
		return nil, errdefs.ErrPermissionDenied
	}

	if strings.TrimSpace(req.Subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", errdefs.ErrValidation)
	}
	if req.ClassID == uuid.Nil {
		return nil, fmt.Errorf("%w: class is required", errdefs.ErrValidation)
	}
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	now := s.clock.Now().UTC()
	homework := &domain.Homework{
		ID:          id,
		TeacherID:   user.ID,
		ClassID:     req.ClassID,
		Subject:     req.Subject,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate.UTC(),
		IsActive:    true,
		CreatedAt:   now,
		EditedAt:    now,
	}

	if err := s.homeworkRepo.Create(ctx, homework); err != nil {
		return nil, err
	}

	return homework, nil
}

func (s *HomeworkService) GetHomework(ctx context.Context, id uuid.UUID) (*domain.Homework, error) {
	return s.homeworkRepo.GetHomework(ctx, id)
}

// UpdateHomework lets the owning teacher edit the homework. Reminders that
// already fired for the old due date are not retracted.
func (s *HomeworkService) UpdateHomework(ctx context.Context, req *domain.Homework) (*domain.Homework, error) {
	existing, err := s.ownedHomework(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Subject) != "" {
		existing.Subject = req.Subject
	}
	if req.Title != nil {
		existing.Title = req.Title
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	now := s.clock.Now()
	if !req.DueDate.IsZero() && !req.DueDate.Equal(existing.DueDate) {
		// Submissions are already classified against the old due date.
		if existing.DueDate.Before(now) {
			return nil, fmt.Errorf("%w: due date has passed", errdefs.ErrInvalidState)
		}
		existing.DueDate = req.DueDate.UTC()
	}
	existing.EditedAt = now.UTC()

	if err := s.homeworkRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateHomework soft-deletes the homework; submissions keep referencing it.
func (s *HomeworkService) DeactivateHomework(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ownedHomework(ctx, id); err != nil {
		return err
	}
	return s.homeworkRepo.Deactivate(ctx, id)
}

func (s *HomeworkService) ListByClass(ctx context.Context, classID uuid.UUID, from, until time.Time) ([]*domain.Homework, error) {
	return s.homeworkRepo.ListByFilter(ctx, domain.HomeworkFilter{ClassID: classID, DueFrom: from, DueUntil: until})
}

func (s *HomeworkService) ownedHomework(ctx context.Context, id uuid.UUID) (*domain.Homework, error) {
	homework, err := s.homeworkRepo.GetHomework(ctx, id)
	if err != nil {
		return nil, err
	}

	user, ok := ctxdata.GetUser(ctx)
	if !ok || homework.TeacherID != user.ID {
		return nil, errdefs.ErrPermissionDenied
	}
	return homework, nil
}
