package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"homework_tracker/internal/domain"
	"homework_tracker/pkg/logger"
)

type Sender interface {
	Send(ctx context.Context, topic, key string, message interface{}) error
}

type NotificationMessage struct {
	UserID  string    `json:"user_id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	DueDate time.Time `json:"due_date"`
}

type SubmissionEventMessage struct {
	EventID      string    `json:"event_id"`
	Kind         string    `json:"kind"`
	UserID       string    `json:"user_id"`
	HomeworkID   string    `json:"homework_id"`
	SubmissionID string    `json:"submission_id"`
	Grade        *int      `json:"grade,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NotificationSink writes reminders to the topic the notification service
// consumes. Enqueue never reports failures to the caller.
type NotificationSink struct {
	sender Sender
	topic  string
	logger *logger.Logger
}

func NewNotificationSink(sender Sender, topic string, log *logger.Logger) *NotificationSink {
	return &NotificationSink{sender: sender, topic: topic, logger: log}
}

func (s *NotificationSink) Enqueue(ctx context.Context, n domain.Notification) {
	msg := NotificationMessage{
		UserID:  n.UserID.String(),
		Title:   n.Title,
		Message: n.Message,
		DueDate: n.DueDate.UTC(),
	}
	if err := s.sender.Send(ctx, s.topic, msg.UserID, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to enqueue notification",
			zap.String("user_id", msg.UserID),
			zap.Error(err),
		)
	}
}

// EventPublisher keys messages by submission so every event of one
// submission lands on the same partition in order.
type EventPublisher struct {
	sender Sender
	topic  string
}

func NewEventPublisher(sender Sender, topic string) *EventPublisher {
	return &EventPublisher{sender: sender, topic: topic}
}

func (p *EventPublisher) Publish(ctx context.Context, e domain.SubmissionEvent) error {
	msg := SubmissionEventMessage{
		EventID:      e.ID.String(),
		Kind:         string(e.Kind),
		UserID:       e.UserID.String(),
		HomeworkID:   e.HomeworkID.String(),
		SubmissionID: e.SubmissionID.String(),
		Grade:        e.Grade,
		OccurredAt:   e.OccurredAt.UTC(),
	}
	return p.sender.Send(ctx, p.topic, msg.SubmissionID, msg)
}
