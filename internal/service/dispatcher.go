package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"homework_tracker/internal/domain"
	"homework_tracker/pkg/logger"
)

// SubmissionEventHandler consumes submission events in process.
type SubmissionEventHandler interface {
	OnSubmissionEvent(ctx context.Context, userID uuid.UUID, event domain.SubmissionEvent) error
}

// EventDispatcher fans submission events out to in-process handlers and
// external publishers. Every target is attempted even if an earlier one fails.
type EventDispatcher struct {
	handlers   []SubmissionEventHandler
	publishers []EventPublisher
	logger     *logger.Logger
}

func NewEventDispatcher(log *logger.Logger) *EventDispatcher {
	return &EventDispatcher{logger: log}
}

func (d *EventDispatcher) AddHandler(h SubmissionEventHandler) *EventDispatcher {
	d.handlers = append(d.handlers, h)
	return d
}

func (d *EventDispatcher) AddPublisher(p EventPublisher) *EventDispatcher {
	d.publishers = append(d.publishers, p)
	return d
}

func (d *EventDispatcher) Publish(ctx context.Context, event domain.SubmissionEvent) error {
	var errs error

	for _, h := range d.handlers {
		if err := h.OnSubmissionEvent(ctx, event.UserID, event); err != nil {
			d.logger.WarnContext(ctx, "submission event handler failed",
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
			errs = multierr.Append(errs, err)
		}
	}

	for _, p := range d.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}
