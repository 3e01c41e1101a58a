package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"homework_tracker/internal/errdefs"
	"homework_tracker/internal/service"
	"homework_tracker/pkg/logger"
)

type sweeper interface {
	Sweep(ctx context.Context) (service.SweepResult, error)
	Interval() time.Duration
}

type ReminderWorker struct {
	scheduler sweeper
	logger    *logger.Logger
	interval  time.Duration
}

func NewReminderWorker(scheduler sweeper, logger *logger.Logger) *ReminderWorker {
	return &ReminderWorker{
		scheduler: scheduler,
		logger:    logger,
		interval:  scheduler.Interval(),
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			w.processReminders(ctx)
		}
	}
}

func (w *ReminderWorker) processReminders(ctx context.Context) {
	result, err := w.scheduler.Sweep(ctx)
	switch {
	case errors.Is(err, errdefs.ErrSweepInProgress):
		w.logger.Warn("Reminder sweep skipped, previous sweep still running")
		return
	case err != nil:
		w.logger.Error("Reminder sweep failed", zap.Error(err))
		return
	}

	if result.Failed > 0 {
		w.logger.Warn("Reminder sweep finished with failures", zap.Int("failed", result.Failed))
	}
}
