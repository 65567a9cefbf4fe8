package usecase

import (
	"context"

	"geogram/internal/domain/entity"
)

// DispatchOutcome reports the result of one dispatch attempt.
type DispatchOutcome struct {
	// State is the task state after the attempt.
	State entity.DispatchState
	// Retryable is true when the queue should redeliver the task for
	// another attempt.
	Retryable bool
	// Reason describes a failure for logging and escalation records.
	Reason string
}

// DispatchUsecase defines the interface for the notification dispatcher
type DispatchUsecase interface {
	// Dispatch runs one delivery attempt for the task and classifies the
	// result. Terminal outcomes (delivered, unsubscribed, missing event,
	// unknown channel, exhausted attempts) are never retried; transient
	// delivery failures are retryable until the attempt budget runs out.
	Dispatch(ctx context.Context, task *entity.DispatchTask) (*DispatchOutcome, error)
}
