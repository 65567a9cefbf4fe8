package entity

import "github.com/google/uuid"

// DispatchState tracks a dispatch task through its lifecycle. Delivered and
// Failed are terminal; a terminal task is never re-dispatched.
type DispatchState string

const (
	// DispatchStatePending is the initial state of an enqueued task.
	DispatchStatePending DispatchState = "pending"
	// DispatchStateRetrying marks a task whose last attempt failed transiently.
	DispatchStateRetrying DispatchState = "retrying"
	// DispatchStateDelivered marks a successful delivery. Terminal.
	DispatchStateDelivered DispatchState = "delivered"
	// DispatchStateFailed marks a task that can never succeed or has exhausted
	// its attempt budget. Terminal.
	DispatchStateFailed DispatchState = "failed"
)

// Terminal reports whether the state admits no further attempts.
func (s DispatchState) Terminal() bool {
	return s == DispatchStateDelivered || s == DispatchStateFailed
}

// DispatchTask pairs one subscription with one event for delivery. The
// attempt counter is carried on the task so retry bookkeeping is explicit
// rather than hidden in the queue transport.
type DispatchTask struct {
	SubscriptionID uuid.UUID     `json:"subscription_id"`
	EventID        uuid.UUID     `json:"event_id"`
	Attempt        int           `json:"attempt"` // 1-based attempt number for the current delivery.
	State          DispatchState `json:"state"`
}

// Terminal reports whether the task has reached a terminal state.
func (t *DispatchTask) Terminal() bool {
	return t.State.Terminal()
}
