// Package service defines the interfaces for external capabilities consumed
// by the use cases.
package service

import (
	"context"
	"fmt"

	"geogram/internal/domain/entity"
	"geogram/internal/errors"
)

// Channel is a delivery capability for one named channel. Implementations
// own their transport and failure modes; the dispatcher only classifies the
// returned errors.
type Channel interface {
	// Name returns the channel name from the closed enumeration.
	Name() entity.Channel

	// RequiresEvent reports whether Deliver needs the event payload.
	// Self-contained channels (the email digest) return false and receive a
	// nil event.
	RequiresEvent() bool

	// Deliver sends one notification. Transient failures are reported as
	// *DeliveryError so the dispatcher retries them. Delivery is
	// at-least-once; dedup at the end-user-visible layer is the channel's
	// concern.
	Deliver(ctx context.Context, subscription *entity.Subscription, event *entity.Event) error
}

// ChannelRegistry resolves channel names to delivery capabilities. It is a
// pure lookup table and performs no I/O.
type ChannelRegistry interface {
	// Resolve returns the capability for the given channel name, or an
	// *UnknownChannelError for names with no registered implementation.
	Resolve(name entity.Channel) (Channel, error)
}

// DeliveryError wraps a transient delivery failure: network error, rate
// limit, downstream outage or attempt timeout. Retryable up to the attempt
// budget.
type DeliveryError struct {
	Channel entity.Channel
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery via %s failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NewDeliveryError wraps err as a retryable delivery failure.
func NewDeliveryError(channel entity.Channel, err error) error {
	return &DeliveryError{Channel: channel, Err: err}
}

// IsDeliveryError reports whether err is a transient delivery failure.
func IsDeliveryError(err error) bool {
	var de *DeliveryError

	return errors.As(err, &de)
}

// UnknownChannelError reports a channel name with no registered
// implementation. Misconfiguration: terminal, operator-visible.
type UnknownChannelError struct {
	Name entity.Channel
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown channel: %s", e.Name)
}

// IsUnknownChannelError reports whether err is a channel misconfiguration.
func IsUnknownChannelError(err error) bool {
	var ue *UnknownChannelError

	return errors.As(err, &ue)
}
