package controller

import (
	"context"
	"time"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
)

// InputSource exposes the current field values. Values is called on every
// event and its result is never cached.
type InputSource interface {
	Values(ctx context.Context) (model.Values, error)
	// Reset clears every field value.
	Reset(ctx context.Context) error
}

// PresentationSink renders the error slots and the form message.
type PresentationSink interface {
	Present(ctx context.Context, state form.PresentationState) error
}

// SinkFunc adapts a function into a PresentationSink.
type SinkFunc func(ctx context.Context, state form.PresentationState) error

// Present calls the underlying function.
func (fn SinkFunc) Present(ctx context.Context, state form.PresentationState) error {
	return fn(ctx, state)
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already ran or was stopped.
	Stop() bool
}

// Clock schedules deferred callbacks. Tests swap in a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock returns a Clock backed by time.AfterFunc.
func SystemClock() Clock {
	return systemClock{}
}
