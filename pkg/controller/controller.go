package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validation"
)

// Controller drives one form session.
type Controller struct {
	mu sync.Mutex

	source    InputSource
	sink      PresentationSink
	validator *validation.Validator
	clock     Clock
	delay     time.Duration
	logger    *slog.Logger
	receipts  func() string

	state      form.PresentationState
	pending    *pendingReset
	generation uint64
}

type pendingReset struct {
	timer      Timer
	generation uint64
	receipt    string
	done       chan struct{}
}

// New wires a controller to its source and sink.
func New(source InputSource, sink PresentationSink, options ...Option) (*Controller, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	c := &Controller{
		source:    source,
		sink:      sink,
		validator: validation.Default(),
		clock:     SystemClock(),
		delay:     DefaultResetDelay,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		receipts:  uuid.NewString,
		state:     form.Cleared(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	return c, nil
}

// State returns a snapshot of the last presented state.
func (c *Controller) State() form.PresentationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Pending reports whether a success reset is scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Render presents the current state without validating. Sinks use it to
// draw the initial form.
func (c *Controller) Render(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.presentLocked(ctx)
}

// Changed handles a value-change notification for field. All five rules run
// against the live values so confirmPassword follows password edits. The
// banner is left untouched and nothing is gated.
func (c *Controller) Changed(ctx context.Context, field model.FieldName) error {
	if !field.Valid() {
		return fmt.Errorf("controller: %w: %q", model.ErrUnknownField, field)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	values, err := c.source.Values(ctx)
	if err != nil {
		return fmt.Errorf("controller: read values: %w", err)
	}

	report := c.validator.Validate(values)
	c.state = form.Live(c.state, report)
	c.logger.Debug("live validation", "field", field, "invalid", report.Invalid())

	return c.presentLocked(ctx)
}

// Submit runs the submit gate. Any pending reset is cancelled once the
// values are read. On success the banner shows the success text and a reset
// is scheduled after the configured delay; on failure the banner shows the
// failure text and the values stay as they are. A failed read leaves a
// pending reset armed, and a failed present still schedules the reset.
func (c *Controller) Submit(ctx context.Context) (form.Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	values, err := c.source.Values(ctx)
	if err != nil {
		return form.Outcome{}, fmt.Errorf("controller: read values: %w", err)
	}

	c.cancelPendingLocked("submit")

	report := c.validator.Validate(values)
	next, outcome := form.Submit(c.state, values, report)
	c.state = next

	if outcome.Accepted {
		outcome.Submitted.ReceiptID = c.receipts()
		c.scheduleResetLocked(outcome.Submitted.ReceiptID)
		c.logger.Info("submit accepted", "receipt", outcome.Submitted.ReceiptID, "delay", c.delay)
	} else {
		c.logger.Info("submit rejected", "invalid", report.Invalid())
	}

	if err := c.presentLocked(ctx); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Clear resets every value, empties every slot and hides the banner. It is
// idempotent and cancels a pending success reset once the source has been
// reset.
func (c *Controller) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.source.Reset(ctx); err != nil {
		return fmt.Errorf("controller: reset values: %w", err)
	}
	c.cancelPendingLocked("clear")
	c.state = form.Cleared()
	return c.presentLocked(ctx)
}

// Wait blocks until no success reset is pending, either because it fired or
// because it was cancelled.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	pending := c.pending
	c.mu.Unlock()

	if pending == nil {
		return nil
	}

	select {
	case <-pending.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) scheduleResetLocked(receipt string) {
	c.generation++
	generation := c.generation
	pending := &pendingReset{
		generation: generation,
		receipt:    receipt,
		done:       make(chan struct{}),
	}
	c.pending = pending
	pending.timer = c.clock.AfterFunc(c.delay, func() {
		c.fire(generation)
	})
}

func (c *Controller) cancelPendingLocked(reason string) {
	pending := c.pending
	if pending == nil {
		return
	}
	c.pending = nil
	if pending.timer != nil {
		pending.timer.Stop()
	}
	close(pending.done)
	c.logger.Warn("pending reset cancelled", "receipt", pending.receipt, "by", reason)
}

func (c *Controller) fire(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.pending
	if pending == nil || pending.generation != generation {
		return
	}
	c.pending = nil
	defer close(pending.done)

	if err := c.resetLocked(context.Background()); err != nil {
		c.logger.Error("reset after submit failed", "receipt", pending.receipt, "error", err)
		return
	}
	c.logger.Info("form reset after submit", "receipt", pending.receipt)
}

func (c *Controller) resetLocked(ctx context.Context) error {
	if err := c.source.Reset(ctx); err != nil {
		return fmt.Errorf("controller: reset values: %w", err)
	}
	c.state = form.Cleared()
	return c.presentLocked(ctx)
}

func (c *Controller) presentLocked(ctx context.Context) error {
	if err := c.sink.Present(ctx, c.state.Clone()); err != nil {
		return fmt.Errorf("controller: present: %w", err)
	}
	return nil
}
