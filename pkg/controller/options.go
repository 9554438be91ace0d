package controller

import (
	"log/slog"
	"time"

	"github.com/goliatone/go-formguard/pkg/validation"
)

// DefaultResetDelay is how long a success message stays up before the form
// resets.
const DefaultResetDelay = 1200 * time.Millisecond

// Option configures a Controller.
type Option func(*Controller)

// WithValidator overrides the rule set used for every validation pass.
func WithValidator(v *validation.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithClock overrides the clock used to schedule the success reset.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithResetDelay changes the delay between an accepted submit and the
// automatic reset. Negative values are ignored.
func WithResetDelay(delay time.Duration) Option {
	return func(c *Controller) {
		if delay >= 0 {
			c.delay = delay
		}
	}
}

// WithLogger routes controller logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithReceiptGenerator overrides how receipt ids for accepted submits are
// produced.
func WithReceiptGenerator(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.receipts = fn
		}
	}
}
