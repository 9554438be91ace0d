package tui

import (
	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
)

// OutputFormat controls how an accepted submission is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a flag value to a format.
func ParseOutputFormat(value string) (OutputFormat, bool) {
	switch OutputFormat(value) {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
		return OutputFormat(value), true
	default:
		return "", false
	}
}

// Theme captures optional formatting hints applied to printed feedback.
// Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	PromptPrefix  string
	InfoPrefix    string
	ErrorPrefix   string
	SuccessPrefix string
}

// DefaultTheme is used when no theme is configured.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:    "  ",
		ErrorPrefix:   "  ! ",
		SuccessPrefix: "  * ",
	}
}

// SubmitTransformer mutates the submission payload before serialization.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer allows callers to mutate the submission prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithFields replaces the default field descriptors, usually with ones
// decorated from a UI schema.
func WithFields(fields []model.Field) Option {
	return func(r *Renderer) {
		if len(fields) > 0 {
			r.fields = append([]model.Field(nil), fields...)
		}
	}
}

// WithControllerOptions forwards options to the controller each session
// builds (clock, delay, logger, receipts).
func WithControllerOptions(options ...controller.Option) Option {
	return func(r *Renderer) {
		r.controllerOptions = append(r.controllerOptions, options...)
	}
}

// WithAcceptHook registers fn to receive the outcome of an accepted submit
// before the session waits for the reset.
func WithAcceptHook(fn func(form.Outcome)) Option {
	return func(r *Renderer) {
		r.acceptHook = fn
	}
}
