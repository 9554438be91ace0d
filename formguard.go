// Package formguard validates a signup form: five field rules, a submit gate
// that shows a success or failure banner, live per-field feedback and a
// timed reset after a successful submit.
//
// Most callers start with New, wiring an InputSource that reads the current
// field values and a PresentationSink that draws error slots and the banner:
//
//	ctrl, err := formguard.New(source, sink)
//	...
//	ctrl.Changed(ctx, formguard.FieldEmail)
//	outcome, err := ctrl.Submit(ctx)
package formguard

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/orchestrator"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formguard/pkg/validation"
)

type (
	// Values holds the five raw field values.
	Values = model.Values
	// FieldName identifies a signup field.
	FieldName = model.FieldName
	// Report is the result of validating every field.
	Report = validation.Report
	// PresentationState is what a sink draws.
	PresentationState = form.PresentationState
	// Outcome is the result of a submit.
	Outcome = form.Outcome
	// Controller runs one form session.
	Controller = controller.Controller
	// InputSource supplies field values.
	InputSource = controller.InputSource
	// PresentationSink draws presentation states.
	PresentationSink = controller.PresentationSink
	// RenderOptions aliases render.RenderOptions.
	RenderOptions = render.RenderOptions
)

const (
	FieldFullName        = model.FieldFullName
	FieldEmail           = model.FieldEmail
	FieldPassword        = model.FieldPassword
	FieldConfirmPassword = model.FieldConfirmPassword
	FieldPhone           = model.FieldPhone
)

// New wires a controller to source and sink.
func New(source InputSource, sink PresentationSink, options ...controller.Option) (*Controller, error) {
	return controller.New(source, sink, options...)
}

// Validate runs every field rule against values.
func Validate(values Values) Report {
	return validation.ValidateAll(values)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the form with the default vanilla renderer, the
// embedded UI schema and the bundled theme.
func GenerateHTML(ctx context.Context, values Values, state PresentationState, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Values: values,
		State:  state,
	})
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
