package orchestrator

import (
	"io/fs"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/uischema"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithUIDecorators registers decorators that run against the field
// descriptors after the UI schema.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithUISchemaFS supplies an fs.FS holding UI schema documents. Pass nil to
// disable the embedded defaults.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.uiSchemaFS = fsys
		o.uiSchemaSpecified = true
	}
}

// WithUIConfig uses an already loaded configuration instead of reading a
// filesystem.
func WithUIConfig(cfg uischema.Config) Option {
	return func(o *Orchestrator) {
		o.config = &cfg
		o.formID = cfg.Form.ID
	}
}

// WithFormID selects which UI schema form to apply. Defaults to
// uischema.DefaultFormID.
func WithFormID(id string) Option {
	return func(o *Orchestrator) {
		if id != "" {
			o.formID = id
		}
	}
}

// WithThemeSelector resolves the banner palette through selector instead of
// the bundled manifest.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithControllerOptions appends options applied to every controller built
// by NewController, after the configured ones.
func WithControllerOptions(options ...controller.Option) Option {
	return func(o *Orchestrator) {
		o.controllerOptions = append(o.controllerOptions, options...)
	}
}

// WithLogger sets the logger handed to controllers.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}
