package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/palette"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/jsonstate"
	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formguard/pkg/uischema"
)

const defaultRendererName = "vanilla"

// Orchestrator holds the resolved configuration of one signup form. It
// applies sensible defaults (vanilla and json renderers, embedded UI schema,
// bundled theme) while remaining open to dependency injection.
type Orchestrator struct {
	registry          *render.Registry
	defaultRenderer   string
	decorators        []model.Decorator
	uiSchemaFS        fs.FS
	uiSchemaSpecified bool
	formID            string
	config            *uischema.Config
	themeSelector     theme.ThemeSelector
	controllerOptions []controller.Option
	logger            *slog.Logger

	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		formID:          uischema.DefaultFormID,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render of the form.
type Request struct {
	// Values are the current field values. Secret values are never echoed.
	Values model.Values
	// State is the presentation state to draw; the zero value draws a
	// cleared form.
	State form.PresentationState
	// Renderer names the renderer to use, falling back to the default. A
	// value holding a slash is matched against renderer content types.
	Renderer string
	// ThemeName and ThemeVariant override the UI schema theme settings.
	ThemeName    string
	ThemeVariant string
	// RenderOptions are merged over the resolved fields, title and palette.
	RenderOptions render.RenderOptions
}

// Generate resolves fields, palette and renderer, then renders the request.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	options, err := o.RenderOptions(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, err
	}
	options = mergeRenderOptions(options, req.RenderOptions)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	state := req.State
	if state.Errors == nil {
		state = form.Cleared()
	}

	output, err := renderer.Render(ctx, req.Values, state, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug("form rendered", "renderer", renderer.Name(), "bytes", len(output))
	return output, nil
}

// Fields returns the signup descriptors with every decorator applied.
func (o *Orchestrator) Fields() ([]model.Field, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	fields := model.SignupFields()
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(fields); err != nil {
			return nil, fmt.Errorf("orchestrator: decorate fields: %w", err)
		}
	}
	return fields, nil
}

// Config returns the UI schema configuration in use, if any.
func (o *Orchestrator) Config() (uischema.Config, bool) {
	if o.config == nil {
		return uischema.Config{}, false
	}
	return *o.config, true
}

// Palette resolves the banner colours. Empty arguments fall back to the UI
// schema settings and then to the bundled theme.
func (o *Orchestrator) Palette(name, variant string) (palette.Palette, error) {
	if cfg, ok := o.Config(); ok {
		if name == "" {
			name = cfg.Form.Theme
		}
		if variant == "" {
			variant = cfg.Form.Variant
		}
	}
	if name == "" {
		name = palette.DefaultTheme
	}

	selector := o.themeSelector
	if selector == nil {
		selector = palette.NewManifestSelector(palette.DefaultManifest())
	}
	resolved, err := palette.Select(selector, name, variant)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("orchestrator: resolve palette: %w", err)
	}
	return resolved, nil
}

// RenderOptions assembles the options renderers need: decorated fields, the
// form id and title, and the resolved palette.
func (o *Orchestrator) RenderOptions(themeName, variant string) (render.RenderOptions, error) {
	fields, err := o.Fields()
	if err != nil {
		return render.RenderOptions{}, err
	}
	resolved, err := o.Palette(themeName, variant)
	if err != nil {
		return render.RenderOptions{}, err
	}

	options := render.RenderOptions{Fields: fields, Palette: &resolved}
	if cfg, ok := o.Config(); ok {
		options.FormID = cfg.Form.ID
		options.Title = cfg.Form.Title
	}
	return options.Normalize(), nil
}

// NewController builds a controller for source and sink using the
// configured reset delay and logger. Later options win.
func (o *Orchestrator) NewController(source controller.InputSource, sink controller.PresentationSink, options ...controller.Option) (*controller.Controller, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return controller.New(source, sink, o.ControllerOptions(options...)...)
}

// ControllerOptions returns the controller options derived from the
// configuration followed by extra.
func (o *Orchestrator) ControllerOptions(extra ...controller.Option) []controller.Option {
	all := []controller.Option{controller.WithLogger(o.logger)}
	if cfg, ok := o.Config(); ok && cfg.Form.ResetDelay != "" {
		all = append(all, controller.WithResetDelay(cfg.Delay()))
	}
	all = append(all, o.controllerOptions...)
	return append(all, extra...)
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	if strings.Contains(name, "/") {
		renderer, err := o.registry.ForContentType(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		return renderer, nil
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		registry, err := render.NewRegistry(renderer, jsonstate.New())
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensureUIConfig()
}

func (o *Orchestrator) ensureUIConfig() {
	if o.config == nil {
		if !o.uiSchemaSpecified && o.uiSchemaFS == nil {
			o.uiSchemaFS = uischema.EmbeddedFS()
		}
		if o.uiSchemaFS == nil {
			return
		}

		store, err := uischema.LoadFS(o.uiSchemaFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load ui schema: %w", err)
			return
		}
		cfg, ok := store.Form(o.formID)
		if !ok {
			return
		}
		o.config = &cfg
	}

	// The UI schema runs first so explicit decorators can override it.
	o.decorators = append([]model.Decorator{model.DecoratorFunc(o.config.Apply)}, o.decorators...)
}

func mergeRenderOptions(base, override render.RenderOptions) render.RenderOptions {
	if override.FormID != "" {
		base.FormID = override.FormID
	}
	if override.Title != "" {
		base.Title = override.Title
	}
	if len(override.Fields) > 0 {
		base.Fields = override.Fields
	}
	if override.Palette != nil {
		base.Palette = override.Palette
	}
	return base
}
