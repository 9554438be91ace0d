package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
	rendertemplate "github.com/goliatone/go-formguard/pkg/render/template"
	gotemplate "github.com/goliatone/go-formguard/pkg/render/template/gotemplate"
)

// MessageID is the element id of the form-level message banner.
const MessageID = "formMessage"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	classes          Classes
	stylesheet       *string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithClasses overrides chrome classes.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = cfg.classes.merge(classes)
	}
}

// WithStylesheet replaces the CSS inlined by RenderPage. An empty string
// disables it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// Renderer draws the signup form as HTML.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	classes    Classes
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), classes: DefaultClasses()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	return &Renderer{templates: renderer, classes: cfg.classes, stylesheet: stylesheet}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the form element; it is RenderForm under the render.Renderer
// contract.
func (r *Renderer) Render(ctx context.Context, values model.Values, state form.PresentationState, options render.RenderOptions) ([]byte, error) {
	return r.RenderForm(ctx, values, state, options)
}

// RenderForm draws every field with its current value, its error slot and
// the message banner. Secret values are never written out.
func (r *Renderer) RenderForm(_ context.Context, values model.Values, state form.PresentationState, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	options = options.Normalize()

	message, err := r.message(state, options)
	if err != nil {
		return nil, err
	}

	fields := make([]map[string]any, 0, len(options.Fields))
	for _, field := range options.Fields {
		value := values.Get(field.Name)
		if field.Secret {
			value = ""
		}
		fields = append(fields, map[string]any{
			"name":        string(field.Name),
			"label":       field.Label,
			"placeholder": field.Placeholder,
			"help":        sanitizeHelp(field.HelpText),
			"inputType":   field.InputType,
			"required":    field.Required,
			"value":       value,
			"slot":        render.SlotID(options.Fields, field.Name),
			"error":       state.Error(field.Name),
		})
	}

	result, err := r.templates.RenderTemplate("templates/form", map[string]any{
		"form":    formView(options),
		"classes": r.classes.view(),
		"fields":  fields,
		"message": message,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render form: %w", err)
	}
	return []byte(result), nil
}

// RenderFeedback draws only the error slots and the banner, the parts of
// the page that change on every event.
func (r *Renderer) RenderFeedback(_ context.Context, state form.PresentationState, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	options = options.Normalize()

	message, err := r.message(state, options)
	if err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate("templates/feedback", map[string]any{
		"form":    formView(options),
		"classes": r.classes.view(),
		"slots":   render.Slots(options.Fields, state),
		"message": message,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render feedback: %w", err)
	}
	return []byte(result), nil
}

// RenderPage wraps RenderForm in a standalone HTML document with the
// stylesheet inlined.
func (r *Renderer) RenderPage(ctx context.Context, values model.Values, state form.PresentationState, options render.RenderOptions) ([]byte, error) {
	body, err := r.RenderForm(ctx, values, state, options)
	if err != nil {
		return nil, err
	}
	options = options.Normalize()

	result, err := r.templates.RenderTemplate("templates/page", map[string]any{
		"form":       formView(options),
		"stylesheet": r.stylesheet,
		"body":       string(body),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) message(state form.PresentationState, options render.RenderOptions) (string, error) {
	colors := options.Palette.For(state.Message.Kind)
	result, err := r.templates.RenderTemplate("templates/message", map[string]any{
		"id":      MessageID,
		"classes": r.classes.view(),
		"message": map[string]any{
			"kind":    string(state.Message.Kind),
			"text":    state.Message.Text,
			"visible": state.Message.Visible,
		},
		"colors": map[string]any{
			"background": colors.Background,
			"foreground": colors.Foreground,
		},
	})
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render message: %w", err)
	}
	return result, nil
}

func formView(options render.RenderOptions) map[string]any {
	return map[string]any{
		"id":    options.FormID,
		"title": options.Title,
	}
}
