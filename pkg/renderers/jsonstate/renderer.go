// Package jsonstate renders the signup form as a JSON document, for hosts
// that draw the form themselves and only need fields, slots and the banner.
package jsonstate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
)

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithIndent pretty-prints the payload with the given indent.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// WithCSSVarPrefix changes the "--formguard" prefix of emitted CSS variables.
func WithCSSVarPrefix(prefix string) Option {
	return func(r *Renderer) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			r.cssPrefix = prefix
		}
	}
}

// Renderer emits the form state as application/json.
type Renderer struct {
	indent    string
	cssPrefix string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{cssPrefix: "--formguard"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Payload is the document Render emits.
type Payload struct {
	Form   FormPayload    `json:"form"`
	Fields []FieldPayload `json:"fields"`
	// Errors maps slot ids to their text; empty slots are omitted.
	Errors  map[string]string `json:"errors,omitempty"`
	Message MessagePayload    `json:"message"`
	Theme   ThemePayload      `json:"theme"`
}

// FormPayload identifies the form.
type FormPayload struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Valid bool   `json:"valid"`
}

// FieldPayload is one field with its value and error slot. Secret fields
// carry no value.
type FieldPayload struct {
	Name        model.FieldName `json:"name"`
	Label       string          `json:"label"`
	Placeholder string          `json:"placeholder,omitempty"`
	HelpText    string          `json:"helpText,omitempty"`
	InputType   string          `json:"inputType"`
	Required    bool            `json:"required"`
	Value       string          `json:"value,omitempty"`
	Slot        string          `json:"slot"`
	Error       string          `json:"error,omitempty"`
}

// MessagePayload is the banner.
type MessagePayload struct {
	Kind    form.MessageKind `json:"kind,omitempty"`
	Text    string           `json:"text,omitempty"`
	Visible bool             `json:"visible"`
}

// ThemePayload exposes the palette as CSS custom properties.
type ThemePayload struct {
	CSSVars      map[string]string `json:"cssVars"`
	CSSVarsStyle string            `json:"cssVarsStyle"`
}

// Render marshals the Payload for values and state.
func (r *Renderer) Render(_ context.Context, values model.Values, state form.PresentationState, options render.RenderOptions) ([]byte, error) {
	payload := r.Build(values, state, options)

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(payload, "", r.indent)
	} else {
		out, err = json.Marshal(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonstate: marshal payload: %w", err)
	}
	return out, nil
}

// Build assembles the payload without encoding it.
func (r *Renderer) Build(values model.Values, state form.PresentationState, options render.RenderOptions) Payload {
	options = options.Normalize()

	fields := make([]FieldPayload, 0, len(options.Fields))
	for _, field := range options.Fields {
		value := values.Get(field.Name)
		if field.Secret {
			value = ""
		}
		fields = append(fields, FieldPayload{
			Name:        field.Name,
			Label:       field.Label,
			Placeholder: field.Placeholder,
			HelpText:    field.HelpText,
			InputType:   field.InputType,
			Required:    field.Required,
			Value:       value,
			Slot:        render.SlotID(options.Fields, field.Name),
			Error:       state.Error(field.Name),
		})
	}

	vars := map[string]string{
		r.cssPrefix + "-success-bg": options.Palette.Success.Background,
		r.cssPrefix + "-success-fg": options.Palette.Success.Foreground,
		r.cssPrefix + "-failure-bg": options.Palette.Failure.Background,
		r.cssPrefix + "-failure-fg": options.Palette.Failure.Foreground,
	}

	return Payload{
		Form: FormPayload{
			ID:    options.FormID,
			Title: options.Title,
			Valid: !state.HasErrors(),
		},
		Fields: fields,
		Errors: render.SlotMessages(options.Fields, state),
		Message: MessagePayload{
			Kind:    state.Message.Kind,
			Text:    state.Message.Text,
			Visible: state.Message.Visible,
		},
		Theme: ThemePayload{
			CSSVars:      vars,
			CSSVarsStyle: cssVarsStyle(vars),
		},
	}
}

func cssVarsStyle(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key, value := range vars {
		if value == "" {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
