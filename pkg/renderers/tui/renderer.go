package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
)

// Menu actions offered after the fields have been filled in.
const (
	ActionSubmit = "Submit"
	ActionEdit   = "Edit a field"
	ActionClear  = "Clear"
	ActionCancel = "Cancel"
)

var actions = []string{ActionSubmit, ActionEdit, ActionClear, ActionCancel}

// Renderer runs an interactive signup session in the terminal. Every answer
// is fed to a controller as a value change, so feedback appears as the user
// types; an accepted submit yields the serialized submission.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	fields            []model.Field
	controllerOptions []controller.Option
	acceptHook        func(form.Outcome)
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme(),
		fields:       model.SignupFields(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render runs a session prefilled with values. Fields from options win over
// the renderer's own.
func (r *Renderer) Render(ctx context.Context, values model.Values, _ form.PresentationState, options render.RenderOptions) ([]byte, error) {
	fields := r.fields
	if len(options.Fields) > 0 {
		fields = options.Fields
	}
	return r.run(ctx, NewState(values), fields)
}

// Run starts an empty session and blocks until the user submits a valid
// form or aborts.
func (r *Renderer) Run(ctx context.Context) ([]byte, error) {
	return r.run(ctx, NewState(model.Values{}), r.fields)
}

type session struct {
	*Renderer
	state  *State
	fields []model.Field
	ctrl   *controller.Controller
}

func (r *Renderer) run(ctx context.Context, state *State, fields []model.Field) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	s := &session{Renderer: r, state: state, fields: fields}
	ctrl, err := controller.New(state, controller.SinkFunc(s.present), r.controllerOptions...)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	s.ctrl = ctrl

	if err := s.promptAll(ctx); err != nil {
		return nil, err
	}

	for {
		choice, err := r.driver.Select(ctx, SelectConfig{Message: "What next?", Options: actions})
		if err != nil {
			return nil, err
		}

		switch indexAction(choice) {
		case ActionSubmit:
			outcome, err := ctrl.Submit(ctx)
			if err != nil {
				return nil, err
			}
			if !outcome.Accepted {
				continue
			}
			if r.acceptHook != nil {
				r.acceptHook(outcome)
			}
			if err := ctrl.Wait(ctx); err != nil {
				return nil, err
			}
			return r.serialize(outcome.Submitted)
		case ActionEdit:
			if err := s.editOne(ctx); err != nil {
				return nil, err
			}
		case ActionClear:
			if err := ctrl.Clear(ctx); err != nil {
				return nil, err
			}
			if err := s.promptAll(ctx); err != nil {
				return nil, err
			}
		case ActionCancel:
			return nil, ErrAborted
		default:
			return nil, fmt.Errorf("tui: unknown action index %d", choice)
		}
	}
}

func indexAction(idx int) string {
	if idx < 0 || idx >= len(actions) {
		return ""
	}
	return actions[idx]
}

func (s *session) promptAll(ctx context.Context) error {
	for _, field := range s.fields {
		if err := s.promptField(ctx, field); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) editOne(ctx context.Context) error {
	labels := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		labels = append(labels, displayLabel(field))
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Which field?", Options: labels})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(s.fields) {
		return fmt.Errorf("tui: unknown field index %d", idx)
	}
	return s.promptField(ctx, s.fields[idx])
}

func (s *session) promptField(ctx context.Context, field model.Field) error {
	cfg := InputConfig{
		Message: s.theme.PromptPrefix + displayLabel(field),
		Help:    displayHelp(field),
	}

	var (
		value string
		err   error
	)
	if field.Secret {
		value, err = s.driver.Password(ctx, cfg)
	} else {
		cfg.Default = s.state.Value(field.Name)
		value, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if err := s.state.Set(field.Name, value); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return s.ctrl.Changed(ctx, field.Name)
}

// present prints only what changed since the last state the user saw.
func (s *session) present(ctx context.Context, next form.PresentationState) error {
	previous := s.state.swap(next)

	if s.state.empty() && next.Equal(form.Cleared()) && !previous.Equal(form.Cleared()) {
		return s.driver.Info(ctx, s.theme.InfoPrefix+"Form reset.")
	}

	for _, slot := range render.ChangedSlots(s.fields, previous, next) {
		label := slot.ID
		if field, ok := model.Lookup(s.fields, slot.Field); ok {
			label = displayLabel(field)
		}
		line := s.theme.InfoPrefix + label + ": ok"
		if slot.Text != "" {
			line = s.theme.ErrorPrefix + label + ": " + slot.Text
		}
		if err := s.driver.Info(ctx, line); err != nil {
			return err
		}
	}

	if next.Message.Visible && next.Message != previous.Message {
		prefix := s.theme.ErrorPrefix
		if next.Message.Kind == form.MessageSuccess {
			prefix = s.theme.SuccessPrefix
		}
		return s.driver.Info(ctx, prefix+next.Message.Text)
	}
	return nil
}

func (r *Renderer) serialize(submission *form.Submission) ([]byte, error) {
	if submission == nil {
		return nil, errors.New("tui: accepted submit carried no submission")
	}
	values := map[string]any{
		"receiptId": submission.ReceiptID,
		"fullName":  submission.FullName,
		"email":     submission.Email,
	}
	if submission.Phone != "" {
		values["phone"] = submission.Phone
	}

	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return string(field.Name)
}

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// displayHelp strips any markup configured for HTML help text and appends
// the placeholder as an example.
func displayHelp(field model.Field) string {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	help := strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(field.HelpText)))
	if example := strings.TrimSpace(field.Placeholder); example != "" {
		if help != "" {
			help += " "
		}
		help += "(e.g. " + example + ")"
	}
	return help
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	for key, value := range values {
		flattened.Set(key, fmt.Sprint(value))
	}
	return flattened.Encode()
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%v\n", key, values[key])
	}
	return b.String()
}
