package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/orchestrator"
	"github.com/goliatone/go-formguard/pkg/palette"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/testsupport"
)

type captureRenderer struct {
	values  model.Values
	state   form.PresentationState
	options render.RenderOptions
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }
func (c *captureRenderer) Render(_ context.Context, values model.Values, state form.PresentationState, options render.RenderOptions) ([]byte, error) {
	c.values = values
	c.state = state
	c.options = options
	return []byte("ok"), nil
}

type stubThemeSelector struct {
	selection *theme.Selection
	calls     [][2]string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, [2]string{name, variant})
	return s.selection, nil
}

func newCaptureOrchestrator(t *testing.T, options ...orchestrator.Option) (*orchestrator.Orchestrator, *captureRenderer) {
	t.Helper()
	renderer := &captureRenderer{}
	registry, err := render.NewRegistry(renderer)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	base := []orchestrator.Option{orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer("capture")}
	return orchestrator.New(append(base, options...)...), renderer
}

func TestGenerate_AppliesEmbeddedUISchema(t *testing.T) {
	orch, renderer := newCaptureOrchestrator(t)

	if _, err := orch.Generate(context.Background(), orchestrator.Request{Values: testsupport.ValidValues()}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if renderer.options.Title != "Create your account" || renderer.options.FormID != "signupForm" {
		t.Fatalf("unexpected form options %+v", renderer.options)
	}
	field, ok := model.Lookup(renderer.options.Fields, model.FieldFullName)
	if !ok || field.Placeholder != "Ann Lee" {
		t.Fatalf("expected decorated fullName, got %+v", field)
	}
	if diff := cmp.Diff(palette.Default(), *renderer.options.Palette); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
	if !renderer.state.Equal(form.Cleared()) {
		t.Fatalf("zero state should render as cleared, got %+v", renderer.state)
	}
	if diff := testsupport.CompareValues(testsupport.ValidValues(), renderer.values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_PassesThemeSelection(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "night",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{palette.TokenSuccessBackground: "#000000"},
		},
	}}
	orch, renderer := newCaptureOrchestrator(t, orchestrator.WithThemeSelector(selector))

	if _, err := orch.Generate(context.Background(), orchestrator.Request{ThemeName: "acme", ThemeVariant: "night"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([][2]string{{"acme", "night"}}, selector.calls); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	if got := renderer.options.Palette.Success.Background; got != "#000000" {
		t.Fatalf("expected selected token, got %q", got)
	}

	if _, err := orch.Generate(context.Background(), orchestrator.Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := selector.calls[len(selector.calls)-1]; got != [2]string{"formguard", "light"} {
		t.Fatalf("expected ui schema theme settings, got %v", got)
	}
}

func TestGenerate_CustomUISchemaAndOverrides(t *testing.T) {
	files := fstest.MapFS{
		"custom.yaml": {Data: []byte("form:\n  id: custom\n  title: Join\n  variant: dark\nfields:\n  email:\n    label: Work email\n")},
	}
	orch, renderer := newCaptureOrchestrator(t,
		orchestrator.WithUISchemaFS(files),
		orchestrator.WithFormID("custom"),
		orchestrator.WithUIDecorators(model.DecoratorFunc(func(fields []model.Field) error {
			fields[0].Label = "Name"
			return nil
		})),
	)

	_, err := orch.Generate(context.Background(), orchestrator.Request{
		RenderOptions: render.RenderOptions{Title: "Override"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Title != "Override" || renderer.options.FormID != "custom" {
		t.Fatalf("unexpected options %+v", renderer.options)
	}
	if renderer.options.Fields[0].Label != "Name" || renderer.options.Fields[1].Label != "Work email" {
		t.Fatalf("unexpected labels %q %q", renderer.options.Fields[0].Label, renderer.options.Fields[1].Label)
	}

	dark, err := orch.Palette("", "")
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if dark == palette.Default() {
		t.Fatalf("expected dark variant from ui schema")
	}
}

func TestGenerate_Errors(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Renderer: "pdf"}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if _, err := orch.Generate(context.Background(), orchestrator.Request{ThemeName: "nope"}); err == nil {
		t.Fatalf("expected unknown theme error")
	}

	broken := orchestrator.New(orchestrator.WithUISchemaFS(fstest.MapFS{
		"bad.yaml": {Data: []byte("form:\n  resetDelay: later\n")},
	}))
	if _, err := broken.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected ui schema error")
	}
	if _, err := broken.NewController(testsupport.NewMemorySource(model.Values{}), &testsupport.RecordingSink{}); err == nil {
		t.Fatalf("expected ui schema error from NewController")
	}
}

func TestGenerate_DefaultVanilla(t *testing.T) {
	orch := orchestrator.New()
	out, err := orch.Generate(context.Background(), orchestrator.Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "Create your account") {
		t.Fatalf("expected vanilla html with title, got %s", out)
	}

	out, err = orch.Generate(context.Background(), orchestrator.Request{Renderer: "json"})
	if err != nil {
		t.Fatalf("generate json: %v", err)
	}
	if !strings.HasPrefix(string(out), `{"form":{"id":"signupForm","title":"Create your account"`) {
		t.Fatalf("expected json state, got %s", out)
	}
	if diff := cmp.Diff([]string{"json", "vanilla"}, orch.Registry().List()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ResolvesRendererByContentType(t *testing.T) {
	orch := orchestrator.New()

	out, err := orch.Generate(context.Background(), orchestrator.Request{Renderer: "application/json"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), `{"form":`) {
		t.Fatalf("expected json state, got %s", out)
	}

	out, err = orch.Generate(context.Background(), orchestrator.Request{Renderer: "text/html; charset=utf-8"})
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}
	if !strings.Contains(string(out), "<form") {
		t.Fatalf("expected html form, got %s", out)
	}

	if _, err := orch.Generate(context.Background(), orchestrator.Request{Renderer: "application/pdf"}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestNewController_UsesConfiguredDelay(t *testing.T) {
	files := fstest.MapFS{
		"a.yaml": {Data: []byte("form:\n  resetDelay: 3s\n")},
	}
	orch := orchestrator.New(orchestrator.WithUISchemaFS(files))

	clock := testsupport.NewFakeClock()
	source := testsupport.NewMemorySource(testsupport.ValidValues())
	sink := &testsupport.RecordingSink{}
	ctrl, err := orch.NewController(source, sink, controller.WithClock(clock))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	ctx := context.Background()
	if _, err := ctrl.Submit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.Advance(controller.DefaultResetDelay)
	if !ctrl.Pending() {
		t.Fatalf("reset should still be pending before the configured delay")
	}
	clock.Advance(3*time.Second - controller.DefaultResetDelay)
	if ctrl.Pending() {
		t.Fatalf("reset should have fired after the configured delay")
	}
	if !source.Snapshot().Empty() {
		t.Fatalf("expected values cleared, got %+v", source.Snapshot())
	}
}
