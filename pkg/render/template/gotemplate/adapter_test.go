package gotemplate_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formguard/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formguard/pkg/testsupport"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"slot.tpl":   {Data: []byte(`<p id="{{ slot.id }}">{{ slot.text }}</p>`)},
		"banner.tpl": {Data: []byte(`{{ env }}:{{ text|trim }}`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	type slot struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("slot", map[string]any{
			"slot": slot{ID: "errEmail", Text: "Please enter a valid email"},
		}, w)
	})

	want := `<p id="errEmail">Please enter a valid email</p>`
	if result != want {
		t.Fatalf("result mismatch\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", want, written)
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{"env": "test"}))

	got, err := engine.RenderTemplate("banner.tpl", map[string]any{"text": "  hi  "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "test:hi" {
		t.Fatalf("expected globals and trim filter, got %q", got)
	}
}

func TestEngineAutoescapesAndRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("formguard_shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("formguard_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderString(`{{ name|formguard_shout }} {{ raw }}`, map[string]any{
		"name": "ann",
		"raw":  "<b>",
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "ANN! &lt;b&gt;" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineErrors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template source")
	}

	var engine *gotemplate.Engine
	if _, err := engine.RenderTemplate("slot", nil); !errors.Is(err, gotemplate.ErrNilEngine) {
		t.Fatalf("expected ErrNilEngine, got %v", err)
	}

	if _, err := newEngine(t).RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected load error for missing template")
	}
}
