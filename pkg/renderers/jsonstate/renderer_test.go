package jsonstate_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/palette"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/jsonstate"
	"github.com/goliatone/go-formguard/pkg/testsupport"
	"github.com/goliatone/go-formguard/pkg/validation"
)

func TestRenderPayload(t *testing.T) {
	renderer := jsonstate.New()

	values := testsupport.ValidValues()
	values.Phone = "12"
	state := form.Cleared()
	state.Errors[model.FieldPhone] = validation.ReasonPhone
	state.Message = form.Message{Kind: form.MessageFailure, Text: form.FailureText, Visible: true}

	out, err := renderer.Render(context.Background(), values, state, render.RenderOptions{Title: "Join"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), values.Password) {
		t.Fatalf("password leaked: %s", out)
	}

	var got jsonstate.Payload
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if diff := cmp.Diff(jsonstate.FormPayload{ID: "signupForm", Title: "Join", Valid: false}, got.Form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(jsonstate.MessagePayload{Kind: form.MessageFailure, Text: form.FailureText, Visible: true}, got.Message); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}

	phone := got.Fields[len(got.Fields)-1]
	want := jsonstate.FieldPayload{
		Name:      model.FieldPhone,
		Label:     "Phone (optional)",
		InputType: "tel",
		Value:     "12",
		Slot:      "errPhone",
		Error:     validation.ReasonPhone,
	}
	if diff := cmp.Diff(want, phone); diff != "" {
		t.Fatalf("phone field mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"errPhone": validation.ReasonPhone}, got.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if got.Fields[2].Value != "" || got.Fields[3].Value != "" {
		t.Fatalf("secret fields must carry no value, got %+v", got.Fields[2:4])
	}
}

func TestBuildThemeVars(t *testing.T) {
	renderer := jsonstate.New(jsonstate.WithCSSVarPrefix("--fg"))
	p := palette.Default()

	payload := renderer.Build(model.Values{}, form.Cleared(), render.RenderOptions{Palette: &p})
	if got := payload.Theme.CSSVars["--fg-success-bg"]; got != p.Success.Background {
		t.Fatalf("expected success background var, got %q", got)
	}
	if !strings.HasPrefix(payload.Theme.CSSVarsStyle, ":root {\n--fg-failure-bg: ") {
		t.Fatalf("unexpected css vars style %q", payload.Theme.CSSVarsStyle)
	}
	if !payload.Form.Valid {
		t.Fatalf("cleared form should report valid slots")
	}
}

func TestRenderIndent(t *testing.T) {
	out, err := jsonstate.New(jsonstate.WithIndent("  ")).Render(context.Background(), model.Values{}, form.Cleared(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "\n  \"form\": {") {
		t.Fatalf("expected indented output, got %s", out)
	}
}
