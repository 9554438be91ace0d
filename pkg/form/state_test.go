package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validation"
)

func validValues() model.Values {
	return model.Values{
		FullName:        "  Ann Lee ",
		Email:           "ann@example.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}
}

func TestSubmitAccepted(t *testing.T) {
	values := validValues()
	state, outcome := form.Submit(form.Cleared(), values, validation.ValidateAll(values))

	if !outcome.Accepted {
		t.Fatalf("expected accepted outcome: %+v", outcome.Report)
	}

	want := form.Message{
		Kind:    form.MessageSuccess,
		Text:    "Success! Thanks Ann Lee. Your submission is valid.",
		Visible: true,
	}
	if diff := cmp.Diff(want, state.Message); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}
	if state.HasErrors() {
		t.Fatalf("expected empty slots, got %v", state.Errors)
	}

	wantSubmission := &form.Submission{FullName: "Ann Lee", Email: "ann@example.com"}
	if diff := cmp.Diff(wantSubmission, outcome.Submitted); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitRejected(t *testing.T) {
	values := validValues()
	values.Email = "bad-email"

	state, outcome := form.Submit(form.Cleared(), values, validation.ValidateAll(values))
	if outcome.Accepted {
		t.Fatalf("expected rejected outcome")
	}
	if outcome.Submitted != nil {
		t.Fatalf("rejected outcome must not carry a submission")
	}

	want := form.Cleared()
	want.Errors[model.FieldEmail] = validation.ReasonEmail
	want.Message = form.Message{Kind: form.MessageFailure, Text: form.FailureText, Visible: true}
	if diff := cmp.Diff(want, state); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestLiveKeepsBannerAndReplacesStaleErrors(t *testing.T) {
	values := validValues()
	values.ConfirmPassword = "different"

	failed, _ := form.Submit(form.Cleared(), values, validation.ValidateAll(values))
	if failed.Error(model.FieldConfirmPassword) != validation.ReasonConfirmPassword {
		t.Fatalf("expected confirm error after submit, got %q", failed.Error(model.FieldConfirmPassword))
	}

	values.Password = "different"
	live := form.Live(failed, validation.ValidateAll(values))

	if diff := cmp.Diff(failed.Message, live.Message); diff != "" {
		t.Fatalf("live feedback must not touch the banner (-want +got):\n%s", diff)
	}
	if got := live.Error(model.FieldConfirmPassword); got != "" {
		t.Fatalf("stale confirm error survived: %q", got)
	}
	if got := live.Error(model.FieldPassword); got != validation.ReasonPassword {
		t.Fatalf("expected password error, got %q", got)
	}
	if failed.Error(model.FieldConfirmPassword) == "" {
		t.Fatalf("Live mutated its input state")
	}
}

func TestClearedHasEverySlot(t *testing.T) {
	state := form.Cleared()
	if state.Message.Visible || state.HasErrors() {
		t.Fatalf("cleared state should be blank: %+v", state)
	}
	for _, name := range model.FieldNames() {
		if _, ok := state.Errors[name]; !ok {
			t.Fatalf("missing slot for %s", name)
		}
	}
	if !state.Equal(form.PresentationState{}) {
		t.Fatalf("cleared state should render like the zero state")
	}
}
