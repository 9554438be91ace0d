package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validation"
)

func TestFieldValidators(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name  string
		check func() validation.Result
		valid bool
	}{
		{"name two chars", func() validation.Result { return v.FullName("Al") }, true},
		{"name trimmed too short", func() validation.Result { return v.FullName("  A  ") }, false},
		{"name empty", func() validation.Result { return v.FullName("") }, false},
		{"name multibyte", func() validation.Result { return v.FullName("李明") }, true},
		{"name astral counts twice", func() validation.Result { return v.FullName("😀") }, true},
		{"name single letter", func() validation.Result { return v.FullName("é") }, false},

		{"email simple", func() validation.Result { return v.Email("ann@example.com") }, true},
		{"email padded", func() validation.Result { return v.Email("  ann@example.com \t") }, true},
		{"email no at", func() validation.Result { return v.Email("bad-email") }, false},
		{"email no dot", func() validation.Result { return v.Email("ann@example") }, false},
		{"email trailing dot", func() validation.Result { return v.Email("ann@example.") }, false},
		{"email leading dot only", func() validation.Result { return v.Email("ann@.com") }, false},
		{"email double at", func() validation.Result { return v.Email("a@b@c.com") }, false},
		{"email inner space", func() validation.Result { return v.Email("ann lee@example.com") }, false},
		{"email empty local", func() validation.Result { return v.Email("@example.com") }, false},
		{"email empty", func() validation.Result { return v.Email("") }, false},
		{"email inner nbsp", func() validation.Result { return v.Email("a\u00a0b@c.de") }, false},
		{"email inner nel", func() validation.Result { return v.Email("a\u0085b@c.de") }, true},

		{"password strong", func() validation.Result { return v.Password("Abcdef1!") }, true},
		{"password underscore symbol", func() validation.Result { return v.Password("Abcdef1_") }, true},
		{"password short", func() validation.Result { return v.Password("Abcde1!") }, false},
		{"password no upper", func() validation.Result { return v.Password("abcdef1!") }, false},
		{"password no lower", func() validation.Result { return v.Password("ABCDEF1!") }, false},
		{"password no digit", func() validation.Result { return v.Password("Abcdefg!") }, false},
		{"password no symbol", func() validation.Result { return v.Password("Abcdefg1") }, false},
		{"password newline", func() validation.Result { return v.Password("Abcdef1!\n") }, false},
		{"password not trimmed", func() validation.Result { return v.Password(" Abcde1 ") }, true},
		{"password astral length", func() validation.Result { return v.Password("Aa1!😀😀") }, true},
		{"password astral too short", func() validation.Result { return v.Password("Aa1!😀") }, false},

		{"confirm equal", func() validation.Result { return v.Confirm("Abcdef1!", "Abcdef1!") }, true},
		{"confirm case", func() validation.Result { return v.Confirm("abcdef1!", "Abcdef1!") }, false},
		{"confirm trailing space", func() validation.Result { return v.Confirm("Abcdef1! ", "Abcdef1!") }, false},
		{"confirm both empty", func() validation.Result { return v.Confirm("", "") }, true},

		{"phone empty", func() validation.Result { return v.Phone("") }, true},
		{"phone blank", func() validation.Result { return v.Phone("   ") }, true},
		{"phone seven digits", func() validation.Result { return v.Phone("1234567") }, true},
		{"phone plus fifteen", func() validation.Result { return v.Phone("+123456789012345") }, true},
		{"phone sixteen", func() validation.Result { return v.Phone("1234567890123456") }, false},
		{"phone six", func() validation.Result { return v.Phone("123456") }, false},
		{"phone dashes", func() validation.Result { return v.Phone("555-123-4567") }, false},
		{"phone plus only", func() validation.Result { return v.Phone("+") }, false},
		{"phone double plus", func() validation.Result { return v.Phone("++1234567") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.check()
			if got.Valid != tt.valid {
				t.Fatalf("expected valid=%v, got %+v", tt.valid, got)
			}
			if got.Valid && got.Reason != "" {
				t.Fatalf("valid result carries reason %q", got.Reason)
			}
			if !got.Valid && got.Reason != validation.Reason(got.Field) {
				t.Fatalf("unexpected reason %q for %s", got.Reason, got.Field)
			}
		})
	}
}

func TestValidateAllValid(t *testing.T) {
	report := validation.New().Validate(model.Values{
		FullName:        "Ann Lee",
		Email:           "ann@example.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	})

	if !report.Valid {
		t.Fatalf("expected valid report, got %+v", report)
	}
	if len(report.Results) != len(model.FieldNames()) {
		t.Fatalf("expected a result per field, got %d", len(report.Results))
	}
	if invalid := report.Invalid(); len(invalid) != 0 {
		t.Fatalf("expected no invalid fields, got %v", invalid)
	}
}

func TestValidateCollectsEveryFailure(t *testing.T) {
	report := validation.New().Validate(model.Values{
		FullName:        " A ",
		Email:           "bad-email",
		Password:        "weak",
		ConfirmPassword: "Weak",
		Phone:           "12ab",
	})

	if report.Valid {
		t.Fatalf("expected invalid report")
	}

	want := map[model.FieldName]string{
		model.FieldFullName:        validation.ReasonFullName,
		model.FieldEmail:           validation.ReasonEmail,
		model.FieldPassword:        validation.ReasonPassword,
		model.FieldConfirmPassword: validation.ReasonConfirmPassword,
		model.FieldPhone:           validation.ReasonPhone,
	}
	if diff := cmp.Diff(want, report.Reasons()); diff != "" {
		t.Fatalf("reasons mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateMatchesFieldRules(t *testing.T) {
	v := validation.New()
	samples := []model.Values{
		{},
		{FullName: "Ann Lee", Email: "bad-email", Password: "Abcdef1!", ConfirmPassword: "Abcdef1!"},
		{FullName: "Ann", Email: "a@b.co", Password: "Abcdef1!", ConfirmPassword: "Abcdef1! ", Phone: " +1234567 "},
		{FullName: "Ann", Email: "a@b.co", Password: " Abcdef1!", ConfirmPassword: " Abcdef1!", Phone: "123"},
	}

	for i, values := range samples {
		report := v.Validate(values)
		for _, name := range model.FieldNames() {
			got, ok := report.Result(name)
			if !ok {
				t.Fatalf("sample %d: missing result for %s", i, name)
			}
			if diff := cmp.Diff(v.Field(name, values), got); diff != "" {
				t.Fatalf("sample %d field %s mismatch (-want +got):\n%s", i, name, diff)
			}
		}
	}
}

func TestValidateBadEmailOnly(t *testing.T) {
	report := validation.ValidateAll(model.Values{
		FullName:        "Ann Lee",
		Email:           "bad-email",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	})

	if diff := cmp.Diff([]model.FieldName{model.FieldEmail}, report.Invalid()); diff != "" {
		t.Fatalf("invalid fields mismatch (-want +got):\n%s", diff)
	}
}
