package validation_test

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validation"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1200)
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestPhoneProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("matching numbers are valid", prop.ForAll(
		func(phone string) bool {
			return validation.ValidatePhone(phone).Valid
		},
		gen.RegexMatch(`[+]?[0-9]{7,15}`),
	))

	properties.Property("non-empty values are valid iff they match the pattern", prop.ForAll(
		func(raw string) bool {
			trimmed := model.Trim(raw)
			if trimmed == "" {
				return validation.ValidatePhone(raw).Valid
			}
			return validation.ValidatePhone(raw).Valid == phonePattern.MatchString(trimmed)
		},
		gen.OneGenOf(gen.AnyString(), gen.NumString(), gen.RegexMatch(`[ ]?[+]?[0-9a-z]{0,18}[ ]?`)),
	))

	properties.Property("blank values are always valid", prop.ForAll(
		func(n int) bool {
			blank := ""
			for i := 0; i < n; i++ {
				blank += " \t"
			}
			return validation.ValidatePhone(blank).Valid
		},
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}

func TestConfirmProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("confirm is valid iff values are identical", prop.ForAll(
		func(password, confirm string) bool {
			return validation.ValidateConfirm(confirm, password).Valid == (confirm == password)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("a password always confirms itself", prop.ForAll(
		func(password string) bool {
			return validation.ValidateConfirm(password, password).Valid &&
				!validation.ValidateConfirm(password+" ", password).Valid
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
