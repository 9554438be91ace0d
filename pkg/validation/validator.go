package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formguard/pkg/model"
)

// Custom tags registered on the underlying validator. model.Values refers to
// them in its `validate` struct tags.
const (
	TagFullName       = "fullname"
	TagLooseEmail     = "looseemail"
	TagStrongPassword = "strongpassword"
	TagPhone          = "phone"

	tagConfirm = "eqcsfield"
)

// Validator wraps a go-playground validator with the signup rules registered.
// It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns a shared Validator instance.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// New creates a Validator with the signup rules registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	mustRegister(v, TagFullName, IsFullName)
	mustRegister(v, TagLooseEmail, IsLooseEmail)
	mustRegister(v, TagStrongPassword, IsStrongPassword)
	mustRegister(v, TagPhone, IsPhone)

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, predicate func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return predicate(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// FullName validates the trimmed name.
func (val *Validator) FullName(value string) Result {
	return outcome(model.FieldFullName, val.v.Var(model.NormalizeField(model.FieldFullName, value), TagFullName) == nil)
}

// Email validates the trimmed email address.
func (val *Validator) Email(value string) Result {
	return outcome(model.FieldEmail, val.v.Var(model.NormalizeField(model.FieldEmail, value), TagLooseEmail) == nil)
}

// Password validates the raw password.
func (val *Validator) Password(value string) Result {
	return outcome(model.FieldPassword, val.v.Var(value, TagStrongPassword) == nil)
}

// Confirm validates that confirm equals the current password exactly,
// including case and surrounding white space.
func (val *Validator) Confirm(confirm, password string) Result {
	return outcome(model.FieldConfirmPassword, val.v.VarWithValue(confirm, password, tagConfirm) == nil)
}

// Phone validates the trimmed phone number. An empty value is valid.
func (val *Validator) Phone(value string) Result {
	return outcome(model.FieldPhone, val.v.Var(model.NormalizeField(model.FieldPhone, value), "omitempty,"+TagPhone) == nil)
}

// Field runs the rule for name against the live values. The password pair is
// always read together so confirmPassword reflects the current password.
func (val *Validator) Field(name model.FieldName, values model.Values) Result {
	switch name {
	case model.FieldFullName:
		return val.FullName(values.FullName)
	case model.FieldEmail:
		return val.Email(values.Email)
	case model.FieldPassword:
		return val.Password(values.Password)
	case model.FieldConfirmPassword:
		return val.Confirm(values.ConfirmPassword, values.Password)
	case model.FieldPhone:
		return val.Phone(values.Phone)
	default:
		return Result{Field: name, Reason: fmt.Sprintf("unknown field %q", name)}
	}
}

// Validate runs every rule against values in one pass. Nothing is cached:
// each call inspects the values it is given.
func (val *Validator) Validate(values model.Values) Report {
	err := val.v.Struct(values.Normalized())
	if err == nil {
		return newReport(allValid())
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return val.validateEach(values)
	}

	failed := make(map[model.FieldName]struct{}, len(verrs))
	for _, fe := range verrs {
		failed[model.FieldName(fe.Field())] = struct{}{}
	}

	results := make([]Result, 0, len(model.FieldNames()))
	for _, name := range model.FieldNames() {
		_, bad := failed[name]
		results = append(results, outcome(name, !bad))
	}
	return newReport(results)
}

func (val *Validator) validateEach(values model.Values) Report {
	results := make([]Result, 0, len(model.FieldNames()))
	for _, name := range model.FieldNames() {
		results = append(results, val.Field(name, values))
	}
	return newReport(results)
}

func allValid() []Result {
	results := make([]Result, 0, len(model.FieldNames()))
	for _, name := range model.FieldNames() {
		results = append(results, outcome(name, true))
	}
	return results
}

// ValidateFullName checks a name with the shared validator.
func ValidateFullName(value string) Result { return Default().FullName(value) }

// ValidateEmail checks an email with the shared validator.
func ValidateEmail(value string) Result { return Default().Email(value) }

// ValidatePassword checks a password with the shared validator.
func ValidatePassword(value string) Result { return Default().Password(value) }

// ValidateConfirm checks a confirmation against a password with the shared
// validator.
func ValidateConfirm(confirm, password string) Result {
	return Default().Confirm(confirm, password)
}

// ValidatePhone checks a phone number with the shared validator.
func ValidatePhone(value string) Result { return Default().Phone(value) }

// ValidateAll runs a full pass with the shared validator.
func ValidateAll(values model.Values) Report { return Default().Validate(values) }
