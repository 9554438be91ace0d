package model

import (
	"fmt"
	"strings"
	"unicode"
)

// Values is a point-in-time snapshot of the five inputs as read from an input
// source. The `validate` tags name the rules registered by pkg/validation.
type Values struct {
	FullName        string `json:"fullName" form:"fullName" validate:"fullname"`
	Email           string `json:"email" form:"email" validate:"looseemail"`
	Password        string `json:"password" form:"password" validate:"strongpassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"eqfield=Password"`
	Phone           string `json:"phone" form:"phone" validate:"omitempty,phone"`
}

// Get returns the raw value for name.
func (v Values) Get(name FieldName) string {
	switch name {
	case FieldFullName:
		return v.FullName
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	case FieldPhone:
		return v.Phone
	default:
		return ""
	}
}

// Set writes the raw value for name.
func (v *Values) Set(name FieldName, value string) error {
	switch name {
	case FieldFullName:
		v.FullName = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	case FieldPhone:
		v.Phone = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Normalized returns a copy with every field marked Trimmed in SignupFields
// stripped of surrounding white space. Passwords are left untouched.
func (v Values) Normalized() Values {
	out := v
	for _, name := range FieldNames() {
		_ = out.Set(name, NormalizeField(name, v.Get(name)))
	}
	return out
}

// NormalizeField trims value when the signup descriptor for name is marked
// Trimmed and returns it unchanged otherwise.
func NormalizeField(name FieldName, value string) string {
	if field, ok := Lookup(SignupFields(), name); ok && field.Trimmed {
		return Trim(value)
	}
	return value
}

// Empty reports whether every input is blank.
func (v Values) Empty() bool {
	return v == Values{}
}

// Trim strips leading and trailing white space as defined by IsSpace.
func Trim(value string) string {
	return strings.TrimFunc(value, IsSpace)
}

// IsSpace matches the white space browsers strip from input values: Unicode
// white space plus the byte order mark, excluding NEL (U+0085).
func IsSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
