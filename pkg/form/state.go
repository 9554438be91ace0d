package form

import (
	"fmt"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validation"
)

// FailureText is shown in the banner when a submit is rejected.
const FailureText = "Please fix the errors above and try again."

// SuccessText builds the banner text for an accepted submit. name is expected
// to be trimmed already.
func SuccessText(name string) string {
	return fmt.Sprintf("Success! Thanks %s. Your submission is valid.", name)
}

// MessageKind selects the banner palette.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageFailure MessageKind = "failure"
)

// Message is the form-level banner.
type Message struct {
	Kind    MessageKind `json:"kind,omitempty"`
	Text    string      `json:"text,omitempty"`
	Visible bool        `json:"visible"`
}

// PresentationState is everything a presentation sink renders: one error
// text per field (empty means no error) and the banner.
type PresentationState struct {
	Errors  map[model.FieldName]string `json:"errors"`
	Message Message                    `json:"message"`
}

// Cleared returns the initial state: every slot empty and the banner hidden.
func Cleared() PresentationState {
	errs := make(map[model.FieldName]string, len(model.FieldNames()))
	for _, name := range model.FieldNames() {
		errs[name] = ""
	}
	return PresentationState{Errors: errs}
}

// Error returns the slot text for name.
func (s PresentationState) Error(name model.FieldName) string {
	return s.Errors[name]
}

// HasErrors reports whether any slot holds text.
func (s PresentationState) HasErrors() bool {
	for _, text := range s.Errors {
		if text != "" {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can keep snapshots.
func (s PresentationState) Clone() PresentationState {
	out := PresentationState{Message: s.Message}
	if s.Errors != nil {
		out.Errors = make(map[model.FieldName]string, len(s.Errors))
		for name, text := range s.Errors {
			out.Errors[name] = text
		}
	}
	return out
}

// Equal reports whether two states render identically.
func (s PresentationState) Equal(other PresentationState) bool {
	if s.Message != other.Message {
		return false
	}
	for _, name := range model.FieldNames() {
		if s.Errors[name] != other.Errors[name] {
			return false
		}
	}
	return true
}

func withSlots(state PresentationState, report validation.Report) PresentationState {
	out := state.Clone()
	if out.Errors == nil {
		out.Errors = make(map[model.FieldName]string, len(model.FieldNames()))
	}
	for _, name := range model.FieldNames() {
		out.Errors[name] = ""
	}
	for _, result := range report.Results {
		out.Errors[result.Field] = result.Reason
	}
	return out
}
