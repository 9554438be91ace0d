// Package testsupport provides deterministic doubles for the controller ports
// (clock, input source, presentation sink) plus small helpers shared by
// renderer tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/model"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// ValidValues returns a form that passes every rule.
func ValidValues() model.Values {
	return model.Values{
		FullName:        "Ann Lee",
		Email:           "ann@example.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}
}

// CompareValues returns a diff string if the values differ.
func CompareValues(want, got model.Values) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
