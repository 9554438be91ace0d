package render

import (
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/palette"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the form state.
type RenderOptions struct {
	// FormID is the id attribute of the form element. Defaults to
	// "signupForm".
	FormID string
	// Title is shown above the fields when set.
	Title string
	// Fields overrides the default signup descriptors, typically after a UI
	// schema decorated labels and help text.
	Fields []model.Field
	// Palette styles the form message banner. The zero value selects
	// palette.Default().
	Palette *palette.Palette
}

// DefaultFormID is the form element id used when none is configured.
const DefaultFormID = "signupForm"

// Normalize fills defaults.
func (o RenderOptions) Normalize() RenderOptions {
	if o.FormID == "" {
		o.FormID = DefaultFormID
	}
	if len(o.Fields) == 0 {
		o.Fields = model.SignupFields()
	}
	if o.Palette == nil {
		p := palette.Default()
		o.Palette = &p
	}
	return o
}
