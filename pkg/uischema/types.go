package uischema

import (
	"time"

	"github.com/goliatone/go-formguard/pkg/model"
)

// DefaultFormID identifies the bundled signup configuration.
const DefaultFormID = "signupForm"

// Config is one parsed form document.
type Config struct {
	// Source is the path the document was read from.
	Source string
	Form   FormConfig
	Fields map[model.FieldName]FieldConfig

	delay time.Duration
}

// FormConfig holds form-level settings.
type FormConfig struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	ResetDelay string `json:"resetDelay" yaml:"resetDelay"`
	Theme      string `json:"theme" yaml:"theme"`
	Variant    string `json:"variant" yaml:"variant"`
}

// FieldConfig overrides the presentation of a single field. Empty values
// keep the built-in text.
type FieldConfig struct {
	Label       string `json:"label" yaml:"label"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	HelpText    string `json:"help" yaml:"help"`
}

// Delay returns the parsed reset delay, zero when the document leaves it
// unset.
func (c Config) Delay() time.Duration {
	return c.delay
}

// Store holds loaded configurations keyed by form id.
type Store struct {
	forms map[string]Config
}
