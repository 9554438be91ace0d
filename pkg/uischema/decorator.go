package uischema

import (
	"github.com/goliatone/go-formguard/pkg/model"
)

// Apply copies configured labels, placeholders and help text onto fields.
// Fields without configuration are left untouched.
func (c Config) Apply(fields []model.Field) error {
	for i := range fields {
		override, ok := c.Fields[fields[i].Name]
		if !ok {
			continue
		}
		if override.Label != "" {
			fields[i].Label = override.Label
		}
		if override.Placeholder != "" {
			fields[i].Placeholder = override.Placeholder
		}
		if override.HelpText != "" {
			fields[i].HelpText = override.HelpText
		}
	}
	return nil
}

// Decorator applies a stored form configuration to field descriptors.
type Decorator struct {
	store  *Store
	formID string
}

var _ model.Decorator = (*Decorator)(nil)

// NewDecorator builds a Decorator for formID backed by store. When the store
// holds no such form, the decorator is a no-op.
func NewDecorator(store *Store, formID string) *Decorator {
	return &Decorator{store: store, formID: formID}
}

// Decorate implements model.Decorator.
func (d *Decorator) Decorate(fields []model.Field) error {
	if d == nil {
		return nil
	}
	cfg, ok := d.store.Form(d.formID)
	if !ok {
		return nil
	}
	return cfg.Apply(fields)
}

// DecoratedFields returns the signup descriptors decorated with c.
func (c Config) DecoratedFields() []model.Field {
	fields := model.SignupFields()
	_ = c.Apply(fields)
	return fields
}
