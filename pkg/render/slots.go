package render

import (
	"strings"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
)

// Slot is one error message container as a sink draws it.
type Slot struct {
	ID    string          `json:"id"`
	Field model.FieldName `json:"field"`
	Text  string          `json:"text,omitempty"`
}

// SlotID returns the element id of the error container for name, falling
// back to "err" + the field name when fields do not describe it.
func SlotID(fields []model.Field, name model.FieldName) string {
	if field, ok := model.Lookup(fields, name); ok && strings.TrimSpace(field.Slot) != "" {
		return strings.TrimSpace(field.Slot)
	}
	return "err" + upperFirst(string(name))
}

// Slots lists every error container in field order with its current text.
func Slots(fields []model.Field, state form.PresentationState) []Slot {
	if len(fields) == 0 {
		fields = model.SignupFields()
	}
	out := make([]Slot, 0, len(fields))
	for _, field := range fields {
		out = append(out, Slot{
			ID:    SlotID(fields, field.Name),
			Field: field.Name,
			Text:  normalizeMessage(state.Error(field.Name)),
		})
	}
	return out
}

// SlotMessages maps slot ids to their text, dropping empty slots.
func SlotMessages(fields []model.Field, state form.PresentationState) map[string]string {
	out := make(map[string]string)
	for _, slot := range Slots(fields, state) {
		if slot.Text == "" {
			continue
		}
		out[slot.ID] = slot.Text
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ChangedSlots returns the slots whose text differs between two states, in
// field order. Sinks that print incrementally use it to avoid repeating
// unchanged feedback.
func ChangedSlots(fields []model.Field, previous, next form.PresentationState) []Slot {
	var out []Slot
	before := Slots(fields, previous)
	for i, slot := range Slots(fields, next) {
		if before[i].Text != slot.Text {
			out = append(out, slot)
		}
	}
	return out
}

func normalizeMessage(message string) string {
	return strings.TrimSpace(message)
}

func upperFirst(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
