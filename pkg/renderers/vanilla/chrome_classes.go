package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm     ChromeClass = "formguard-form"
	ClassHeader   ChromeClass = "formguard-header"
	ClassField    ChromeClass = "formguard-field"
	ClassHelp     ChromeClass = "formguard-help"
	ClassError    ChromeClass = "formguard-error"
	ClassActions  ChromeClass = "formguard-actions"
	ClassMessage  ChromeClass = "formguard-message"
	ClassFeedback ChromeClass = "formguard-feedback"
)

// Classes overrides the chrome classes per element. Empty entries keep the
// defaults.
type Classes struct {
	Form     string
	Header   string
	Field    string
	Help     string
	Error    string
	Actions  string
	Message  string
	Feedback string
}

// DefaultClasses returns the built-in class names.
func DefaultClasses() Classes {
	return Classes{
		Form:     string(ClassForm),
		Header:   string(ClassHeader),
		Field:    string(ClassField),
		Help:     string(ClassHelp),
		Error:    string(ClassError),
		Actions:  string(ClassActions),
		Message:  string(ClassMessage),
		Feedback: string(ClassFeedback),
	}
}

func (c Classes) merge(override Classes) Classes {
	pick := func(base, value string) string {
		if value == "" {
			return base
		}
		return value
	}
	return Classes{
		Form:     pick(c.Form, override.Form),
		Header:   pick(c.Header, override.Header),
		Field:    pick(c.Field, override.Field),
		Help:     pick(c.Help, override.Help),
		Error:    pick(c.Error, override.Error),
		Actions:  pick(c.Actions, override.Actions),
		Message:  pick(c.Message, override.Message),
		Feedback: pick(c.Feedback, override.Feedback),
	}
}

func (c Classes) view() map[string]any {
	return map[string]any{
		"form":     c.Form,
		"header":   c.Header,
		"field":    c.Field,
		"help":     c.Help,
		"error":    c.Error,
		"actions":  c.Actions,
		"message":  c.Message,
		"feedback": c.Feedback,
	}
}
