package model

// FieldName identifies one of the signup form inputs.
type FieldName string

const (
	FieldFullName        FieldName = "fullName"
	FieldEmail           FieldName = "email"
	FieldPassword        FieldName = "password"
	FieldConfirmPassword FieldName = "confirmPassword"
	FieldPhone           FieldName = "phone"
)

// FieldNames lists the form inputs in display order.
func FieldNames() []FieldName {
	return []FieldName{
		FieldFullName,
		FieldEmail,
		FieldPassword,
		FieldConfirmPassword,
		FieldPhone,
	}
}

// Valid reports whether name is one of the known form inputs.
func (name FieldName) Valid() bool {
	switch name {
	case FieldFullName, FieldEmail, FieldPassword, FieldConfirmPassword, FieldPhone:
		return true
	default:
		return false
	}
}

// Field describes how an input is presented and read. Struct fields are
// annotated so renderers can serialise them directly when needed.
type Field struct {
	Name        FieldName `json:"name"`
	Label       string    `json:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	HelpText    string    `json:"helpText,omitempty"`
	InputType   string    `json:"inputType"`
	Required    bool      `json:"required"`
	// Trimmed fields are validated after stripping surrounding white space;
	// the password pair is always compared raw.
	Trimmed bool `json:"trimmed"`
	// Secret fields are never echoed back by renderers or serialisers.
	Secret bool `json:"secret"`
	// Slot is the element id of the error message container.
	Slot string `json:"slot"`
}

// SignupFields returns the default descriptors for the signup form.
func SignupFields() []Field {
	return []Field{
		{Name: FieldFullName, Label: "Full name", InputType: "text", Required: true, Trimmed: true, Slot: "errName"},
		{Name: FieldEmail, Label: "Email", InputType: "email", Required: true, Trimmed: true, Slot: "errEmail"},
		{Name: FieldPassword, Label: "Password", InputType: "password", Required: true, Secret: true, Slot: "errPassword"},
		{Name: FieldConfirmPassword, Label: "Confirm password", InputType: "password", Required: true, Secret: true, Slot: "errConfirm"},
		{Name: FieldPhone, Label: "Phone (optional)", InputType: "tel", Trimmed: true, Slot: "errPhone"},
	}
}

// Lookup returns the descriptor for name from fields.
func Lookup(fields []Field, name FieldName) (Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
