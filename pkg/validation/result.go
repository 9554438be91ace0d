package validation

import "github.com/goliatone/go-formguard/pkg/model"

// Fixed human-readable reasons reported for invalid fields.
const (
	ReasonFullName        = "Name must be at least 2 characters"
	ReasonEmail           = "Please enter a valid email"
	ReasonPassword        = "Password too weak (min 8 characters, mix upper/lower/number/symbol)"
	ReasonConfirmPassword = "Passwords don't match"
	ReasonPhone           = "Phone must be digits, optional + and 7-15 chars"
)

// Reason returns the message shown when name fails its rule.
func Reason(name model.FieldName) string {
	switch name {
	case model.FieldFullName:
		return ReasonFullName
	case model.FieldEmail:
		return ReasonEmail
	case model.FieldPassword:
		return ReasonPassword
	case model.FieldConfirmPassword:
		return ReasonConfirmPassword
	case model.FieldPhone:
		return ReasonPhone
	default:
		return ""
	}
}

// Result is the outcome of one field rule.
type Result struct {
	Field  model.FieldName `json:"field"`
	Valid  bool            `json:"valid"`
	Reason string          `json:"reason,omitempty"`
}

func outcome(name model.FieldName, ok bool) Result {
	if ok {
		return Result{Field: name, Valid: true}
	}
	return Result{Field: name, Reason: Reason(name)}
}

// Report captures one fresh validation pass over every field. Valid is the
// logical AND of the individual results.
type Report struct {
	Valid   bool     `json:"valid"`
	Results []Result `json:"results"`
}

// Result returns the outcome recorded for name.
func (r Report) Result(name model.FieldName) (Result, bool) {
	for _, result := range r.Results {
		if result.Field == name {
			return result, true
		}
	}
	return Result{}, false
}

// Reasons maps every field to its reason, using an empty string for valid
// fields.
func (r Report) Reasons() map[model.FieldName]string {
	out := make(map[model.FieldName]string, len(r.Results))
	for _, result := range r.Results {
		out[result.Field] = result.Reason
	}
	return out
}

// Invalid lists the fields that failed, in form order.
func (r Report) Invalid() []model.FieldName {
	var out []model.FieldName
	for _, result := range r.Results {
		if !result.Valid {
			out = append(out, result.Field)
		}
	}
	return out
}

func newReport(results []Result) Report {
	report := Report{Valid: true, Results: results}
	for _, result := range results {
		if !result.Valid {
			report.Valid = false
		}
	}
	return report
}
