package form

import (
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validation"
)

// Outcome is the aggregate submit decision derived from one fresh report.
type Outcome struct {
	Accepted bool              `json:"accepted"`
	Report   validation.Report `json:"report"`
	// Submitted holds the trimmed, non-secret values of an accepted submit.
	Submitted *Submission `json:"submitted,omitempty"`
}

// Submission is the simulated payload of an accepted form.
type Submission struct {
	ReceiptID string `json:"receiptId,omitempty"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Live applies real-time feedback: every slot reflects report, the banner is
// left exactly as it was.
func Live(state PresentationState, report validation.Report) PresentationState {
	return withSlots(state, report)
}

// Submit applies the submit gate. The slots always reflect report; the banner
// switches to success (with the trimmed name) when every field is valid and to
// the generic failure text otherwise.
func Submit(state PresentationState, values model.Values, report validation.Report) (PresentationState, Outcome) {
	next := withSlots(state, report)
	outcome := Outcome{Accepted: report.Valid, Report: report}

	if report.Valid {
		normalized := values.Normalized()
		next.Message = Message{Kind: MessageSuccess, Text: SuccessText(normalized.FullName), Visible: true}
		outcome.Submitted = &Submission{
			FullName: normalized.FullName,
			Email:    normalized.Email,
			Phone:    normalized.Phone,
		}
		return next, outcome
	}

	next.Message = Message{Kind: MessageFailure, Text: FailureText, Visible: true}
	return next, outcome
}
