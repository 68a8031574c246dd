package models

// AccessLevel orders the listing categories a user may search. The ordering
// carries the implication chain: full access implies internship access, and
// any access implies eligibility.
type AccessLevel int

const (
	// AccessNone: the user may not search any listing category yet.
	AccessNone AccessLevel = iota
	// AccessInternshipsOnly: internship listings only.
	AccessInternshipsOnly
	// AccessFull: jobs and internships.
	AccessFull
)

func (l AccessLevel) String() string {
	switch l {
	case AccessInternshipsOnly:
		return "internships_only"
	case AccessFull:
		return "full"
	default:
		return "none"
	}
}

// Eligibility is the permission state derived from academic progress.
type Eligibility struct {
	Level   AccessLevel `json:"level"`
	Message string      `json:"message"`
}

func (e Eligibility) CanSearchJobs() bool {
	return e.Level == AccessFull
}

func (e Eligibility) CanSearchInternships() bool {
	return e.Level >= AccessInternshipsOnly
}

func (e Eligibility) IsEligible() bool {
	return e.Level > AccessNone
}

// EligibilityView is the wire shape handed to the portal UI; the booleans are
// derived from Level so illegal combinations cannot be produced.
type EligibilityView struct {
	CanSearchJobs        bool   `json:"canSearchJobs"`
	CanSearchInternships bool   `json:"canSearchInternships"`
	IsEligible           bool   `json:"isEligible"`
	Message              string `json:"message"`
}

// View flattens the eligibility into its client-facing boolean form.
func (e Eligibility) View() EligibilityView {
	return EligibilityView{
		CanSearchJobs:        e.CanSearchJobs(),
		CanSearchInternships: e.CanSearchInternships(),
		IsEligible:           e.IsEligible(),
		Message:              e.Message,
	}
}
