package offers

import (
	"career-offer-tracker/internal/api/profile"
	"career-offer-tracker/internal/models"
)

// Branch messages shown to the user alongside the computed permission state.
const (
	msgFullAccess      = "Job and internship search are enabled."
	msgInternshipsOnly = "Internship search is enabled. Full-time job search unlocks after you complete year 3."
	msgIneligible      = "Offer search unlocks after you complete year 2 of your program."
	msgNoRecord        = "Academic progress is unavailable, so all listing categories are enabled."
)

// EvaluateEligibility maps academic metadata to a permission state.
//
// Completed year 3 or 4 grants full access; year 2 grants internships only;
// an academic record with none of those years grants nothing. A missing
// record (nil metadata or absent yearsCompleted, including a failed metadata
// fetch) defaults to full access: ineligibility is never inferred from a
// network or parsing failure.
func EvaluateEligibility(meta *profile.Metadata) models.Eligibility {
	if meta == nil || meta.YearsCompleted == nil {
		return models.Eligibility{Level: models.AccessFull, Message: msgNoRecord}
	}

	completed := make(map[int]bool, len(meta.YearsCompleted))
	for _, y := range meta.YearsCompleted {
		completed[y] = true
	}

	switch {
	case completed[3] || completed[4]:
		return models.Eligibility{Level: models.AccessFull, Message: msgFullAccess}
	case completed[2]:
		return models.Eligibility{Level: models.AccessInternshipsOnly, Message: msgInternshipsOnly}
	default:
		return models.Eligibility{Level: models.AccessNone, Message: msgIneligible}
	}
}
