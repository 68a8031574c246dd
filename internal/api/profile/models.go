package profile

import "career-offer-tracker/internal/models"

// Metadata is the career-relevant slice of the user's remote profile record.
// JobOffers is the remote favorites field mirrored against the device-local
// favorites collection.
type Metadata struct {
	JobOffers      []models.Offer `json:"jobOffers"`
	YearsCompleted []int          `json:"yearsCompleted"`
	Specialization string         `json:"specialization"`
	Skills         []Skill        `json:"skills"`
	Location       string         `json:"location"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

type metadataEnvelope struct {
	Metadata Metadata `json:"metadata"`
}

// favoritesPayload is the body for PATCH/DELETE /metadata.
type favoritesPayload struct {
	JobOffers []models.Offer `json:"jobOffers"`
}

type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}
