package models

import "time"

// JobType classifies a tracked listing.
type JobType string

const (
	JobTypeInternship  JobType = "Internship"
	JobTypeFullTime    JobType = "Full-time"
	JobTypePartTime    JobType = "Part-time"
	JobTypeUnspecified JobType = ""
)

// Offer is a single external job/internship listing. The destination URL is
// the sole identity: two offers with the same URL are the same entity and the
// most recently written record wins.
type Offer struct {
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	Source       string     `json:"source"`
	Date         time.Time  `json:"date"`
	JobType      JobType    `json:"jobType"`
	Location     string     `json:"location"`
	Company      string     `json:"company"`
	Keywords     string     `json:"keywords"`
	VisitCount   int        `json:"visitCount"`
	LastVisited  time.Time  `json:"lastVisited"`
	FavoriteDate *time.Time `json:"favoriteDate,omitempty"`
}

const (
	// CollectionRecent holds the bounded visit history, local-only.
	CollectionRecent = "recentJobOffers"
	// CollectionFavorites holds bookmarked offers, mirrored to the remote profile.
	CollectionFavorites = "favoriteJobOffers"

	// MaxRecentOffers bounds the recent collection; the oldest entry is
	// evicted on overflow.
	MaxRecentOffers = 20

	// DefaultSource is attached to offers whose origin is not known.
	DefaultSource = "LinkedIn"
)

// JobTypeSearchCodes maps a job type to the search engine's f_JT code.
var JobTypeSearchCodes = map[JobType]string{
	JobTypeInternship: "I",
	JobTypeFullTime:   "F",
	JobTypePartTime:   "P",
}

// SearchCodeJobTypes is the reverse mapping.
var SearchCodeJobTypes = map[string]JobType{
	"I": JobTypeInternship,
	"F": JobTypeFullTime,
	"P": JobTypePartTime,
}

// SearchCode returns the f_JT code for the job type, or "" when the type has
// no code (unspecified matches all categories).
func (t JobType) SearchCode() string {
	return JobTypeSearchCodes[t]
}

// JobTypeFromSearchCode resolves an f_JT code back to a job type.
// Unknown or empty codes map to JobTypeUnspecified.
func JobTypeFromSearchCode(code string) JobType {
	if t, ok := SearchCodeJobTypes[code]; ok {
		return t
	}
	return JobTypeUnspecified
}
