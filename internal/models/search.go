package models

// SearchParameters seed the outbound job-search link for a user. JobType and
// DatePosted carry the search engine's own codes, not display names.
type SearchParameters struct {
	Keywords   string `json:"keywords"`
	Location   string `json:"location"`
	JobType    string `json:"jobType"`
	DatePosted string `json:"datePosted"`
	Remote     bool   `json:"remote"`
}

// Date-posted recency codes (f_TPR): seconds counted back from now.
const (
	DatePostedPastDay   = "r86400"
	DatePostedPastWeek  = "r604800"
	DatePostedPastMonth = "r2592000"
)

// Defaults applied when profile metadata carries no preference.
const (
	DefaultLocation   = "India"
	DefaultCountry    = "India"
	DefaultGeoID      = "102713980"
	DefaultDistance   = "25"
	DefaultDatePosted = DatePostedPastWeek
)

var datePostedDisplayNames = map[string]string{
	DatePostedPastDay:   "Past 24 hours",
	DatePostedPastWeek:  "Past week",
	DatePostedPastMonth: "Past month",
}

// IsValidDatePosted reports whether code is a known recency window.
func IsValidDatePosted(code string) bool {
	_, ok := datePostedDisplayNames[code]
	return ok
}

// DatePostedDisplayName returns a human-readable label for a recency code,
// falling back to the code itself.
func DatePostedDisplayName(code string) string {
	if name, ok := datePostedDisplayNames[code]; ok {
		return name
	}
	return code
}
