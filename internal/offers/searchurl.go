package offers

import (
	"net/url"
	"strings"

	"career-offer-tracker/internal/models"
)

// SearchBaseURL is the external job-search endpoint outbound links point at.
const SearchBaseURL = "https://www.linkedin.com/jobs/search/"

// internshipSynonyms are the keyword terms accepted as "already asking for an
// internship" when the eligibility forces internship-only search.
var internshipSynonyms = []string{"intern", "internship", "trainee", "apprentice", "co-op"}

// BuildSearchURL turns search parameters and the user's eligibility into an
// outbound search-engine URL.
//
// An internships-only user always gets the internship job-type filter, and an
// internship keyword is appended unless one is already present. A fixed
// entry-level experience filter, sort order, geography and distance are
// always applied.
func BuildSearchURL(params models.SearchParameters, elig models.Eligibility) string {
	keywords := strings.TrimSpace(params.Keywords)
	jobType := params.JobType

	if !elig.CanSearchJobs() && elig.CanSearchInternships() {
		jobType = models.JobTypeInternship.SearchCode()
		if !containsInternshipTerm(keywords) {
			keywords = strings.TrimSpace(keywords + " internship")
		}
	}

	location := strings.TrimSpace(params.Location)
	if location == "" {
		location = models.DefaultLocation
	}
	if !hasCountrySegment(location, models.DefaultCountry) {
		location += ", " + models.DefaultCountry
	}

	datePosted := params.DatePosted
	if datePosted == "" {
		datePosted = models.DefaultDatePosted
	}

	query := url.Values{}
	if keywords != "" {
		query.Set("keywords", keywords)
	}
	query.Set("location", location)
	if jobType != "" {
		query.Set("f_JT", jobType)
	}
	query.Set("f_E", "1")
	query.Set("f_TPR", datePosted)
	if params.Remote {
		query.Set("f_WT", "2")
	}
	query.Set("sortBy", "R")
	query.Set("geoId", models.DefaultGeoID)
	query.Set("distance", models.DefaultDistance)

	return SearchBaseURL + "?" + query.Encode()
}

// hasCountrySegment reports whether one of the location's comma-separated
// segments is the country itself. A plain substring check would mistake
// "Indianapolis" for a location already carrying "India".
func hasCountrySegment(location, country string) bool {
	for _, segment := range strings.Split(location, ",") {
		if strings.EqualFold(strings.TrimSpace(segment), country) {
			return true
		}
	}
	return false
}

func containsInternshipTerm(keywords string) bool {
	lowered := strings.ToLower(keywords)
	for _, term := range internshipSynonyms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
