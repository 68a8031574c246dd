package offers_test

import (
	"net/url"
	"strings"
	"testing"

	"career-offer-tracker/internal/models"
	"career-offer-tracker/internal/offers"
)

func parseSearchURL(t *testing.T, raw string) url.Values {
	t.Helper()
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("built URL %q does not parse: %v", raw, err)
	}
	if !strings.HasPrefix(raw, offers.SearchBaseURL) {
		t.Fatalf("built URL %q does not start with %q", raw, offers.SearchBaseURL)
	}
	return parsed.Query()
}

func TestBuildSearchURL_FixedFilters(t *testing.T) {
	q := parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{
		Keywords:   "React",
		Location:   "Pune, India",
		DatePosted: models.DatePostedPastWeek,
	}, fullAccess()))

	if q.Get("keywords") != "React" {
		t.Errorf("keywords = %q, want React", q.Get("keywords"))
	}
	if q.Get("f_E") != "1" {
		t.Errorf("f_E = %q, want entry-level filter 1", q.Get("f_E"))
	}
	if q.Get("f_TPR") != models.DatePostedPastWeek {
		t.Errorf("f_TPR = %q, want %q", q.Get("f_TPR"), models.DatePostedPastWeek)
	}
	if q.Get("sortBy") != "R" {
		t.Errorf("sortBy = %q, want R", q.Get("sortBy"))
	}
	if q.Get("geoId") != models.DefaultGeoID {
		t.Errorf("geoId = %q, want %q", q.Get("geoId"), models.DefaultGeoID)
	}
	if q.Get("distance") != models.DefaultDistance {
		t.Errorf("distance = %q, want %q", q.Get("distance"), models.DefaultDistance)
	}
	if q.Has("f_WT") {
		t.Error("f_WT must be absent when remote is false")
	}
}

func TestBuildSearchURL_InternshipsOnlyForcesFilterAndKeyword(t *testing.T) {
	q := parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{
		Keywords:   "React",
		JobType:    "I",
		DatePosted: models.DatePostedPastWeek,
	}, internshipsOnly()))

	if q.Get("f_JT") != "I" {
		t.Errorf("f_JT = %q, want I", q.Get("f_JT"))
	}
	if !strings.Contains(strings.ToLower(q.Get("keywords")), "internship") {
		t.Errorf("keywords = %q, want an internship synonym appended", q.Get("keywords"))
	}
}

func TestBuildSearchURL_InternshipKeywordNotDuplicated(t *testing.T) {
	q := parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{
		Keywords: "marketing intern",
	}, internshipsOnly()))

	if got := q.Get("keywords"); got != "marketing intern" {
		t.Errorf("keywords = %q, synonym already present must not be appended", got)
	}
}

func TestBuildSearchURL_LocationSuffixedWithCountry(t *testing.T) {
	q := parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{Location: "Pune"}, fullAccess()))
	if q.Get("location") != "Pune, "+models.DefaultCountry {
		t.Errorf("location = %q, want country suffix appended", q.Get("location"))
	}

	q = parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{Location: "Pune, India"}, fullAccess()))
	if q.Get("location") != "Pune, India" {
		t.Errorf("location = %q, country already present must not be appended again", q.Get("location"))
	}

	q = parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{Location: models.DefaultCountry}, fullAccess()))
	if q.Get("location") != models.DefaultCountry {
		t.Errorf("location = %q, bare country must not be suffixed with itself", q.Get("location"))
	}
}

func TestBuildSearchURL_CountrySubstringCityStillSuffixed(t *testing.T) {
	// "Indianapolis" contains the country name as a substring but is not
	// a location inside it, so the country suffix still applies.
	q := parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{Location: "Indianapolis"}, fullAccess()))
	if q.Get("location") != "Indianapolis, "+models.DefaultCountry {
		t.Errorf("location = %q, want country suffix on a substring-colliding city", q.Get("location"))
	}
}

func TestBuildSearchURL_RemoteFilter(t *testing.T) {
	q := parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{Remote: true}, fullAccess()))
	if q.Get("f_WT") != "2" {
		t.Errorf("f_WT = %q, want 2 when remote is requested", q.Get("f_WT"))
	}
}

func TestBuildSearchURL_EmptyDatePostedDefaults(t *testing.T) {
	q := parseSearchURL(t, offers.BuildSearchURL(models.SearchParameters{}, fullAccess()))
	if q.Get("f_TPR") != models.DefaultDatePosted {
		t.Errorf("f_TPR = %q, want default %q", q.Get("f_TPR"), models.DefaultDatePosted)
	}
}
