package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"career-offer-tracker/internal/api/profile"
	"career-offer-tracker/internal/device"
	"career-offer-tracker/internal/models"
	"career-offer-tracker/internal/offers"
	"career-offer-tracker/internal/server"
	"career-offer-tracker/internal/storage/memory"
)

type stubRemote struct {
	meta *profile.Metadata
}

func (s *stubRemote) FetchMetadata(context.Context, string) (*profile.Metadata, error) {
	return s.meta, nil
}

func (s *stubRemote) ReplaceFavorites(context.Context, string, []models.Offer) error {
	return nil
}

func (s *stubRemote) RemoveFavorites(context.Context, string, []models.Offer) error {
	return nil
}

func newTestRouter(remote *stubRemote) http.Handler {
	log := zap.NewNop()
	engine := offers.New(memory.New(), remote, log)
	handler := server.NewHandler(engine, device.New(nil, log), log)
	return server.NewRouter(handler, log)
}

func TestGetSession(t *testing.T) {
	router := newTestRouter(&stubRemote{meta: &profile.Metadata{
		YearsCompleted: []int{1, 2},
		Specialization: "Computer Science",
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/offers/session", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var session struct {
		Eligibility      models.EligibilityView  `json:"eligibility"`
		SearchParameters models.SearchParameters `json:"searchParameters"`
		Favorites        []models.Offer          `json:"favorites"`
		Recent           []models.Offer          `json:"recent"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&session); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}

	if session.Eligibility.CanSearchJobs {
		t.Error("a year-2 student must not get job search")
	}
	if !session.Eligibility.CanSearchInternships {
		t.Error("a year-2 student must get internship search")
	}
	if session.SearchParameters.JobType != "I" {
		t.Errorf("derived jobType = %q, want internship code", session.SearchParameters.JobType)
	}

	// The session request must establish the tracking cookie.
	var hasCookie bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == device.CookieName {
			hasCookie = true
		}
	}
	if !hasCookie {
		t.Errorf("session response must set the %s cookie", device.CookieName)
	}
}

func TestVisitThenRecent(t *testing.T) {
	router := newTestRouter(&stubRemote{})

	body := `{"title":"Backend Intern at Acme","url":"https://example.com/jobs/1","searchParameters":{"keywords":"Go"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/offers/visits", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("visit status = %d, want 200", rec.Code)
	}

	cookie := rec.Result().Cookies()[0]
	req = httptest.NewRequest(http.MethodGet, "/api/offers/recent", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp struct {
		Recent []models.Offer `json:"recent"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if len(resp.Recent) != 1 || resp.Recent[0].URL != "https://example.com/jobs/1" {
		t.Errorf("recent = %+v, want the recorded visit", resp.Recent)
	}
}

func TestDeleteFavorite_UnknownURLReturns404(t *testing.T) {
	router := newTestRouter(&stubRemote{})

	req := httptest.NewRequest(http.MethodDelete, "/api/offers/favorites?url=https%3A%2F%2Fexample.com%2Fnone", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown url", rec.Code)
	}
}

func TestBuildSearchURL_Endpoint(t *testing.T) {
	router := newTestRouter(&stubRemote{})

	req := httptest.NewRequest(http.MethodGet, "/api/offers/search-url?keywords=React&datePosted=r604800", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if !strings.HasPrefix(resp.URL, offers.SearchBaseURL) {
		t.Errorf("built url = %q, want prefix %q", resp.URL, offers.SearchBaseURL)
	}
}
