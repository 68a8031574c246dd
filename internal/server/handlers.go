package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"career-offer-tracker/internal/device"
	"career-offer-tracker/internal/models"
	"career-offer-tracker/internal/offers"
)

// Handler exposes the offer engine to the portal UI. The device is resolved
// from the tracking cookie on every request; the profile bearer token is
// passed through from the Authorization header, and its absence means a guest
// device whose mutations stay local.
type Handler struct {
	engine   *offers.Service
	identity *device.Identity
	logger   *zap.Logger
}

func NewHandler(engine *offers.Service, identity *device.Identity, logger *zap.Logger) *Handler {
	return &Handler{
		engine:   engine,
		identity: identity,
		logger:   logger,
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// GetSession bootstraps the offers page: eligibility, default search
// parameters, and both collections with remote favorites merged in.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)
	session := h.engine.Bootstrap(r.Context(), bearerToken(r), deviceID)
	h.writeJSON(w, http.StatusOK, session)
}

func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"recent": h.engine.ListRecent(r.Context(), deviceID),
	})
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": h.engine.ListFavorites(r.Context(), deviceID),
	})
}

type visitRequest struct {
	Title            string                  `json:"title"`
	URL              string                  `json:"url"`
	SearchParameters models.SearchParameters `json:"searchParameters"`
}

// RecordVisit upserts a clicked listing into the recent collection.
func (h *Handler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)

	var req visitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	offer, err := h.engine.RecordVisit(r.Context(), deviceID, req.Title, req.URL, req.SearchParameters)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"offer": offer})
}

type toggleRequest struct {
	Offer models.Offer `json:"offer"`
}

// ToggleFavorite adds or removes a bookmark; the response reports whether the
// change also reached the remote profile.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.engine.ToggleFavorite(r.Context(), bearerToken(r), deviceID, req.Offer)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"added":     result.Added,
		"outcome":   result.Outcome.String(),
		"favorites": result.Favorites,
	})
}

// DeleteFavorite removes a single bookmark by its ?url= query parameter.
func (h *Handler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)

	url := r.URL.Query().Get("url")
	if url == "" {
		h.writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	outcome, found := h.engine.DeleteFavorite(r.Context(), bearerToken(r), deviceID, url)
	if !found {
		h.writeError(w, http.StatusNotFound, "favorite not found")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"outcome": outcome.String()})
}

func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)
	outcome := h.engine.ClearFavorites(r.Context(), bearerToken(r), deviceID)
	h.writeJSON(w, http.StatusOK, map[string]string{"outcome": outcome.String()})
}

func (h *Handler) ClearRecent(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)
	h.engine.ClearRecent(r.Context(), deviceID)
	h.writeJSON(w, http.StatusOK, map[string]string{"outcome": offers.OutcomeLocalOnly.String()})
}

// BuildSearchURL builds the outbound search link from query parameters and
// the device's cached eligibility. Parameters omitted from the query fall
// back to the defaults cached at bootstrap.
func (h *Handler) BuildSearchURL(w http.ResponseWriter, r *http.Request) {
	deviceID := h.identity.Resolve(w, r)

	params, _ := h.engine.CachedSearchParameters(r.Context(), deviceID)

	q := r.URL.Query()
	if q.Has("keywords") {
		params.Keywords = q.Get("keywords")
	}
	if q.Has("location") {
		params.Location = q.Get("location")
	}
	if q.Has("jobType") {
		params.JobType = q.Get("jobType")
	}
	if code := q.Get("datePosted"); models.IsValidDatePosted(code) {
		params.DatePosted = code
	}
	if q.Has("remote") {
		params.Remote = q.Get("remote") == "true"
	}
	if params.DatePosted == "" {
		params.DatePosted = models.DefaultDatePosted
	}

	eligibility := h.engine.CachedEligibility(r.Context(), deviceID)
	h.writeJSON(w, http.StatusOK, map[string]string{
		"url":        offers.BuildSearchURL(params, eligibility),
		"datePosted": models.DatePostedDisplayName(params.DatePosted),
	})
}
