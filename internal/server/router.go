package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires the offer engine's HTTP surface.
func NewRouter(h *Handler, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(Recovery(logger))
	r.Use(Logging(logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	api := r.PathPrefix("/api/offers").Subrouter()
	api.HandleFunc("/session", h.GetSession).Methods("GET")
	api.HandleFunc("/recent", h.ListRecent).Methods("GET")
	api.HandleFunc("/recent", h.ClearRecent).Methods("DELETE")
	api.HandleFunc("/visits", h.RecordVisit).Methods("POST")
	api.HandleFunc("/favorites", h.ListFavorites).Methods("GET")
	api.HandleFunc("/favorites", h.DeleteFavorite).Methods("DELETE")
	api.HandleFunc("/favorites/all", h.ClearFavorites).Methods("DELETE")
	api.HandleFunc("/favorites/toggle", h.ToggleFavorite).Methods("POST")
	api.HandleFunc("/search-url", h.BuildSearchURL).Methods("GET")

	return r
}
