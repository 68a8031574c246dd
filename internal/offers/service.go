// Package offers implements the offer tracking and synchronization engine:
// device-local recent/favorite collections, eligibility evaluation, the
// local/remote favorites merge, and the outbound search link builder.
package offers

import (
	"context"

	"go.uber.org/zap"

	"career-offer-tracker/internal/api/profile"
	"career-offer-tracker/internal/models"
)

// CollectionStore is the device-scoped local store behind the engine. Loads
// never fail: a missing or unreadable collection reads as empty. Writes
// overwrite the stored collection entirely.
type CollectionStore interface {
	LoadOffers(ctx context.Context, deviceID, collection string) []models.Offer
	SaveOffers(ctx context.Context, deviceID, collection string, offers []models.Offer) error

	SaveEligibility(ctx context.Context, deviceID string, e models.Eligibility) error
	LoadEligibility(ctx context.Context, deviceID string) (models.Eligibility, bool)
	SaveSearchParameters(ctx context.Context, deviceID string, p models.SearchParameters) error
	LoadSearchParameters(ctx context.Context, deviceID string) (models.SearchParameters, bool)
}

// ProfileAPI is the remote profile store consumed by the engine. The profile
// client satisfies it.
type ProfileAPI interface {
	FetchMetadata(ctx context.Context, token string) (*profile.Metadata, error)
	ReplaceFavorites(ctx context.Context, token string, offers []models.Offer) error
	RemoveFavorites(ctx context.Context, token string, offers []models.Offer) error
}

// Outcome reports how far a mutation propagated. The local write always
// commits first; the remote write is best-effort and never rolled back to.
type Outcome int

const (
	// OutcomeLocalOnly: committed to the local store; the remote side was
	// skipped or failed.
	OutcomeLocalOnly Outcome = iota
	// OutcomeSynced: committed locally and acknowledged remotely.
	OutcomeSynced
)

func (o Outcome) String() string {
	if o == OutcomeSynced {
		return "synced"
	}
	return "local_only"
}

// Service is the engine facade. All mutations commit to the local store
// synchronously; remote propagation is best-effort per operation.
type Service struct {
	store  CollectionStore
	remote ProfileAPI
	logger *zap.Logger
}

func New(store CollectionStore, remote ProfileAPI, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		remote: remote,
		logger: logger,
	}
}

// ListRecent returns the device's visit history, most recent first.
func (s *Service) ListRecent(ctx context.Context, deviceID string) []models.Offer {
	return s.store.LoadOffers(ctx, deviceID, models.CollectionRecent)
}

// ListFavorites returns the device's bookmarked offers.
func (s *Service) ListFavorites(ctx context.Context, deviceID string) []models.Offer {
	return s.store.LoadOffers(ctx, deviceID, models.CollectionFavorites)
}

// CachedEligibility returns the device's cached permission state, defaulting
// to the permissive state when nothing is cached. Ineligibility is never
// inferred from missing state.
func (s *Service) CachedEligibility(ctx context.Context, deviceID string) models.Eligibility {
	if e, ok := s.store.LoadEligibility(ctx, deviceID); ok {
		return e
	}
	return EvaluateEligibility(nil)
}

// CachedSearchParameters returns the device's cached default search
// parameters, when a bootstrap has produced them.
func (s *Service) CachedSearchParameters(ctx context.Context, deviceID string) (models.SearchParameters, bool) {
	return s.store.LoadSearchParameters(ctx, deviceID)
}

func indexByURL(offers []models.Offer, url string) int {
	for i, o := range offers {
		if o.URL == url {
			return i
		}
	}
	return -1
}
