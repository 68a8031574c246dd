package offers

import (
	"context"
	"reflect"

	"go.uber.org/zap"

	"career-offer-tracker/internal/api/profile"
	"career-offer-tracker/internal/models"
)

// Session is everything the portal UI needs to render the offers page.
type Session struct {
	Eligibility      models.EligibilityView  `json:"eligibility"`
	SearchParameters models.SearchParameters `json:"searchParameters"`
	Favorites        []models.Offer          `json:"favorites"`
	Recent           []models.Offer          `json:"recent"`
}

// Bootstrap prepares a device's session: it fetches remote profile metadata,
// evaluates eligibility, derives default search parameters, merges the remote
// favorites into the local collection, persists the result, and pushes the
// merged list back when it differs from what the remote held.
//
// Every remote failure degrades rather than fails: a missing or unreadable
// metadata record yields permissive eligibility and an empty remote list, so
// the caller always receives a usable session.
func (s *Service) Bootstrap(ctx context.Context, token, deviceID string) *Session {
	meta := s.fetchMetadata(ctx, token)

	eligibility := EvaluateEligibility(meta)
	params := DeriveSearchParameters(meta, eligibility)

	local := s.store.LoadOffers(ctx, deviceID, models.CollectionFavorites)
	var remoteFavorites []models.Offer
	if meta != nil {
		remoteFavorites = meta.JobOffers
	}

	merged := MergeFavorites(local, remoteFavorites)

	if err := s.store.SaveOffers(ctx, deviceID, models.CollectionFavorites, merged); err != nil {
		s.logger.Error("failed to persist merged favorites",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}
	if err := s.store.SaveEligibility(ctx, deviceID, eligibility); err != nil {
		s.logger.Warn("failed to cache eligibility",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}
	if err := s.store.SaveSearchParameters(ctx, deviceID, params); err != nil {
		s.logger.Warn("failed to cache search parameters",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}

	if token != "" && meta != nil && favoritesDiffer(merged, remoteFavorites) {
		s.pushFavorites(ctx, token, merged)
	}

	s.logger.Info("session bootstrapped",
		zap.String("device_id", deviceID),
		zap.String("access_level", eligibility.Level.String()),
		zap.Int("favorites", len(merged)),
	)

	return &Session{
		Eligibility:      eligibility.View(),
		SearchParameters: params,
		Favorites:        merged,
		Recent:           s.store.LoadOffers(ctx, deviceID, models.CollectionRecent),
	}
}

// fetchMetadata returns nil instead of an error: the engine treats a failed
// or guest fetch the same as a missing record.
func (s *Service) fetchMetadata(ctx context.Context, token string) *profile.Metadata {
	if token == "" {
		return nil
	}

	meta, err := s.remote.FetchMetadata(ctx, token)
	if err != nil {
		s.logger.Warn("metadata fetch failed, continuing with defaults", zap.Error(err))
		return nil
	}
	return meta
}

// pushFavorites best-effort replaces the remote favorites field. An empty
// token (guest device) skips the call.
func (s *Service) pushFavorites(ctx context.Context, token string, favorites []models.Offer) Outcome {
	if token == "" {
		return OutcomeLocalOnly
	}

	if err := s.remote.ReplaceFavorites(ctx, token, favorites); err != nil {
		s.logger.Warn("remote favorites push failed",
			zap.Int("count", len(favorites)),
			zap.Error(err),
		)
		return OutcomeLocalOnly
	}

	return OutcomeSynced
}

// favoritesDiffer reports whether the merged list differs from what the
// remote held, in content or order.
func favoritesDiffer(merged, remote []models.Offer) bool {
	if len(merged) != len(remote) {
		return true
	}
	if len(merged) == 0 {
		return false
	}
	return !reflect.DeepEqual(merged, remote)
}
