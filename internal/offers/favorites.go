package offers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"career-offer-tracker/internal/models"
)

// ToggleResult reports a favorite toggle: whether the offer ended up added or
// removed, how far the change propagated, and the resulting collection.
type ToggleResult struct {
	Added     bool           `json:"added"`
	Outcome   Outcome        `json:"-"`
	Favorites []models.Offer `json:"favorites"`
}

// ToggleFavorite adds the offer to the device's favorites, or removes it when
// already present. The local write commits unconditionally; the remote push
// is attempted afterwards and a failure only degrades the outcome. An empty
// token skips the remote side entirely (guest device).
func (s *Service) ToggleFavorite(ctx context.Context, token, deviceID string, offer models.Offer) (ToggleResult, error) {
	offer.URL = strings.TrimSpace(offer.URL)
	if offer.URL == "" {
		return ToggleResult{}, fmt.Errorf("offer URL is empty")
	}

	favorites := s.store.LoadOffers(ctx, deviceID, models.CollectionFavorites)

	var added bool
	if i := indexByURL(favorites, offer.URL); i >= 0 {
		favorites = append(favorites[:i], favorites[i+1:]...)
	} else {
		favorites = append(favorites, normalizeFavorite(offer, time.Now()))
		added = true
	}

	if err := s.store.SaveOffers(ctx, deviceID, models.CollectionFavorites, favorites); err != nil {
		s.logger.Error("failed to persist favorites",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}

	outcome := s.pushFavorites(ctx, token, favorites)

	s.logger.Debug("favorite toggled",
		zap.String("device_id", deviceID),
		zap.String("url", offer.URL),
		zap.Bool("added", added),
		zap.String("outcome", outcome.String()),
	)

	return ToggleResult{Added: added, Outcome: outcome, Favorites: favorites}, nil
}

// normalizeFavorite fills the fields a bare bookmark may lack. FavoriteDate
// is always stamped fresh, so re-adding a previously removed favorite gets a
// new one.
func normalizeFavorite(offer models.Offer, now time.Time) models.Offer {
	if offer.Source == "" {
		offer.Source = models.DefaultSource
	}
	if offer.Date.IsZero() {
		offer.Date = now
	}
	if offer.VisitCount < 1 {
		offer.VisitCount = 1
	}
	if offer.LastVisited.IsZero() {
		offer.LastVisited = now
	}
	favoriteDate := now
	offer.FavoriteDate = &favoriteDate
	return offer
}

// DeleteFavorite removes one favorite by URL. The boolean reports whether the
// URL existed; when it does not, nothing is mutated and no remote call is made.
func (s *Service) DeleteFavorite(ctx context.Context, token, deviceID, url string) (Outcome, bool) {
	favorites := s.store.LoadOffers(ctx, deviceID, models.CollectionFavorites)

	i := indexByURL(favorites, url)
	if i < 0 {
		return OutcomeLocalOnly, false
	}

	removed := favorites[i]
	favorites = append(favorites[:i], favorites[i+1:]...)

	if err := s.store.SaveOffers(ctx, deviceID, models.CollectionFavorites, favorites); err != nil {
		s.logger.Error("failed to persist favorites",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}

	outcome := OutcomeLocalOnly
	if token != "" {
		if err := s.remote.RemoveFavorites(ctx, token, []models.Offer{removed}); err != nil {
			s.logger.Warn("remote favorite delete failed",
				zap.String("url", url),
				zap.Error(err),
			)
		} else {
			outcome = OutcomeSynced
		}
	}

	return outcome, true
}

// ClearFavorites empties the device's favorites. When the pre-clear list was
// non-empty, one best-effort remote delete of the prior contents is issued.
func (s *Service) ClearFavorites(ctx context.Context, token, deviceID string) Outcome {
	prior := s.store.LoadOffers(ctx, deviceID, models.CollectionFavorites)

	if err := s.store.SaveOffers(ctx, deviceID, models.CollectionFavorites, []models.Offer{}); err != nil {
		s.logger.Error("failed to persist favorites",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}

	outcome := OutcomeLocalOnly
	if len(prior) > 0 && token != "" {
		if err := s.remote.RemoveFavorites(ctx, token, prior); err != nil {
			s.logger.Warn("remote favorites clear failed",
				zap.Int("count", len(prior)),
				zap.Error(err),
			)
		} else {
			outcome = OutcomeSynced
		}
	}

	s.logger.Debug("favorites cleared",
		zap.String("device_id", deviceID),
		zap.Int("removed", len(prior)),
		zap.String("outcome", outcome.String()),
	)

	return outcome
}

// ClearRecent empties the device's visit history. Purely local.
func (s *Service) ClearRecent(ctx context.Context, deviceID string) {
	if err := s.store.SaveOffers(ctx, deviceID, models.CollectionRecent, []models.Offer{}); err != nil {
		s.logger.Error("failed to persist recent offers",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}

	s.logger.Debug("recent offers cleared", zap.String("device_id", deviceID))
}
