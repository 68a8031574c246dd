package offers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"career-offer-tracker/internal/models"
)

// RecordVisit classifies a clicked listing and upserts it into the device's
// recent collection. A repeat visit to the same URL bumps its visit count and
// moves it to the front; a new URL is prepended, evicting the oldest entry
// once the collection holds MaxRecentOffers. The recent collection is
// local-only: nothing here touches the remote side.
func (s *Service) RecordVisit(ctx context.Context, deviceID, title, destinationURL string, params models.SearchParameters) (models.Offer, error) {
	destinationURL = strings.TrimSpace(destinationURL)
	if destinationURL == "" {
		return models.Offer{}, fmt.Errorf("destination URL is empty")
	}

	now := time.Now()
	recent := s.store.LoadOffers(ctx, deviceID, models.CollectionRecent)

	var offer models.Offer
	if i := indexByURL(recent, destinationURL); i >= 0 {
		offer = recent[i]
		offer.VisitCount++
		offer.LastVisited = now
		recent = append(recent[:i], recent[i+1:]...)
		recent = append([]models.Offer{offer}, recent...)
	} else {
		offer = models.Offer{
			URL:         destinationURL,
			Title:       strings.TrimSpace(title),
			Source:      models.DefaultSource,
			Date:        now,
			JobType:     ClassifyTitle(title, models.JobTypeFromSearchCode(params.JobType)),
			Location:    locationFromURL(destinationURL),
			Company:     companyFromTitle(title),
			Keywords:    params.Keywords,
			VisitCount:  1,
			LastVisited: now,
		}
		recent = append([]models.Offer{offer}, recent...)
		if len(recent) > models.MaxRecentOffers {
			recent = recent[:models.MaxRecentOffers]
		}
	}

	if err := s.store.SaveOffers(ctx, deviceID, models.CollectionRecent, recent); err != nil {
		s.logger.Error("failed to persist recent offers",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}

	s.logger.Debug("visit recorded",
		zap.String("device_id", deviceID),
		zap.String("url", destinationURL),
		zap.Int("visit_count", offer.VisitCount),
		zap.String("job_type", string(offer.JobType)),
	)

	return offer, nil
}

// locationFromURL pulls a location out of the destination's query string.
// Absence yields an empty string, never an error.
func locationFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.Query().Get("location"))
}

// companyFromTitle extracts a company name from trailing "at X" or "- X"
// patterns in the listing title. No pattern yields an empty string, never an
// error.
func companyFromTitle(title string) string {
	if i := lastIndexFold(title, " at "); i >= 0 {
		return strings.TrimSpace(title[i+len(" at "):])
	}
	if i := strings.LastIndex(title, " - "); i >= 0 {
		return strings.TrimSpace(title[i+len(" - "):])
	}
	return ""
}

// lastIndexFold is strings.LastIndex with case folding. Matching directly
// against s keeps the returned offset valid in it; lowering a copy first
// would shift byte offsets for titles where lowercasing changes rune widths.
func lastIndexFold(s, substr string) int {
	for i := len(s) - len(substr); i >= 0; i-- {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
