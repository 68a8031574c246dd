package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"career-offer-tracker/internal/models"
)

const (
	// CollectionTTL matches the device cookie lifetime; refreshed on every save.
	CollectionTTL = 365 * 24 * time.Hour
	// EligibilityCacheTTL bounds how stale a cached permission state may get.
	EligibilityCacheTTL = 30 * time.Minute
	// SearchParamsCacheTTL bounds cached default search parameters.
	SearchParamsCacheTTL = 30 * time.Minute
)

// guestDeviceID namespaces data for requests with no resolvable device id.
const guestDeviceID = "guest"

// CollectionKey builds the storage key for a device-scoped offer collection,
// e.g. "favoriteJobOffers_3f2b...". An empty device id falls back to "guest".
func CollectionKey(collection, deviceID string) string {
	if deviceID == "" {
		deviceID = guestDeviceID
	}
	return fmt.Sprintf("%s_%s", collection, deviceID)
}

func EligibilityKey(deviceID string) string {
	if deviceID == "" {
		deviceID = guestDeviceID
	}
	return fmt.Sprintf("eligibility:device:%s", deviceID)
}

func SearchParamsKey(deviceID string) string {
	if deviceID == "" {
		deviceID = guestDeviceID
	}
	return fmt.Sprintf("searchparams:device:%s", deviceID)
}

// LoadOffers returns the stored collection for the device. Missing keys and
// malformed payloads both yield an empty collection, never an error.
func (c *Cache) LoadOffers(ctx context.Context, deviceID, collection string) []models.Offer {
	key := CollectionKey(collection, deviceID)

	var offers []models.Offer
	err := c.Get(ctx, key, &offers)
	if errors.Is(err, ErrNotFound) {
		return []models.Offer{}
	}
	if err != nil {
		c.logger.Warn("unreadable offer collection, treating as empty",
			zap.String("key", key),
			zap.Error(err),
		)
		return []models.Offer{}
	}

	return offers
}

// SaveOffers overwrites the stored collection entirely.
func (c *Cache) SaveOffers(ctx context.Context, deviceID, collection string, offers []models.Offer) error {
	return c.Set(ctx, CollectionKey(collection, deviceID), offers, CollectionTTL)
}

func (c *Cache) SaveEligibility(ctx context.Context, deviceID string, e models.Eligibility) error {
	return c.Set(ctx, EligibilityKey(deviceID), e, EligibilityCacheTTL)
}

// LoadEligibility returns the cached permission state for the device and
// whether one was present.
func (c *Cache) LoadEligibility(ctx context.Context, deviceID string) (models.Eligibility, bool) {
	var e models.Eligibility
	if err := c.Get(ctx, EligibilityKey(deviceID), &e); err != nil {
		return models.Eligibility{}, false
	}
	return e, true
}

func (c *Cache) SaveSearchParameters(ctx context.Context, deviceID string, p models.SearchParameters) error {
	return c.Set(ctx, SearchParamsKey(deviceID), p, SearchParamsCacheTTL)
}

func (c *Cache) LoadSearchParameters(ctx context.Context, deviceID string) (models.SearchParameters, bool) {
	var p models.SearchParameters
	if err := c.Get(ctx, SearchParamsKey(deviceID), &p); err != nil {
		return models.SearchParameters{}, false
	}
	return p, true
}
