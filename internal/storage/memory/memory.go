// Package memory provides an in-process keyed store with the same collection
// surface as the redis cache. It backs tests and local development; writes are
// last-write-wins per key, matching the production store's semantics.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"career-offer-tracker/internal/models"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	elig   map[string]models.Eligibility
	params map[string]models.SearchParameters
}

func New() *Store {
	return &Store{
		data:   make(map[string][]byte),
		elig:   make(map[string]models.Eligibility),
		params: make(map[string]models.SearchParameters),
	}
}

func collectionKey(collection, deviceID string) string {
	if deviceID == "" {
		deviceID = "guest"
	}
	return fmt.Sprintf("%s_%s", collection, deviceID)
}

func (s *Store) LoadOffers(_ context.Context, deviceID, collection string) []models.Offer {
	s.mu.RLock()
	raw, ok := s.data[collectionKey(collection, deviceID)]
	s.mu.RUnlock()

	if !ok {
		return []models.Offer{}
	}

	var offers []models.Offer
	if err := json.Unmarshal(raw, &offers); err != nil {
		return []models.Offer{}
	}
	return offers
}

func (s *Store) SaveOffers(_ context.Context, deviceID, collection string, offers []models.Offer) error {
	raw, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("marshal offers: %w", err)
	}

	s.mu.Lock()
	s.data[collectionKey(collection, deviceID)] = raw
	s.mu.Unlock()
	return nil
}

func (s *Store) SaveEligibility(_ context.Context, deviceID string, e models.Eligibility) error {
	s.mu.Lock()
	s.elig[deviceID] = e
	s.mu.Unlock()
	return nil
}

func (s *Store) LoadEligibility(_ context.Context, deviceID string) (models.Eligibility, bool) {
	s.mu.RLock()
	e, ok := s.elig[deviceID]
	s.mu.RUnlock()
	return e, ok
}

func (s *Store) SaveSearchParameters(_ context.Context, deviceID string, p models.SearchParameters) error {
	s.mu.Lock()
	s.params[deviceID] = p
	s.mu.Unlock()
	return nil
}

func (s *Store) LoadSearchParameters(_ context.Context, deviceID string) (models.SearchParameters, bool) {
	s.mu.RLock()
	p, ok := s.params[deviceID]
	s.mu.RUnlock()
	return p, ok
}

// SeedRaw stores raw bytes under a collection key, bypassing serialization.
// Tests use it to simulate corrupted stored state.
func (s *Store) SeedRaw(deviceID, collection string, raw []byte) {
	s.mu.Lock()
	s.data[collectionKey(collection, deviceID)] = raw
	s.mu.Unlock()
}
