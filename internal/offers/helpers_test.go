package offers_test

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"career-offer-tracker/internal/api/profile"
	"career-offer-tracker/internal/models"
	"career-offer-tracker/internal/offers"
	"career-offer-tracker/internal/storage/memory"
)

// fakeRemote records profile-service calls and serves canned responses.
type fakeRemote struct {
	meta       *profile.Metadata
	metaErr    error
	replaceErr error
	removeErr  error

	fetchCalls int
	replaced   [][]models.Offer
	removed    [][]models.Offer
}

func (f *fakeRemote) FetchMetadata(_ context.Context, _ string) (*profile.Metadata, error) {
	f.fetchCalls++
	if f.metaErr != nil {
		return nil, f.metaErr
	}
	return f.meta, nil
}

func (f *fakeRemote) ReplaceFavorites(_ context.Context, _ string, list []models.Offer) error {
	f.replaced = append(f.replaced, append([]models.Offer(nil), list...))
	return f.replaceErr
}

func (f *fakeRemote) RemoveFavorites(_ context.Context, _ string, list []models.Offer) error {
	f.removed = append(f.removed, append([]models.Offer(nil), list...))
	return f.removeErr
}

func newTestService(remote *fakeRemote) (*offers.Service, *memory.Store) {
	store := memory.New()
	return offers.New(store, remote, zap.NewNop()), store
}

// makeOffer builds an offer with fixed UTC timestamps so stored copies
// compare equal after a JSON round trip.
func makeOffer(url, title string) models.Offer {
	return models.Offer{
		URL:         url,
		Title:       title,
		Source:      models.DefaultSource,
		Date:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		VisitCount:  1,
		LastVisited: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func urls(offers []models.Offer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.URL
	}
	return out
}

func offerN(n int) models.Offer {
	return makeOffer(fmt.Sprintf("https://example.com/jobs/%d", n), fmt.Sprintf("Job %d", n))
}
