package offers

import "career-offer-tracker/internal/models"

// MergeFavorites reconciles the device-local favorites with the remote
// profile's favorites into one canonical list.
//
// Local entries come first, keeping their order; a remote entry is appended
// only when its URL is not already present, so local entries always win a
// key collision. Merging only adds entries, never removes local ones, and
// the operation is idempotent: folding the remote list in twice changes
// nothing.
func MergeFavorites(local, remote []models.Offer) []models.Offer {
	merged := make([]models.Offer, 0, len(local)+len(remote))
	index := make(map[string]int, len(local))

	for _, o := range local {
		if o.URL == "" {
			continue
		}
		if i, ok := index[o.URL]; ok {
			// Duplicate local key: the most recently written record wins,
			// keeping the first position.
			merged[i] = o
			continue
		}
		index[o.URL] = len(merged)
		merged = append(merged, o)
	}

	for _, o := range remote {
		if o.URL == "" {
			continue
		}
		if _, ok := index[o.URL]; ok {
			continue
		}
		index[o.URL] = len(merged)
		merged = append(merged, o)
	}

	return merged
}
