// File: services/catalog/engine.go
package catalog

import (
	"sort"
	"strings"

	"estateconnect/models"
)

// Apply filters and orders the listing collection according to the criteria.
// It is a pure function: the input slice is never mutated, and the result is
// a freshly ordered sequence.
func Apply(records []models.Listing, c models.SearchCriteria) []models.Listing {
	filtered := make([]models.Listing, 0, len(records))
	for _, rec := range records {
		if Matches(rec, c) {
			filtered = append(filtered, rec)
		}
	}
	sortListings(filtered, c)
	return filtered
}

// Matches reports whether a single listing passes every filter predicate.
// All predicates are ANDed; an empty query and a selector value of "all" are
// identity filters, and the price range is inclusive at both ends.
func Matches(rec models.Listing, c models.SearchCriteria) bool {
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(rec.Title), q) &&
			!strings.Contains(strings.ToLower(rec.Location), q) {
			return false
		}
	}
	if c.Category != models.FilterAll && c.Category != "" && rec.Category != c.Category {
		return false
	}
	if c.Kind != models.FilterAll && c.Kind != "" && string(rec.Kind) != c.Kind {
		return false
	}
	if !hasAllFeatures(rec, c.Features) {
		return false
	}
	price := rec.PriceIn(c.Currency)
	if price < c.PriceMin || price > c.PriceMax {
		return false
	}
	return true
}

// hasAllFeatures reports whether every selected feature tag is present on the
// listing. Plan listings carry no features and therefore only match an empty
// selection.
func hasAllFeatures(rec models.Listing, features []string) bool {
	if len(features) == 0 {
		return true
	}
	if rec.Property == nil {
		return false
	}
	for _, want := range features {
		found := false
		for _, have := range rec.Property.Features {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sortListings orders the filtered set in place, stable with respect to ties.
// Newest uses the sequence ID as a recency proxy; the price keys compare the
// field of the selected currency only, never a converted value.
func sortListings(listings []models.Listing, c models.SearchCriteria) {
	switch c.SortBy {
	case models.SortPriceLow:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].PriceIn(c.Currency) < listings[j].PriceIn(c.Currency)
		})
	case models.SortPriceHigh:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].PriceIn(c.Currency) > listings[j].PriceIn(c.Currency)
		})
	case models.SortPopular:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Views > listings[j].Views
		})
	default: // newest
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].ID > listings[j].ID
		})
	}
}

// Paginate slices one page out of the ordered result. Pages are 1-based; a
// page past the end yields an empty slice.
func Paginate(listings []models.Listing, page, perPage int) []models.Listing {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = len(listings)
	}
	start := (page - 1) * perPage
	if start >= len(listings) {
		return []models.Listing{}
	}
	end := start + perPage
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}
