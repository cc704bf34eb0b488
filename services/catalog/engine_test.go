package catalog

import (
	"testing"

	"estateconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		{
			ID: 1, Title: "Modern Family Home", Location: "Kampala, Uganda",
			PriceUGX: 450_000_000, PriceUSD: 120_000,
			Kind: models.KindSale, Category: "house", Views: 320,
			Property: &models.PropertyDetails{Bedrooms: 4, Features: []string{"Garden", "Garage", "Security"}},
		},
		{
			ID: 2, Title: "City Apartment", Location: "Nakasero, Kampala",
			PriceUGX: 2_500_000, PriceUSD: 680,
			Kind: models.KindRent, Category: "apartment", Views: 580,
			Property: &models.PropertyDetails{Bedrooms: 2, Features: []string{"Furnished", "Parking"}},
		},
		{
			ID: 3, Title: "Lakeside Plot", Location: "Entebbe, Uganda",
			PriceUGX: 180_000_000, PriceUSD: 48_000,
			Kind: models.KindSale, Category: "land", Views: 150,
			Property: &models.PropertyDetails{},
		},
		{
			ID: 4, Title: "Bungalow Plan", Location: "Digital delivery",
			PriceUGX: 1_200_000, PriceUSD: 320,
			Kind: models.KindPlan, Category: "residential", Views: 840,
			Plan: &models.PlanDetails{Format: "PDF + CAD"},
		},
		{
			ID: 5, Title: "Warehouse Plan", Location: "Digital delivery",
			PriceUGX: 3_400_000, PriceUSD: 910,
			Kind: models.KindPlan, Category: "industrial", Views: 95,
			Plan: &models.PlanDetails{Format: "PDF"},
		},
	}
}

func ids(listings []models.Listing) []int64 {
	out := make([]int64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestApplyIdentityCriteria(t *testing.T) {
	records := sampleListings()
	got := Apply(records, models.DefaultCriteria(models.CurrencyUGX))

	assert.Len(t, got, len(records))
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids(got), "default sort is newest first")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleListings()
	c := models.DefaultCriteria(models.CurrencyUGX)
	c.SortBy = models.SortPriceHigh

	_ = Apply(records, c)

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(records))
}

func TestApplyIdempotent(t *testing.T) {
	c := models.DefaultCriteria(models.CurrencyUGX)
	c.Kind = string(models.KindSale)
	c.SortBy = models.SortPriceLow

	once := Apply(sampleListings(), c)
	twice := Apply(once, c)

	assert.Equal(t, ids(once), ids(twice))
}

func TestApplyPriceSortIsReversal(t *testing.T) {
	low := models.DefaultCriteria(models.CurrencyUGX)
	low.SortBy = models.SortPriceLow
	high := models.DefaultCriteria(models.CurrencyUGX)
	high.SortBy = models.SortPriceHigh

	asc := ids(Apply(sampleListings(), low))
	desc := ids(Apply(sampleListings(), high))

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestApplyPopularSort(t *testing.T) {
	c := models.DefaultCriteria(models.CurrencyUGX)
	c.SortBy = models.SortPopular

	got := Apply(sampleListings(), c)

	assert.Equal(t, []int64{4, 2, 1, 3, 5}, ids(got))
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{name: "empty query is identity", query: "", wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "title match is case-insensitive", query: "PLAN", wantIDs: []int64{5, 4}},
		{name: "location match", query: "kampala", wantIDs: []int64{2, 1}},
		{name: "no match", query: "penthouse", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.DefaultCriteria(models.CurrencyUGX)
			c.Query = tt.query
			assert.Equal(t, tt.wantIDs, ids(Apply(sampleListings(), c)))
		})
	}
}

func TestMatchesSelectors(t *testing.T) {
	tests := []struct {
		name     string
		category string
		kind     string
		wantIDs  []int64
	}{
		{name: "all/all is identity", category: "all", kind: "all", wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "category narrows", category: "house", kind: "all", wantIDs: []int64{1}},
		{name: "kind narrows", category: "all", kind: "plan", wantIDs: []int64{5, 4}},
		{name: "selectors combine with AND", category: "residential", kind: "plan", wantIDs: []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.DefaultCriteria(models.CurrencyUGX)
			c.Category = tt.category
			c.Kind = tt.kind
			assert.Equal(t, tt.wantIDs, ids(Apply(sampleListings(), c)))
		})
	}
}

func TestMatchesFeatures(t *testing.T) {
	c := models.DefaultCriteria(models.CurrencyUGX)
	c.Features = []string{"garden", "Garage"}

	got := Apply(sampleListings(), c)

	// Only the listing carrying every selected feature survives; plan
	// listings carry no features and never match a non-empty selection.
	assert.Equal(t, []int64{1}, ids(got))
}

func TestMatchesPriceRangeInclusive(t *testing.T) {
	c := models.DefaultCriteria(models.CurrencyUGX)
	c.PriceMin = 2_500_000
	c.PriceMax = 180_000_000

	got := Apply(sampleListings(), c)

	assert.Equal(t, []int64{5, 3, 2}, ids(got), "both bounds are inclusive")
}

func TestCurrencySwitchChangesMembership(t *testing.T) {
	// The same numeric range reads against a different stored field per
	// currency, so switching currency without rescaling the range changes
	// which listings match.
	c := models.DefaultCriteria(models.CurrencyUGX)
	c.PriceMin = 1_000_000
	c.PriceMax = 5_000_000

	inUGX := ids(Apply(sampleListings(), c))
	assert.Equal(t, []int64{5, 4, 2}, inUGX)

	c.Currency = models.CurrencyUSD
	inUSD := ids(Apply(sampleListings(), c))
	assert.Empty(t, inUSD, "no USD price sits inside a UGX-scaled range")
}

func TestCurrencySwitchFullRangeKeepsMembership(t *testing.T) {
	// Switching currency while rescaling the bounds to that currency's full
	// range changes only how prices read, not which listings match.
	inUGX := Apply(sampleListings(), models.DefaultCriteria(models.CurrencyUGX))
	inUSD := Apply(sampleListings(), models.DefaultCriteria(models.CurrencyUSD))

	assert.Equal(t, len(inUGX), len(inUSD))
	assert.Equal(t, ids(inUGX), ids(inUSD), "newest order is currency-independent")
}

func TestPaginate(t *testing.T) {
	records := Apply(sampleListings(), models.DefaultCriteria(models.CurrencyUGX))

	tests := []struct {
		name    string
		page    int
		perPage int
		wantIDs []int64
	}{
		{name: "first page", page: 1, perPage: 2, wantIDs: []int64{5, 4}},
		{name: "middle page", page: 2, perPage: 2, wantIDs: []int64{3, 2}},
		{name: "short last page", page: 3, perPage: 2, wantIDs: []int64{1}},
		{name: "page past the end", page: 9, perPage: 2, wantIDs: []int64{}},
		{name: "page below one clamps", page: 0, perPage: 2, wantIDs: []int64{5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, ids(Paginate(records, tt.page, tt.perPage)))
		})
	}
}

func TestApplyZeroResults(t *testing.T) {
	c := models.DefaultCriteria(models.CurrencyUGX)
	c.Query = "castle"
	c.Kind = string(models.KindRent)

	got := Apply(sampleListings(), c)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
