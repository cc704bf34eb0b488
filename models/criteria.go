// File: models/criteria.go
package models

import (
	"fmt"
	"strings"
)

// Currency selects which of a listing's two price fields is used for both
// display and range filtering.
type Currency string

const (
	CurrencyUGX Currency = "UGX"
	CurrencyUSD Currency = "USD"
)

// MaxPrice is the upper bound of the full price range in this currency's unit.
func (c Currency) MaxPrice() int64 {
	if c == CurrencyUSD {
		return 500_000
	}
	return 2_000_000_000
}

// SortKey orders search results.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
)

// FilterAll is the identity value for the category and kind selectors.
const FilterAll = "all"

// SearchCriteria is the combined set of search/filter/sort selections applied
// to the listing collection. Lifetime is one page view; reset restores
// defaults.
type SearchCriteria struct {
	Query    string   `json:"query" form:"query"`
	Category string   `json:"category" form:"category"`
	Kind     string   `json:"kind" form:"kind"`
	Currency Currency `json:"currency" form:"currency"`
	PriceMin int64    `json:"priceMin" form:"priceMin"`
	PriceMax int64    `json:"priceMax" form:"priceMax"`
	SortBy   SortKey  `json:"sortBy" form:"sortBy"`
	Features []string `json:"features" form:"features"`
	Page     int      `json:"page" form:"page"`
	PerPage  int      `json:"perPage" form:"perPage"`
}

// DefaultCriteria returns the identity criteria for the given currency: empty
// query, both selectors at "all", the full price range, newest-first.
func DefaultCriteria(cur Currency) SearchCriteria {
	if cur == "" {
		cur = CurrencyUGX
	}
	return SearchCriteria{
		Category: FilterAll,
		Kind:     FilterAll,
		Currency: cur,
		PriceMin: 0,
		PriceMax: cur.MaxPrice(),
		SortBy:   SortNewest,
		Page:     1,
		PerPage:  12,
	}
}

// Reset restores every facet to its default, keeping the selected currency.
func (c *SearchCriteria) Reset() {
	*c = DefaultCriteria(c.Currency)
}

// Normalize fills zero-valued facets with their defaults so partially bound
// query parameters behave like the identity filter.
func (c *SearchCriteria) Normalize() {
	if c.Currency != CurrencyUSD {
		c.Currency = CurrencyUGX
	}
	if c.Category == "" {
		c.Category = FilterAll
	}
	if c.Kind == "" {
		c.Kind = FilterAll
	}
	if c.PriceMax == 0 {
		c.PriceMax = c.Currency.MaxPrice()
	}
	if c.SortBy == "" {
		c.SortBy = SortNewest
	}
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PerPage < 1 {
		c.PerPage = 12
	}
}

// CacheKey renders the criteria as a stable string for result caching.
func (c SearchCriteria) CacheKey() string {
	return fmt.Sprintf("search:%s|%s|%s|%s|%d-%d|%s|%s|%d/%d",
		strings.ToLower(c.Query), c.Category, c.Kind, c.Currency,
		c.PriceMin, c.PriceMax, c.SortBy, strings.Join(c.Features, ","),
		c.Page, c.PerPage)
}
