package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria(CurrencyUGX)

	assert.Empty(t, c.Query)
	assert.Equal(t, FilterAll, c.Category)
	assert.Equal(t, FilterAll, c.Kind)
	assert.Equal(t, int64(0), c.PriceMin)
	assert.Equal(t, int64(2_000_000_000), c.PriceMax)
	assert.Equal(t, SortNewest, c.SortBy)
	assert.Empty(t, c.Features)
}

func TestDefaultCriteriaPerCurrency(t *testing.T) {
	assert.Equal(t, int64(500_000), DefaultCriteria(CurrencyUSD).PriceMax)
	assert.Equal(t, int64(2_000_000_000), DefaultCriteria("").PriceMax, "UGX is the default currency")
}

func TestResetKeepsCurrency(t *testing.T) {
	c := DefaultCriteria(CurrencyUSD)
	c.Query = "lakeside"
	c.Kind = string(KindPlan)
	c.PriceMin = 100
	c.PriceMax = 900
	c.SortBy = SortPopular
	c.Features = []string{"Garden"}

	c.Reset()

	assert.Equal(t, DefaultCriteria(CurrencyUSD), c)
	assert.Equal(t, CurrencyUSD, c.Currency)
}

func TestNormalizeFillsZeroFacets(t *testing.T) {
	c := SearchCriteria{Query: "kampala"}
	c.Normalize()

	assert.Equal(t, CurrencyUGX, c.Currency)
	assert.Equal(t, FilterAll, c.Category)
	assert.Equal(t, FilterAll, c.Kind)
	assert.Equal(t, CurrencyUGX.MaxPrice(), c.PriceMax)
	assert.Equal(t, SortNewest, c.SortBy)
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 12, c.PerPage)
	assert.Equal(t, "kampala", c.Query, "bound values are kept")
}

func TestCacheKeyStable(t *testing.T) {
	a := DefaultCriteria(CurrencyUGX)
	b := DefaultCriteria(CurrencyUGX)
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	b.Kind = string(KindSale)
	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
}
