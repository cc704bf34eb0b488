package wizard

import (
	"testing"

	"estateconnect/models"

	"github.com/stretchr/testify/assert"
)

func TestQuoteFeeSalePercentage(t *testing.T) {
	tests := []struct {
		name     string
		currency models.Currency
		price    int64
		want     int64
	}{
		{name: "UGX sale", currency: models.CurrencyUGX, price: 450_000_000, want: 11_250_000},
		{name: "USD sale", currency: models.CurrencyUSD, price: 120_000, want: 3_000},
		{name: "zero price", currency: models.CurrencyUGX, price: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteFee(models.KindSale, tt.currency, tt.price)
			assert.Equal(t, tt.want, q.Amount)
			assert.False(t, q.OneTime)
		})
	}
}

func TestQuoteFeeFlatSchedule(t *testing.T) {
	tests := []struct {
		name     string
		kind     models.ListingKind
		currency models.Currency
		want     int64
	}{
		{name: "rent UGX", kind: models.KindRent, currency: models.CurrencyUGX, want: 95_000},
		{name: "rent USD", kind: models.KindRent, currency: models.CurrencyUSD, want: 25},
		{name: "plan UGX", kind: models.KindPlan, currency: models.CurrencyUGX, want: 56_000},
		{name: "plan USD", kind: models.KindPlan, currency: models.CurrencyUSD, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Flat fees ignore the asking price entirely.
			q := QuoteFee(tt.kind, tt.currency, 999_999_999)
			assert.Equal(t, tt.want, q.Amount)
			assert.True(t, q.OneTime)
		})
	}
}

func TestQuoteFeeFormatted(t *testing.T) {
	q := QuoteFee(models.KindPlan, models.CurrencyUGX, 0)
	assert.Equal(t, "UGX 56,000", q.Formatted)

	q = QuoteFee(models.KindRent, models.CurrencyUSD, 0)
	assert.Equal(t, "$25", q.Formatted)
}
