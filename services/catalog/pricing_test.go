package catalog

import (
	"testing"

	"estateconnect/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		listing  models.Listing
		currency models.Currency
		want     string
	}{
		{
			name:     "sale in UGX",
			listing:  models.Listing{Kind: models.KindSale, PriceUGX: 450_000_000, PriceUSD: 120_000},
			currency: models.CurrencyUGX,
			want:     "UGX 450,000,000",
		},
		{
			name:     "sale in USD reads the other stored field",
			listing:  models.Listing{Kind: models.KindSale, PriceUGX: 450_000_000, PriceUSD: 120_000},
			currency: models.CurrencyUSD,
			want:     "$120,000",
		},
		{
			name:     "rent gets the monthly suffix",
			listing:  models.Listing{Kind: models.KindRent, PriceUGX: 2_500_000, PriceUSD: 680},
			currency: models.CurrencyUGX,
			want:     "UGX 2,500,000/month",
		},
		{
			name:     "rent in USD",
			listing:  models.Listing{Kind: models.KindRent, PriceUGX: 2_500_000, PriceUSD: 680},
			currency: models.CurrencyUSD,
			want:     "$680/month",
		},
		{
			name:     "plan has no suffix",
			listing:  models.Listing{Kind: models.KindPlan, PriceUGX: 1_200_000, PriceUSD: 320},
			currency: models.CurrencyUGX,
			want:     "UGX 1,200,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.listing, tt.currency))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "UGX 95,000", FormatAmount(95_000, models.CurrencyUGX))
	assert.Equal(t, "$25", FormatAmount(25, models.CurrencyUSD))
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{56_000, "56,000"},
		{2_000_000_000, "2,000,000,000"},
		{-950, "-950"},
		{-123_456, "-123,456"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in))
	}
}
