// File: services/wizard/fees.go
package wizard

import (
	"estateconnect/models"
	"estateconnect/services/catalog"
)

// Listing fee schedule. Sale listings pay a percentage of the asking price;
// rent and plan listings pay a one-time flat fee in the selected currency.
const (
	SaleFeePercent = 2.5

	RentFeeUGX int64 = 95_000
	RentFeeUSD int64 = 25

	PlanFeeUGX int64 = 56_000
	PlanFeeUSD int64 = 15
)

// FeeQuote is the computed listing fee for a submission.
type FeeQuote struct {
	Kind      models.ListingKind `json:"kind"`
	Currency  models.Currency    `json:"currency"`
	Amount    int64              `json:"amount"`
	Formatted string             `json:"formatted"`
	OneTime   bool               `json:"oneTime"`
}

// QuoteFee computes the listing fee for a kind, currency, and asking price.
// The sale fee is always 2.5% of the entered price; the review step displays
// this computed figure, not an illustrative constant.
func QuoteFee(kind models.ListingKind, cur models.Currency, price int64) FeeQuote {
	q := FeeQuote{Kind: kind, Currency: cur}
	switch kind {
	case models.KindSale:
		q.Amount = int64(float64(price) * SaleFeePercent / 100)
	case models.KindRent:
		q.OneTime = true
		if cur == models.CurrencyUSD {
			q.Amount = RentFeeUSD
		} else {
			q.Amount = RentFeeUGX
		}
	case models.KindPlan:
		q.OneTime = true
		if cur == models.CurrencyUSD {
			q.Amount = PlanFeeUSD
		} else {
			q.Amount = PlanFeeUGX
		}
	}
	q.Formatted = catalog.FormatAmount(q.Amount, cur)
	return q
}
