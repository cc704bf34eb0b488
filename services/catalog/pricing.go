// File: services/catalog/pricing.go
package catalog

import (
	"fmt"
	"strconv"

	"estateconnect/models"
)

// FormatPrice renders the listing's price in the active currency with its
// label. This is pure presentation: it selects one of the two stored price
// fields, it never converts between them. Rent listings get a "/month"
// suffix.
func FormatPrice(l models.Listing, cur models.Currency) string {
	var s string
	if cur == models.CurrencyUSD {
		s = "$" + groupDigits(l.PriceUSD)
	} else {
		s = "UGX " + groupDigits(l.PriceUGX)
	}
	if l.Kind == models.KindRent {
		s += "/month"
	}
	return s
}

// FormatAmount renders a bare amount with its currency label.
func FormatAmount(amount int64, cur models.Currency) string {
	if cur == models.CurrencyUSD {
		return "$" + groupDigits(amount)
	}
	return fmt.Sprintf("UGX %s", groupDigits(amount))
}

// groupDigits inserts thousands separators into an amount. The sign is
// stripped before grouping so it never counts as a lead digit.
func groupDigits(n int64) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
