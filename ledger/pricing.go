// Package ledger holds the booking-ledger domain rules shared between the
// public booking flow and the admin reporting views: price parsing, revenue
// aggregation, service-type classification and weekday derivation.
package ledger

import (
	"sort"
	"strconv"
	"strings"

	"mehendi-studio-server/models"
)

// CurrencyPrefix is the display prefix prices are stored with (e.g. "₹85")
const CurrencyPrefix = "₹"

// ParsePrice extracts the numeric amount from a stored price value.
// Accepts bare numbers ("85"), prefixed strings ("₹85", "$85.50") or
// arbitrary junk; everything that is not a digit or decimal point is
// stripped before parsing. Unparsable values yield 0.
func ParsePrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatPrice standardizes a price for storage as a prefixed string,
// mirroring how designs are saved ("₹" + amount)
func FormatPrice(raw string) string {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), CurrencyPrefix))
	return CurrencyPrefix + trimmed
}

// TotalRevenue sums the denormalized design prices across bookings.
// Every status counts; pending and completed bookings alike contribute.
// This is the single revenue function used everywhere revenue is shown.
func TotalRevenue(bookings []models.Booking) float64 {
	var total float64
	for _, b := range bookings {
		total += ParsePrice(b.DesignPrice)
	}
	return total
}

// SortDesignsByPrice orders designs by parsed numeric price, in place.
// The store only orders by creation time; price ordering happens here
// after fetch, so "₹85" and "85" sort identically.
func SortDesignsByPrice(designs []models.Design, ascending bool) {
	sort.SliceStable(designs, func(i, j int) bool {
		pi, pj := ParsePrice(designs[i].Price), ParsePrice(designs[j].Price)
		if ascending {
			return pi < pj
		}
		return pi > pj
	})
}
