package seed

import "github.com/lbertrand/boutique/internal/domain"

// TotalCents sums PriceCents × Quantity over the given items. Item prices are
// snapshots captured when the order was built; the total is never recomputed
// from live product rows.
func TotalCents(items []domain.OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

// InStock derives the availability flag from the stock count.
func InStock(stock int) bool {
	return stock > 0
}

// NormalizeQuantity resolves a missing or invalid fixture quantity to the
// minimum valid quantity of 1, so no undefined numeric reaches a derivation.
func NormalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
