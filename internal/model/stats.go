package model

// GlobalStats are the server-wide aggregates from the stats endpoint. They
// cover the whole data set, independent of any active filter.
type GlobalStats struct {
	TotalUnits    int    `json:"totalUnits"`
	TotalAmount   Amount `json:"totalAmount"`
	TotalDiscount Amount `json:"totalDiscount"`
}

// PageStats are aggregates summed from the currently visible page only. They
// are a deliberate fallback for when global stats are unavailable and must
// never be presented as totals for the whole data set.
type PageStats struct {
	Records  int
	Units    int
	Amount   Amount
	Discount Amount
}

// SumPage computes page-scoped stats from the visible records. Records
// without an explicit discount are assumed to carry 10% of their amount,
// matching the dashboard's estimate.
func SumPage(txns []Transaction) PageStats {
	var stats PageStats
	stats.Records = len(txns)
	for _, t := range txns {
		stats.Units += t.Quantity
		stats.Amount += t.TotalAmount
		if t.Discount > 0 {
			stats.Discount += t.Discount
		} else {
			stats.Discount += t.TotalAmount * 0.1
		}
	}
	return stats
}

// FilterOptions is the server's filter vocabulary from the options endpoint.
// The filter bar carries its own hardcoded lists, so this is exposed for
// inspection rather than consumed by the UI.
type FilterOptions struct {
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	PaymentMethods []string `json:"paymentMethods"`
}
