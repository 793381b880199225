package ledger

import "github.com/salonhub/salon-backend/internal/models"

// MonthlyRollup aggregates a month's worth of daily records.
type MonthlyRollup struct {
	TotalSales    float64 `json:"totalSales"`
	TotalExpenses float64 `json:"totalExpenses"`
	ProfitOrLoss  float64 `json:"profitOrLoss"`
}

// Rollup sums the daily totals and the nested expense amounts; profit or
// loss is the difference.
func Rollup(records []models.DailySale) MonthlyRollup {
	var r MonthlyRollup

	for _, day := range records {
		r.TotalSales += day.TotalSales
		for _, exp := range day.Expenses {
			r.TotalExpenses += exp.Amount
		}
	}

	r.ProfitOrLoss = r.TotalSales - r.TotalExpenses
	return r
}

// BreakdownTotal sums the per-payment-method figures. It becomes the
// record's TotalSales at creation time and is not re-validated afterwards.
func BreakdownTotal(cash, card, online float64) float64 {
	return cash + card + online
}
