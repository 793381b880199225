package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/salon-backend/internal/models"
)

func TestRollup(t *testing.T) {
	records := []models.DailySale{
		{Date: "2025-05-01", TotalSales: 100, Expenses: []models.Expense{{Name: "supplies", Amount: 50}}},
		{Date: "2025-05-02", TotalSales: 200},
		{Date: "2025-05-03", TotalSales: 300, Expenses: []models.Expense{{Name: "laundry", Amount: 20}}},
	}

	got := Rollup(records)

	assert.Equal(t, 600.0, got.TotalSales)
	assert.Equal(t, 70.0, got.TotalExpenses)
	assert.Equal(t, 530.0, got.ProfitOrLoss)
}

func TestRollupEmpty(t *testing.T) {
	got := Rollup(nil)

	assert.Equal(t, 0.0, got.TotalSales)
	assert.Equal(t, 0.0, got.TotalExpenses)
	assert.Equal(t, 0.0, got.ProfitOrLoss)
}

func TestBreakdownTotal(t *testing.T) {
	assert.Equal(t, 450.0, BreakdownTotal(100, 200, 150))
	assert.Equal(t, 0.0, BreakdownTotal(0, 0, 0))
}
