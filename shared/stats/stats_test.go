package stats_test

import (
	"testing"

	"grandplaza/shared/stats"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type invoice struct {
	Amount     decimal.Decimal
	PaidAmount decimal.Decimal
	Status     string
}

func TestSum_Outstanding(t *testing.T) {
	invoices := []invoice{
		{Amount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(100)},
		{Amount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(0)},
		{Amount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(50)},
	}

	outstanding := stats.Sum(invoices, func(i invoice) decimal.Decimal { return i.Amount.Sub(i.PaidAmount) })

	assert.True(t, decimal.NewFromInt(150).Equal(outstanding), "got %s", outstanding)
}

func TestSum_Empty(t *testing.T) {
	assert.True(t, stats.Sum[invoice](nil, func(i invoice) decimal.Decimal { return i.Amount }).IsZero())
}

func TestCount(t *testing.T) {
	invoices := []invoice{{Status: "paid"}, {Status: "pending"}, {Status: "paid"}}

	assert.Equal(t, 2, stats.Count(invoices, func(i invoice) bool { return i.Status == "paid" }))
	assert.Equal(t, map[string]int{"paid": 2, "pending": 1}, stats.CountBy(invoices, func(i invoice) string { return i.Status }))
}

func TestAverage(t *testing.T) {
	assert.True(t, stats.Average(decimal.NewFromInt(0), 0).IsZero())
	assert.True(t, stats.Average(decimal.NewFromInt(5000), 0).IsZero())
	assert.Equal(t, "3333.33", stats.Average(decimal.NewFromInt(10000), 3).String())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, stats.Percentage(3, 0))
	assert.Equal(t, 75.0, stats.Percentage(3, 4))
	assert.Equal(t, 33.3, stats.Percentage(1, 3))
}

func TestSeries(t *testing.T) {
	got := stats.Series([]string{"Standard", "Deluxe", "Suite"}, map[string]int{"Deluxe": 2, "Standard": 5})

	assert.Equal(t, []stats.Point{
		{Label: "Standard", Value: 5},
		{Label: "Deluxe", Value: 2},
		{Label: "Suite", Value: 0},
	}, got)
}
