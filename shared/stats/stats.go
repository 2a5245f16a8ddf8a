// Package stats has the reducers behind every summary card: counts, decimal sums and guarded ratios.
package stats

import (
	"github.com/shopspring/decimal"
)

// Point is one record of a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Sum adds value(item) over items.
func Sum[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		total = total.Add(value(item))
	}

	return total
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0

	for _, item := range items {
		if pred(item) {
			n++
		}
	}

	return n
}

// CountBy tallies items per key.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)

	for _, item := range items {
		counts[key(item)]++
	}

	return counts
}

// Average divides total by n, returning zero when n is zero.
func Average(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}

	return total.DivRound(decimal.NewFromInt(int64(n)), 2)
}

// Percentage returns part/whole*100 rounded to one decimal, or zero when whole is zero.
func Percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}

	pct, _ := decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(whole)), 1).
		Float64()

	return pct
}

// Series turns counts into chart points following the order of labels. Missing labels count as zero.
func Series(labels []string, counts map[string]int) []Point {
	points := make([]Point, 0, len(labels))

	for _, label := range labels {
		points = append(points, Point{Label: label, Value: float64(counts[label])})
	}

	return points
}
