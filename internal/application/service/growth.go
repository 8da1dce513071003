package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// GrowthRate returns the percentage change from previous to current rounded
// to one decimal place, ties to even. It is 0 when previous is 0.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	rate := (current - previous) / previous * 100
	return math.RoundToEven(rate*10) / 10
}

func decimalGrowth(current, previous decimal.Decimal) float64 {
	return GrowthRate(current.InexactFloat64(), previous.InexactFloat64())
}

func countGrowth(current, previous int64) float64 {
	return GrowthRate(float64(current), float64(previous))
}
