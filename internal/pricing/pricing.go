package pricing

import (
	"github.com/shopspring/decimal"
)

// Rental-duration thresholds at which the daily rate is discounted.
const (
	WeeklyTierDays  = 7
	MonthlyTierDays = 30
)

var (
	weeklyFactor  = decimal.RequireFromString("0.90")
	monthlyFactor = decimal.RequireFromString("0.80")
)

// Quote computes the total price for renting at basePricePerDay over days.
// Tiers are inclusive lower bounds and the monthly tier must be checked
// before the weekly one, since the ranges overlap.
func Quote(basePricePerDay decimal.Decimal, days int) decimal.Decimal {
	total := basePricePerDay.Mul(decimal.NewFromInt(int64(days)))
	switch {
	case days >= MonthlyTierDays:
		return total.Mul(monthlyFactor)
	case days >= WeeklyTierDays:
		return total.Mul(weeklyFactor)
	default:
		return total
	}
}

// DiscountPercent reports the percentage discount applied for a duration,
// for display next to a price preview.
func DiscountPercent(days int) int {
	switch {
	case days >= MonthlyTierDays:
		return 20
	case days >= WeeklyTierDays:
		return 10
	default:
		return 0
	}
}
