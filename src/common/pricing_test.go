package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fptr(v float64) *float64 { return &v }

func TestCalculatePriceDailyTier(t *testing.T) {
	// 3 days at 75/day, no weekly/monthly rates, default commission.
	card := RateCard{DailyRate: 75}
	got := CalculatePrice(card, day(2026, time.March, 1), day(2026, time.March, 4))

	assert.Equal(t, 3, got.TotalDays)
	assert.Equal(t, 225.00, got.BasePrice)
	assert.Equal(t, 0.00, got.Discount)
	assert.Equal(t, 11.25, got.Tax)
	assert.Equal(t, 236.25, got.TotalAmount)
	assert.Equal(t, 33.75, got.Commission)
	assert.Equal(t, 200.00, got.DepositAmount)
	assert.Equal(t, 191.25, got.VendorEarnings)
}

func TestCalculatePriceWeeklyTier(t *testing.T) {
	// 10 days at 50/day with a 300 weekly rate: one week plus 3 remainder days.
	card := RateCard{DailyRate: 50, WeeklyRate: fptr(300)}
	got := CalculatePrice(card, day(2026, time.March, 1), day(2026, time.March, 11))

	assert.Equal(t, 10, got.TotalDays)
	assert.Equal(t, 450.00, got.BasePrice)
	assert.Equal(t, 45.00, got.Discount)
	assert.Equal(t, 20.25, got.Tax)
	assert.Equal(t, 425.25, got.TotalAmount)
	assert.Equal(t, 60.75, got.Commission)
	assert.Equal(t, 344.25, got.VendorEarnings)
	assert.Equal(t, 200.00, got.DepositAmount)
}

func TestCalculatePriceMonthlyTierIsFlat(t *testing.T) {
	// 35 days with a monthly rate bills a single flat month.
	card := RateCard{DailyRate: 75, MonthlyRate: fptr(1800)}
	got := CalculatePrice(card, day(2026, time.March, 1), day(2026, time.April, 5))

	assert.Equal(t, 35, got.TotalDays)
	assert.Equal(t, 1800.00, got.BasePrice)
	assert.Equal(t, 360.00, got.Discount)
	assert.Equal(t, 72.00, got.Tax)
	assert.Equal(t, 1512.00, got.TotalAmount)
	assert.Equal(t, 302.40, got.DepositAmount)
}

func TestCalculatePriceClampsDays(t *testing.T) {
	card := RateCard{DailyRate: 40}

	same := CalculatePrice(card, day(2026, time.March, 1), day(2026, time.March, 1))
	assert.Equal(t, 1, same.TotalDays)
	assert.Equal(t, 40.00, same.BasePrice)

	inverted := CalculatePrice(card, day(2026, time.March, 5), day(2026, time.March, 1))
	assert.Equal(t, 1, inverted.TotalDays)
	assert.Equal(t, 40.00, inverted.BasePrice)
}

func TestCalculatePriceVendorCommissionRate(t *testing.T) {
	card := RateCard{DailyRate: 100, CommissionRate: fptr(20)}
	got := CalculatePrice(card, day(2026, time.March, 1), day(2026, time.March, 3))

	// subtotal 200, commission 20% of subtotal, customer total unaffected.
	assert.Equal(t, 40.00, got.Commission)
	assert.Equal(t, 160.00, got.VendorEarnings)
	assert.Equal(t, 210.00, got.TotalAmount)
}

func TestCalculatePriceProperties(t *testing.T) {
	cards := []RateCard{
		{DailyRate: 1},
		{DailyRate: 75, WeeklyRate: fptr(400)},
		{DailyRate: 60, WeeklyRate: fptr(350), MonthlyRate: fptr(1200)},
		{DailyRate: 2500, CommissionRate: fptr(25)},
	}
	for _, card := range cards {
		for days := 1; days <= 40; days += 3 {
			start := day(2026, time.March, 1)
			got := CalculatePrice(card, start, start.AddDate(0, 0, days))

			assert.Positive(t, got.TotalAmount)
			assert.GreaterOrEqual(t, got.DepositAmount, 200.00)
			assert.InDelta(t, got.BasePrice-got.Discount-got.Commission, got.VendorEarnings, 0.011)
			assert.InDelta(t, got.BasePrice-got.Discount+got.Tax, got.TotalAmount, 0.011)
		}
	}
}
