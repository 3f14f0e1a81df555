package common

import (
	"carhive/src/config"
	"carhive/src/types"
	"math"
	"time"
)

// RateCard is the read-only pricing input owned by the car/vendor records.
type RateCard struct {
	DailyRate      float64
	WeeklyRate     *float64
	MonthlyRate    *float64
	CommissionRate *float64
}

const (
	taxRate         = 0.05
	depositRate     = 0.20
	depositFloor    = 200.00
	weeklyDiscount  = 0.10
	monthlyDiscount = 0.20
)

// CalculatePrice turns a rate card and a rental window into a full price
// breakdown. It is a pure function over well-formed numeric input; callers
// validate rates and dates before invoking it.
//
// Tier precedence: a rental of 30+ days with a monthly rate prices as one
// flat month regardless of length (kept as-is pending product clarification),
// then weekly+daily remainder, then daily. The discount tier is evaluated on
// day count alone, independent of which rate tier applied.
func CalculatePrice(card RateCard, startDate, endDate time.Time) types.PriceBreakdown {
	rawDays := int(endDate.Sub(startDate).Hours() / 24)
	totalDays := rawDays
	if totalDays <= 0 {
		totalDays = 1
	}

	var basePrice float64
	switch {
	case totalDays >= 30 && card.MonthlyRate != nil:
		basePrice = *card.MonthlyRate
	case totalDays >= 7 && card.WeeklyRate != nil:
		weeks := totalDays / 7
		remainder := totalDays % 7
		basePrice = float64(weeks)**card.WeeklyRate + float64(remainder)*card.DailyRate
	default:
		basePrice = float64(totalDays) * card.DailyRate
	}

	var discount float64
	if totalDays >= 30 {
		discount = basePrice * monthlyDiscount
	} else if totalDays >= 7 {
		discount = basePrice * weeklyDiscount
	}

	commissionRate := config.DEFAULT_COMMISSION_RATE
	if card.CommissionRate != nil {
		commissionRate = *card.CommissionRate
	}

	subtotal := basePrice - discount
	tax := subtotal * taxRate
	commission := subtotal * (commissionRate / 100)
	// Commission is the platform's cut of vendor earnings, not a customer
	// charge; it never contributes to totalAmount.
	totalAmount := subtotal + tax
	deposit := math.Max(round2(totalAmount*depositRate), depositFloor)

	return types.PriceBreakdown{
		TotalDays:      totalDays,
		BasePrice:      round2(basePrice),
		Discount:       round2(discount),
		Tax:            round2(tax),
		Commission:     round2(commission),
		TotalAmount:    round2(totalAmount),
		DepositAmount:  deposit,
		VendorEarnings: round2(subtotal - commission),
	}
}

// round2 rounds half up to 2 fractional digits. Rounding happens once per
// final field so results stay reproducible.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
