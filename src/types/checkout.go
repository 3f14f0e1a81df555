package types

import (
	"fmt"
	"strconv"
	"time"
)

// PriceBreakdown is the fully-priced quote for a rental window. All monetary
// fields are rounded to 2 fractional digits when the breakdown is produced.
type PriceBreakdown struct {
	TotalDays      int     `json:"total_days"`
	BasePrice      float64 `json:"base_price"`
	Discount       float64 `json:"discount"`
	Tax            float64 `json:"tax"`
	Commission     float64 `json:"commission"`
	TotalAmount    float64 `json:"total_amount"`
	DepositAmount  float64 `json:"deposit_amount"`
	VendorEarnings float64 `json:"vendor_earnings"`
}

// CheckoutIntent is the complete booking intent carried inside the payment
// session metadata. Nothing is written to the database at checkout time, so
// every field needed to materialize a Booking later must survive the round
// trip through the provider's string-only metadata map.
type CheckoutIntent struct {
	BookingNumber   string
	CarID           uint
	CustomerID      uint
	VendorID        uint
	StartDate       time.Time
	EndDate         time.Time
	PickupLocation  string
	DropoffLocation string
	Breakdown       PriceBreakdown
}

const metadataDateFormat = "2006-01-02"

func (ci *CheckoutIntent) ToMetadata() map[string]string {
	return map[string]string{
		"bookingNumber":   ci.BookingNumber,
		"carId":           strconv.FormatUint(uint64(ci.CarID), 10),
		"customerId":      strconv.FormatUint(uint64(ci.CustomerID), 10),
		"vendorId":        strconv.FormatUint(uint64(ci.VendorID), 10),
		"startDate":       ci.StartDate.Format(metadataDateFormat),
		"endDate":         ci.EndDate.Format(metadataDateFormat),
		"pickupLocation":  ci.PickupLocation,
		"dropoffLocation": ci.DropoffLocation,
		"totalDays":       strconv.Itoa(ci.Breakdown.TotalDays),
		"basePrice":       formatAmount(ci.Breakdown.BasePrice),
		"discount":        formatAmount(ci.Breakdown.Discount),
		"tax":             formatAmount(ci.Breakdown.Tax),
		"commission":      formatAmount(ci.Breakdown.Commission),
		"totalAmount":     formatAmount(ci.Breakdown.TotalAmount),
		"depositAmount":   formatAmount(ci.Breakdown.DepositAmount),
		"vendorEarnings":  formatAmount(ci.Breakdown.VendorEarnings),
	}
}

// IntentFromMetadata rebuilds a CheckoutIntent from session metadata. Any
// missing or unparsable required key is an error; the settlement path must
// never fall back to defaults when reconstructing a Booking.
func IntentFromMetadata(md map[string]string) (*CheckoutIntent, error) {
	var ci CheckoutIntent
	var err error
	ci.BookingNumber, err = requireKey(md, "bookingNumber")
	if err != nil {
		return nil, err
	}
	if ci.CarID, err = parseUintKey(md, "carId"); err != nil {
		return nil, err
	}
	if ci.CustomerID, err = parseUintKey(md, "customerId"); err != nil {
		return nil, err
	}
	if ci.VendorID, err = parseUintKey(md, "vendorId"); err != nil {
		return nil, err
	}
	if ci.StartDate, err = parseDateKey(md, "startDate"); err != nil {
		return nil, err
	}
	if ci.EndDate, err = parseDateKey(md, "endDate"); err != nil {
		return nil, err
	}
	ci.PickupLocation = md["pickupLocation"]
	ci.DropoffLocation = md["dropoffLocation"]
	days, err := requireKey(md, "totalDays")
	if err != nil {
		return nil, err
	}
	if ci.Breakdown.TotalDays, err = strconv.Atoi(days); err != nil {
		return nil, fmt.Errorf("metadata key [totalDays] is not an integer: %s", days)
	}
	if ci.Breakdown.BasePrice, err = parseAmountKey(md, "basePrice"); err != nil {
		return nil, err
	}
	if ci.Breakdown.Discount, err = parseAmountKey(md, "discount"); err != nil {
		return nil, err
	}
	if ci.Breakdown.Tax, err = parseAmountKey(md, "tax"); err != nil {
		return nil, err
	}
	if ci.Breakdown.Commission, err = parseAmountKey(md, "commission"); err != nil {
		return nil, err
	}
	if ci.Breakdown.TotalAmount, err = parseAmountKey(md, "totalAmount"); err != nil {
		return nil, err
	}
	if ci.Breakdown.DepositAmount, err = parseAmountKey(md, "depositAmount"); err != nil {
		return nil, err
	}
	if ci.Breakdown.VendorEarnings, err = parseAmountKey(md, "vendorEarnings"); err != nil {
		return nil, err
	}
	return &ci, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func requireKey(md map[string]string, key string) (string, error) {
	v, ok := md[key]
	if !ok || v == "" {
		return "", fmt.Errorf("metadata key [%s] is missing", key)
	}
	return v, nil
}

func parseUintKey(md map[string]string, key string) (uint, error) {
	v, err := requireKey(md, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("metadata key [%s] is not a valid id: %s", key, v)
	}
	return uint(n), nil
}

func parseDateKey(md map[string]string, key string) (time.Time, error) {
	v, err := requireKey(md, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(metadataDateFormat, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("metadata key [%s] is not a valid date: %s", key, v)
	}
	return t, nil
}

func parseAmountKey(md map[string]string, key string) (float64, error) {
	v, err := requireKey(md, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("metadata key [%s] is not a valid amount: %s", key, v)
	}
	return f, nil
}
