package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleIntent() *CheckoutIntent {
	return &CheckoutIntent{
		BookingNumber:   "CR-1740000000-7F2K9A",
		CarID:           12,
		CustomerID:      3,
		VendorID:        5,
		StartDate:       time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		PickupLocation:  "Dubai Airport T1",
		DropoffLocation: "Dubai Marina",
		Breakdown: PriceBreakdown{
			TotalDays:      3,
			BasePrice:      225.00,
			Discount:       0,
			Tax:            11.25,
			Commission:     33.75,
			TotalAmount:    236.25,
			DepositAmount:  200.00,
			VendorEarnings: 191.25,
		},
	}
}

func TestCheckoutIntentMetadataRoundTrip(t *testing.T) {
	intent := sampleIntent()
	md := intent.ToMetadata()

	got, err := IntentFromMetadata(md)
	assert.Nil(t, err)
	assert.Equal(t, intent, got)
}

func TestIntentFromMetadataMissingField(t *testing.T) {
	md := sampleIntent().ToMetadata()
	delete(md, "vendorId")

	got, err := IntentFromMetadata(md)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "vendorId")
}

func TestIntentFromMetadataUnparsableAmount(t *testing.T) {
	md := sampleIntent().ToMetadata()
	md["totalAmount"] = "two hundred"

	got, err := IntentFromMetadata(md)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "totalAmount")
}

func TestIntentFromMetadataBadDate(t *testing.T) {
	md := sampleIntent().ToMetadata()
	md["endDate"] = "04/03/2026"

	_, err := IntentFromMetadata(md)
	assert.ErrorContains(t, err, "endDate")
}
