package models

import (
	"carhive/src/types"
	"time"
)

// Booking is the durable record of a confirmed rental. Rows are created only
// by the payment settlement path, never at checkout initiation. The unique
// indexes on booking_number and payment_intent_id are what make redelivered
// payment events collapse into no-ops.
type Booking struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	BookingNumber   string  `gorm:"uniqueIndex" json:"booking_number,omitempty"`
	CustomerID      uint    `json:"customer_id,omitempty"`
	CarID           uint    `json:"car_id,omitempty"`
	VendorID        uint    `json:"vendor_id,omitempty"`
	PaymentIntentId *string `gorm:"uniqueIndex" json:"payment_intent_id,omitempty"`

	StartDate time.Time `json:"start_date,omitempty"`
	EndDate   time.Time `json:"end_date,omitempty"`
	TotalDays int       `json:"total_days,omitempty"`

	BasePrice     float64 `json:"base_price,omitempty"`
	Discount      float64 `json:"discount,omitempty"`
	Tax           float64 `json:"tax,omitempty"`
	Commission    float64 `json:"commission,omitempty"`
	TotalAmount   float64 `json:"total_amount,omitempty"`
	DepositAmount float64 `json:"deposit_amount,omitempty"`

	PickupLocation  string `json:"pickup_location,omitempty"`
	DropoffLocation string `json:"dropoff_location,omitempty"`

	Status        types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`
	PaymentStatus types.PaymentStatus `gorm:"default:'pending'" json:"payment_status,omitempty"`

	Car      *Car    `gorm:"foreignKey:car_id" json:"car,omitempty"`
	Vendor   *Vendor `gorm:"foreignKey:vendor_id" json:"-"`
	Customer *User   `gorm:"foreignKey:customer_id" json:"-"`

	Metadata *types.JSONB `json:"metadata,omitempty"`

	types.Timestamps
}
