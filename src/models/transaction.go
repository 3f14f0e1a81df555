package models

import (
	"carhive/src/types"

	"github.com/google/uuid"
)

type Transaction struct {
	ID uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`

	BookingID            uint
	UserID               uint
	Type                 string `gorm:"default:'payment'"`
	Amount               float64
	Currency             string
	PaymentMethod        string
	TransactionReference string
	Status               types.TransactionStatus
	Metadata             *types.JSONB

	types.Timestamps

	Booking Booking `gorm:"foreignKey:booking_id" json:"-"`
}
