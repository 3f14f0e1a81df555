package models

import (
	"carhive/src/types"
	"time"
)

// AvailabilityBlock marks a car as unavailable over a date range. Blocks
// created by settlement always mirror the owning Booking's date range.
type AvailabilityBlock struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CarID     uint      `json:"car_id,omitempty"`
	StartDate time.Time `json:"start_date,omitempty"`
	EndDate   time.Time `json:"end_date,omitempty"`
	Reason    string    `gorm:"default:'booked'" json:"reason,omitempty"`
	BookingID uint      `json:"booking_id,omitempty"`

	Car     *Car     `gorm:"foreignKey:car_id" json:"-"`
	Booking *Booking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}
