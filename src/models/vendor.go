package models

import "carhive/src/types"

type Vendor struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `json:"name,omitempty"`
	ContactEmail string `json:"email,omitempty"`
	Country      string `json:"country,omitempty"`
	// CommissionRate is a vendor-level percentage. Nil means the platform
	// default applies.
	CommissionRate *float64 `json:"commission_rate,omitempty"`
	Verified       bool     `json:"verified,omitempty"`

	Cars []Car `json:"cars,omitempty"`

	types.Timestamps
}
