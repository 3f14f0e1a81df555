package models

import (
	"carhive/src/types"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Car struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name,omitempty"`
	Slug     string `gorm:"uniqueIndex" json:"slug,omitempty"`
	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Year     uint   `json:"year,omitempty"`
	Location string `json:"location,omitempty"`
	Status   string `gorm:"default:'available'" json:"status,omitempty"`

	DailyRate   float64  `json:"daily_rate,omitempty"`
	WeeklyRate  *float64 `json:"weekly_rate,omitempty"`
	MonthlyRate *float64 `json:"monthly_rate,omitempty"`

	VendorID uint    `json:"vendor_id,omitempty"`
	Vendor   *Vendor `gorm:"foreignKey:vendor_id" json:"vendor,omitempty"`

	types.Timestamps
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(fmt.Sprintf("%s %s %d", c.Make, c.Model, c.Year))
	}
	return nil
}
