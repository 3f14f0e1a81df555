package models

import "carhive/src/types"

type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	UID   string `json:"uid,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	types.Timestamps
}
