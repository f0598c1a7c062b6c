package models

import "time"

type SalonImage struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"not null;index" json:"salon_id"`

	ImageURL     string `gorm:"size:500;not null" json:"image_url"`
	ObjectKey    string `gorm:"size:300" json:"-"`
	ImageAlt     string `gorm:"size:200" json:"image_alt"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
}
