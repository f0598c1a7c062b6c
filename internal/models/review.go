package models

import "time"

type Review struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"not null;index" json:"salon_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"-"`
	Rating        int    `gorm:"not null" json:"rating"`
	Title         string `gorm:"size:200" json:"title"`
	Comment       string `gorm:"type:text" json:"comment"`
	IsVerified    bool   `json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
}
