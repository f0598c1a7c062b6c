package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID   uint `gorm:"not null;index" json:"salon_id"`
	ServiceID uint `gorm:"not null" json:"service_id"`

	CustomerName  string  `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string  `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone *string `gorm:"size:20" json:"customer_phone"`

	// BookingDate is "2006-01-02", BookingTime is "15:04".
	BookingDate string `gorm:"size:10;not null;index" json:"booking_date"`
	BookingTime string `gorm:"size:5;not null" json:"booking_time"`
	Duration    int    `json:"duration"`

	Status string `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
