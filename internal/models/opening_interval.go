package models

// OpeningInterval is one open window of a salon's weekly template.
// Weekday follows ISO order with Monday = 0 and Sunday = 6; times are
// canonical "15:04" strings.
type OpeningInterval struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"not null;index:ix_opening_salon_weekday" json:"salon_id"`
	Weekday int  `gorm:"not null;index:ix_opening_salon_weekday" json:"day_of_week"`

	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	IsAvailable bool   `gorm:"not null" json:"is_available"`
}
