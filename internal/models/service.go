package models

// Service is an entry of the global service catalogue.
type Service struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Category     string `gorm:"size:50" json:"category"`
	Description  string `gorm:"type:text" json:"description"`
	IsBioDiamond bool   `json:"is_bio_diamond"`
}

// SalonService is a salon's offering of a catalogue service.
type SalonService struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SalonID   uint    `gorm:"not null;uniqueIndex:ux_salon_service" json:"salon_id"`
	ServiceID uint    `gorm:"not null;uniqueIndex:ux_salon_service" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}
