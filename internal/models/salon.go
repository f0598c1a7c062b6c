package models

import "time"

const SalonActive = "Ativo"

type Salon struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Codigo *string `gorm:"size:50;uniqueIndex" json:"codigo,omitempty"`

	Nome       string `gorm:"size:200;not null" json:"nome"`
	Pais       string `gorm:"size:100" json:"pais"`
	NIF        string `gorm:"size:50" json:"nif,omitempty"`
	Estado     string `gorm:"size:20;index" json:"estado"`
	Telefone   string `gorm:"size:20" json:"telefone"`
	Email      string `gorm:"size:100" json:"email"`
	Website    string `gorm:"size:200" json:"website"`
	PaisMorada string `gorm:"size:100" json:"pais_morada,omitempty"`
	Regiao     string `gorm:"size:100" json:"regiao"`
	Cidade     string `gorm:"size:100" json:"cidade"`
	Rua        string `gorm:"size:200" json:"rua"`
	Porta      string `gorm:"size:20" json:"porta"`
	CodPostal  string `gorm:"size:20" json:"cod_postal"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	OwnerID *uint `gorm:"index" json:"owner_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether userID is the salon's owner.
func (s *Salon) OwnedBy(userID uint) bool {
	return s.OwnerID != nil && *s.OwnerID == userID
}
