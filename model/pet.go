package model

import "time"

const (
	PetAvailable = "available"
	PetReserved  = "reserved"
	PetLost      = "lost"
	PetFound     = "found"
)

type Pet struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Species     string    `gorm:"not null" json:"species"`
	Breed       string    `gorm:"not null" json:"breed"`
	BirthDate   time.Time `json:"birthDate"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	ImageKey    string    `json:"image"`
	Status      string    `gorm:"default:available;index" json:"status"`
	OwnerID     string    `gorm:"index;not null" json:"owner"`

	LastSeen    string     `json:"lastSeen,omitempty"`
	ReservedAt  *time.Time `json:"reservedAt,omitempty"`
	FoundAt     *time.Time `json:"foundAt,omitempty"`
	LocationLat *float64   `json:"locationLat,omitempty"`
	LocationLng *float64   `json:"locationLng,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
