package model

import "time"

const (
	ReportLost  = "lost"
	ReportFound = "found"
)

// LostFoundReport is a sighting report filed against an existing pet.
type LostFoundReport struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	PetID       string    `gorm:"index;not null" json:"petId"`
	ReportType  string    `gorm:"not null" json:"reportType"`
	Description string    `gorm:"not null" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	ReporterID  string    `gorm:"index;not null" json:"reporter"`
	ReportDate  time.Time `json:"reportDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
