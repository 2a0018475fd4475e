package model

import "time"

type Comment struct {
	ID       string `gorm:"primaryKey" json:"id"`
	PetID    string `gorm:"index;not null" json:"pet"`
	AuthorID string `gorm:"index;not null" json:"author"`
	Content  string `gorm:"not null" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
