package model

import "time"

// Post is a forum thread starter.
type Post struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	AuthorID string `gorm:"index;not null" json:"author"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
