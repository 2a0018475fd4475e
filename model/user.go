package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:user" json:"role"`
	Verified     bool   `gorm:"default:false" json:"isVerified"`

	// One-time codes. Cleared in the same update that consumes them
	VerificationCode     *string    `json:"-"`
	ResetPasswordCode    *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	PendingEmail         *string    `json:"-"`
	PendingEmailCode     *string    `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Pets     []Pet     `gorm:"foreignKey:OwnerID" json:"-"`
	Comments []Comment `gorm:"foreignKey:AuthorID" json:"-"`
	Posts    []Post    `gorm:"foreignKey:AuthorID" json:"-"`
}
