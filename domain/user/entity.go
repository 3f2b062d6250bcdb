package user

import "time"

// User is an account created from a completed OAuth sign-in.
type User struct {
	ID                string    `gorm:"primarykey;size:36" json:"id"`
	Name              string    `gorm:"size:100" json:"name"`
	Email             string    `gorm:"size:255;index" json:"email"`
	Provider          string    `gorm:"size:50;not null;uniqueIndex:idx_provider_account" json:"provider"`
	ProviderAccountID string    `gorm:"size:255;not null;uniqueIndex:idx_provider_account" json:"provider_account_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName returns the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Session is the proof of a completed sign-in, carried on every procedure
// request. A nil Session means the caller is unauthenticated.
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}
