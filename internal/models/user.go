package models

import "time"

// User backoffice account table
//
// PasswordHash stays serializable because getUserByUsername must expose it to
// the authentication path; every other read scrubs it to "" before returning.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	Role         string    `gorm:"type:varchar(20);not null;default:'editor'" json:"role"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName table name override
func (User) TableName() string {
	return "users"
}

// Scrub blanks the password hash for external consumption
func (u *User) Scrub() *User {
	if u == nil {
		return nil
	}
	u.PasswordHash = ""
	return u
}
