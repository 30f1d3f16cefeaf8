package models

import "gorm.io/gorm"

// User is an account created through registration. CreatedAt doubles as the
// registration timestamp surfaced by the status endpoint.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex"`
	Password string // bcrypt hash, never the plaintext
	Admin    bool   `gorm:"default:false"`
}
