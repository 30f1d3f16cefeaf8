package repository

import (
	"errors"

	"auth-api/internals/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Users is the persistence surface for user accounts.
type Users interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Insert(user *models.User) error
}

// Blacklist persists revoked token strings and answers membership queries.
type Blacklist interface {
	// Add records the token as revoked. Adding a token that is already
	// blacklisted is a no-op.
	Add(token string) error
	// Contains reports whether the token has been revoked.
	Contains(token string) (bool, error)
}
