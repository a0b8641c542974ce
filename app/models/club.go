package models

import "time"

// Club is one tenant. OwnerID doubles as the tenant key in record
// store paths, so one user owns at most one club.
type Club struct {
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name" validate:"required"`
	LogoURL   string    `json:"logoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is a club-owner account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
