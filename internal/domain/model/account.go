package model

import (
	"time"
)

type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Active         bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Snapshot returns a copy safe to hand to transport layers: identical to the
// account but with the stored hash cleared.
func (a *Account) Snapshot() *Account {
	if a == nil {
		return nil
	}
	snapshot := *a
	snapshot.HashedPassword = ""
	return &snapshot
}
