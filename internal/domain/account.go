package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity record. Accounts are always created inactive;
// only a successful activation flips Active to true, and only the expiry
// sweeper ever deletes one.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Active       bool
	JoinedAt     time.Time
	UpdatedAt    time.Time
}
