package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivatedSentinel replaces the activation key once it has been used.
// A profile carrying it is permanently expired.
const ActivatedSentinel = "ALREADY_ACTIVATED"

// ActivationKeyLen is the length of a freshly issued key (sha1 hex digest).
const ActivationKeyLen = 40

// RegistrationProfile holds the activation state for exactly one account.
// It is created in the same transaction as the account and lives and dies
// with it.
type RegistrationProfile struct {
	AccountID     uuid.UUID
	ActivationKey string
}

// KeyExpired reports whether the key can no longer activate the account:
// either it was already used, or the activation window has elapsed since
// the account joined.
func (p *RegistrationProfile) KeyExpired(joinedAt time.Time, window time.Duration) bool {
	if p.ActivationKey == ActivatedSentinel {
		return true
	}
	return !time.Now().Before(joinedAt.Add(window))
}

// PendingProfile is a profile joined with its account's join time, as read
// by the expiry sweeper.
type PendingProfile struct {
	AccountID     uuid.UUID
	ActivationKey string
	JoinedAt      time.Time
}

// Expired reports whether the pending profile's activation window has
// elapsed.
func (p *PendingProfile) Expired(window time.Duration) bool {
	profile := RegistrationProfile{AccountID: p.AccountID, ActivationKey: p.ActivationKey}
	return profile.KeyExpired(p.JoinedAt, window)
}
