package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyExpired(t *testing.T) {
	window := 7 * 24 * time.Hour

	tests := []struct {
		name     string
		key      string
		joinedAt time.Time
		want     bool
	}{
		{
			name:     "fresh key within window",
			key:      "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
			joinedAt: time.Now().Add(-time.Hour),
			want:     false,
		},
		{
			name:     "unused key past window",
			key:      "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
			joinedAt: time.Now().Add(-window - time.Minute),
			want:     true,
		},
		{
			name:     "sentinel key is expired even when fresh",
			key:      ActivatedSentinel,
			joinedAt: time.Now(),
			want:     true,
		},
		{
			name:     "sentinel key past window",
			key:      ActivatedSentinel,
			joinedAt: time.Now().Add(-window - time.Hour),
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RegistrationProfile{AccountID: uuid.New(), ActivationKey: tt.key}
			assert.Equal(t, tt.want, p.KeyExpired(tt.joinedAt, window))
		})
	}
}

func TestPendingProfileExpired(t *testing.T) {
	window := 24 * time.Hour

	fresh := PendingProfile{
		AccountID:     uuid.New(),
		ActivationKey: "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
		JoinedAt:      time.Now().Add(-time.Hour),
	}
	assert.False(t, fresh.Expired(window))

	stale := PendingProfile{
		AccountID:     uuid.New(),
		ActivationKey: "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
		JoinedAt:      time.Now().Add(-window - time.Minute),
	}
	assert.True(t, stale.Expired(window))
}
