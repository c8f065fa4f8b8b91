package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-signup-slim/internal/auth"
	"github.com/tendant/simple-signup-slim/internal/domain"
)

// Store is the persistence surface the registration workflow needs. The
// multi-write operations (CreatePending, MarkActivated) must be atomic: the
// account and its profile are never observed apart.
type Store interface {
	CreatePending(ctx context.Context, account *domain.Account, profile *domain.RegistrationProfile) error
	ProfileByKey(ctx context.Context, key string) (*domain.RegistrationProfile, error)
	AccountByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	MarkActivated(ctx context.Context, accountID uuid.UUID) error
	PendingProfiles(ctx context.Context) ([]domain.PendingProfile, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// Mailer delivers the activation email. Delivery failures are the mailer's
// problem; the service logs them and moves on.
type Mailer interface {
	SendActivationEmail(to, activationURL string, expirationDays int) error
}

// Config holds registration service configuration.
type Config struct {
	// ActivationWindow is how long an activation key stays usable after the
	// account joins.
	ActivationWindow time.Duration
	// AppBaseURL is the externally visible base URL used to build activation
	// links.
	AppBaseURL string
}

// Service orchestrates the account registration and activation lifecycle.
type Service struct {
	config Config
	store  Store
	mailer Mailer
	logger *slog.Logger
}

// NewService creates a new registration service. The mailer may be nil, in
// which case activation emails are never sent.
func NewService(config Config, store Store, mailer Mailer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		config: config,
		store:  store,
		mailer: mailer,
		logger: logger,
	}
}

// Register creates an inactive account with an attached activation profile.
// When notify is true and a mailer is configured, the activation email is
// sent after the account is durably created; a delivery failure does not
// undo the registration.
//
// The caller is expected to have validated the input fields; Register itself
// only re-checks username availability.
func (s *Service) Register(ctx context.Context, username, email, password string, notify bool) (*domain.Account, error) {
	taken, err := s.store.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	key, err := GenerateActivationKey(username)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       false,
		JoinedAt:     now,
		UpdatedAt:    now,
	}
	profile := &domain.RegistrationProfile{
		AccountID:     account.ID,
		ActivationKey: key,
	}

	if err := s.store.CreatePending(ctx, account, profile); err != nil {
		return nil, err
	}

	if notify && s.mailer != nil {
		activationURL := fmt.Sprintf("%s/v1/registration/activate/%s", s.config.AppBaseURL, key)
		if err := s.mailer.SendActivationEmail(account.Email, activationURL, s.windowDays()); err != nil {
			s.logger.Error("failed to send activation email", "error", err, "account_id", account.ID)
		} else {
			s.logger.Info("activation email sent", "account_id", account.ID)
		}
	}

	return account, nil
}

// Activate consumes an activation key and flips the account to active.
// Unknown, expired and already-used keys all come back as
// domain.ErrNotActivated; callers should not tell users apart which it was.
func (s *Service) Activate(ctx context.Context, key string) (*domain.Account, error) {
	profile, err := s.store.ProfileByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrNotActivated
		}
		return nil, err
	}

	account, err := s.store.AccountByID(ctx, profile.AccountID)
	if err != nil {
		return nil, err
	}

	if profile.KeyExpired(account.JoinedAt, s.config.ActivationWindow) {
		return nil, domain.ErrNotActivated
	}

	// Both writes land in one transaction; ErrInconsistentState out of the
	// store means the transition was already half-done and must surface.
	if err := s.store.MarkActivated(ctx, account.ID); err != nil {
		return nil, err
	}

	account.Active = true
	s.logger.Info("account activated", "account_id", account.ID, "username", account.Username)
	return account, nil
}

// DeleteExpired removes accounts whose activation keys expired without ever
// being used. Active accounts and consumed keys are never touched, so
// repeated sweeps are harmless. It returns the number of accounts deleted.
func (s *Service) DeleteExpired(ctx context.Context) (int, error) {
	pending, err := s.store.PendingProfiles(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for i := range pending {
		p := &pending[i]
		if !p.Expired(s.config.ActivationWindow) {
			continue
		}
		if err := s.store.DeleteAccount(ctx, p.AccountID); err != nil {
			// A concurrent activation or sweep may have raced us; skip and
			// keep sweeping.
			if errors.Is(err, domain.ErrAccountNotFound) {
				continue
			}
			return deleted, err
		}
		deleted++
	}

	if deleted > 0 {
		s.logger.Info("expired pending accounts deleted", "count", deleted)
	}
	return deleted, nil
}

func (s *Service) windowDays() int {
	return int(s.config.ActivationWindow / (24 * time.Hour))
}
