package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tendant/simple-signup-slim/internal/domain"
)

// Store bundles the account and profile repositories behind the
// registration.Store interface, wrapping the multi-write operations in
// transactions so an account and its profile are only ever observed
// together.
type Store struct {
	db       *sql.DB
	accounts *AccountsRepository
	profiles *ProfilesRepository
}

// NewStore creates a new store over the given database.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		accounts: NewAccountsRepository(db),
		profiles: NewProfilesRepository(db),
	}
}

// CreatePending inserts an inactive account and its registration profile as
// one atomic unit.
func (s *Store) CreatePending(ctx context.Context, account *domain.Account, profile *domain.RegistrationProfile) error {
	return Tx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.accounts.CreateTx(ctx, tx, account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		if err := s.profiles.CreateTx(ctx, tx, profile); err != nil {
			return fmt.Errorf("failed to attach registration profile: %w", err)
		}
		return nil
	})
}

// ProfileByKey retrieves a registration profile by exact activation key.
func (s *Store) ProfileByKey(ctx context.Context, key string) (*domain.RegistrationProfile, error) {
	return s.profiles.GetByKey(ctx, key)
}

// AccountByID retrieves an account by ID.
func (s *Store) AccountByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// UsernameTaken checks whether a username is already in use,
// case-insensitively.
func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.accounts.ExistsByUsername(ctx, username)
}

// MarkActivated flips the account to active and consumes the activation key
// as one atomic unit. Neither write is ever committed without the other.
func (s *Store) MarkActivated(ctx context.Context, accountID uuid.UUID) error {
	return Tx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.accounts.SetActiveTx(ctx, tx, accountID); err != nil {
			return fmt.Errorf("failed to activate account: %w", err)
		}
		if err := s.profiles.MarkActivatedTx(ctx, tx, accountID); err != nil {
			return fmt.Errorf("failed to consume activation key: %w", err)
		}
		return nil
	})
}

// PendingProfiles returns profiles of inactive accounts whose keys have not
// been consumed.
func (s *Store) PendingProfiles(ctx context.Context) ([]domain.PendingProfile, error) {
	return s.profiles.ListPending(ctx)
}

// DeleteAccount permanently removes an account and, via cascade, its
// registration profile.
func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.accounts.Delete(ctx, id)
}
