package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/tendant/simple-signup-slim/internal/domain"
)

// ProfilesRepository handles registration profile persistence.
type ProfilesRepository struct {
	db *sql.DB
}

// NewProfilesRepository creates a new registration profiles repository.
func NewProfilesRepository(db *sql.DB) *ProfilesRepository {
	return &ProfilesRepository{db: db}
}

// CreateTx attaches a registration profile to an account within a
// transaction. The account_id primary key keeps the relation 1:1.
func (r *ProfilesRepository) CreateTx(ctx context.Context, q Querier, profile *domain.RegistrationProfile) error {
	query := `
		INSERT INTO registration_profiles (account_id, activation_key)
		VALUES ($1, $2)
	`
	_, err := q.ExecContext(ctx, query, profile.AccountID, profile.ActivationKey)
	return err
}

// GetByKey retrieves a registration profile by exact activation key match.
func (r *ProfilesRepository) GetByKey(ctx context.Context, key string) (*domain.RegistrationProfile, error) {
	query := `
		SELECT account_id, activation_key
		FROM registration_profiles
		WHERE activation_key = $1
	`
	profile := &domain.RegistrationProfile{}
	err := r.db.QueryRowContext(ctx, query, key).Scan(&profile.AccountID, &profile.ActivationKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// MarkActivatedTx overwrites the activation key with the used sentinel within
// a transaction. A profile already carrying the sentinel is not matched, so a
// zero-row result means the transition has nothing left to consume.
func (r *ProfilesRepository) MarkActivatedTx(ctx context.Context, q Querier, accountID uuid.UUID) error {
	query := `
		UPDATE registration_profiles
		SET activation_key = $2
		WHERE account_id = $1 AND activation_key <> $2
	`
	result, err := q.ExecContext(ctx, query, accountID, domain.ActivatedSentinel)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInconsistentState
	}
	return nil
}

// ListPending returns every profile whose account is still inactive and whose
// key has not been consumed, with the account's join time for expiry checks.
func (r *ProfilesRepository) ListPending(ctx context.Context) ([]domain.PendingProfile, error) {
	query := `
		SELECT p.account_id, p.activation_key, a.joined_at
		FROM registration_profiles p
		JOIN accounts a ON a.id = p.account_id
		WHERE a.active = false AND p.activation_key <> $1
	`
	rows, err := r.db.QueryContext(ctx, query, domain.ActivatedSentinel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingProfile
	for rows.Next() {
		var p domain.PendingProfile
		if err := rows.Scan(&p.AccountID, &p.ActivationKey, &p.JoinedAt); err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}
