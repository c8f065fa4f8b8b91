package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-signup-slim/internal/domain"
)

// AccountsRepository handles account persistence.
type AccountsRepository struct {
	db *sql.DB
}

// NewAccountsRepository creates a new accounts repository.
func NewAccountsRepository(db *sql.DB) *AccountsRepository {
	return &AccountsRepository{db: db}
}

// CreateTx inserts a new account within a transaction. Accounts are always
// inserted with the Active flag the caller set; registration sets false.
func (r *AccountsRepository) CreateTx(ctx context.Context, q Querier, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, username, email, password_hash, active, joined_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.ExecContext(ctx, query,
		account.ID, account.Username, account.Email, account.PasswordHash,
		account.Active, account.JoinedAt, account.UpdatedAt,
	)
	return err
}

// GetByID retrieves an account by ID.
func (r *AccountsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, username, email, password_hash, active, joined_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.Active, &account.JoinedAt, &account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByUsername retrieves an account by username, case-insensitively.
func (r *AccountsRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT id, username, email, password_hash, active, joined_at, updated_at
		FROM accounts
		WHERE LOWER(username) = LOWER($1)
	`
	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.Active, &account.JoinedAt, &account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ExistsByUsername checks if an account exists under a case-insensitive
// username comparison.
func (r *AccountsRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE LOWER(username) = LOWER($1))`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	return exists, err
}

// SetActiveTx marks an account active within a transaction.
func (r *AccountsRepository) SetActiveTx(ctx context.Context, q Querier, id uuid.UUID) error {
	query := `
		UPDATE accounts
		SET active = true, updated_at = $2
		WHERE id = $1
	`
	result, err := q.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Delete permanently deletes an account. The registration profile goes with
// it via the ON DELETE CASCADE constraint.
func (r *AccountsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
