package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/utility_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/utility_billing_app/internal/models"
	"github.com/SscSPs/utility_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `account_id, user_id, number, name, address, area, residents, company, status, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool DBPool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	if err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Number,
		&m.Name,
		&m.Address,
		&m.Area,
		&m.Residents,
		&m.Company,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	); err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m)
}

// SaveAccount inserts a new account. A duplicate number yields apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, user_id, number, name, address, area, residents, company, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Number,
		m.Name,
		m.Address,
		m.Area,
		m.Residents,
		m.Company,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to save account "+m.AccountID)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, apperrors.NewStorageError("corrupt account row "+accountID, err)
		}
		return nil, apperrors.NewStorageError("failed to find account by ID "+accountID, err)
	}
	return &account, nil
}

// ListAccountsByUser retrieves all accounts of a user ordered by creation time.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at, account_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list accounts for user "+userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan account row", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating account rows", err)
	}
	return accounts, nil
}

// AccountNumberExists reports whether the number is already registered.
func (r *PgxAccountRepository) AccountNumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE number = $1);`, number).Scan(&exists)
	if err != nil {
		return false, apperrors.NewStorageError("failed to check account number", err)
	}
	return exists, nil
}

// UpdateAccount stores the editable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET number = $1, name = $2, address = $3, area = $4, residents = $5, company = $6, last_updated_at = $7
		WHERE account_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Number,
		m.Name,
		m.Address,
		m.Area,
		m.Residents,
		m.Company,
		m.LastUpdatedAt,
		m.AccountID,
	)
	if err != nil {
		return mapWriteError(err, "failed to update account "+m.AccountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// DeactivateAccount marks an account inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, now time.Time) error {
	return r.setAccountStatus(ctx, accountID, domain.AccountInactive, now)
}

// ActivateAccount marks an account active. Activating an active account only bumps last_updated_at.
func (r *PgxAccountRepository) ActivateAccount(ctx context.Context, accountID string, now time.Time) error {
	return r.setAccountStatus(ctx, accountID, domain.AccountActive, now)
}

func (r *PgxAccountRepository) setAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE accounts SET status = $1, last_updated_at = $2 WHERE account_id = $3;`,
		string(status), now, accountID,
	)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to set status %s on account %s", status, accountID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// DeleteAccount removes an account. Charges reference accounts with ON DELETE RESTRICT,
// so deleting an account that has charges fails with apperrors.ErrConflict.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return mapWriteError(err, "failed to delete account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
