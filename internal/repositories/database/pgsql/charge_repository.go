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
	"github.com/shopspring/decimal"
)

const chargeColumns = `charge_id, account_id, service_type, tariff, volume, amount, period, status, created_at, last_updated_at`

type PgxChargeRepository struct {
	BaseRepository
}

// newPgxChargeRepository creates a new repository for charge data.
func newPgxChargeRepository(pool DBPool) *PgxChargeRepository {
	return &PgxChargeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChargeRepositoryFacade = (*PgxChargeRepository)(nil)

func scanCharge(row pgx.Row) (domain.Charge, error) {
	var m models.Charge
	if err := row.Scan(
		&m.ChargeID,
		&m.AccountID,
		&m.ServiceType,
		&m.Tariff,
		&m.Volume,
		&m.Amount,
		&m.Period,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	); err != nil {
		return domain.Charge{}, err
	}
	return mapping.ToDomainCharge(m)
}

// lockCharge reads a charge and holds its row lock until the transaction ends.
func lockCharge(ctx context.Context, q querier, chargeID string) (domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE charge_id = $1 FOR UPDATE;`
	charge, err := scanCharge(q.QueryRow(ctx, query, chargeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Charge{}, fmt.Errorf("%w: charge %s", apperrors.ErrNotFound, chargeID)
		}
		return domain.Charge{}, apperrors.NewStorageError("failed to lock charge "+chargeID, err)
	}
	return charge, nil
}

func updateChargeStatus(ctx context.Context, q querier, chargeID string, status domain.ChargeStatus, now time.Time) error {
	tag, err := q.Exec(ctx,
		`UPDATE charges SET status = $1, last_updated_at = $2 WHERE charge_id = $3;`,
		string(status), now, chargeID,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to update status of charge "+chargeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: charge %s", apperrors.ErrNotFound, chargeID)
	}
	return nil
}

// SaveCharge inserts a new charge. An unknown account yields apperrors.ErrNotFound.
func (r *PgxChargeRepository) SaveCharge(ctx context.Context, charge domain.Charge) error {
	m := mapping.ToModelCharge(charge)
	query := `
		INSERT INTO charges (charge_id, account_id, service_type, tariff, volume, amount, period, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ChargeID,
		m.AccountID,
		m.ServiceType,
		m.Tariff,
		m.Volume,
		m.Amount,
		m.Period,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		mapped := mapWriteError(err, "failed to save charge "+m.ChargeID)
		if errors.Is(mapped, apperrors.ErrConflict) {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
		}
		return mapped
	}
	return nil
}

// FindChargeByID retrieves a charge by its ID.
func (r *PgxChargeRepository) FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE charge_id = $1;`
	charge, err := scanCharge(r.Pool.QueryRow(ctx, query, chargeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: charge %s", apperrors.ErrNotFound, chargeID)
		}
		return nil, apperrors.NewStorageError("failed to find charge by ID "+chargeID, err)
	}
	return &charge, nil
}

// ListCharges retrieves the charges of an account, restricted to one period when period is not empty.
func (r *PgxChargeRepository) ListCharges(ctx context.Context, accountID string, period string) ([]domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE account_id = $1`
	args := []any{accountID}
	if period != "" {
		query += ` AND period = $2`
		args = append(args, period)
	}
	query += ` ORDER BY period, created_at, charge_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list charges for account "+accountID, err)
	}
	defer rows.Close()

	charges := []domain.Charge{}
	for rows.Next() {
		charge, err := scanCharge(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan charge row", err)
		}
		charges = append(charges, charge)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating charge rows", err)
	}
	return charges, nil
}

// SumChargeAmounts returns the total of every charge of the account. No charges sum to zero.
func (r *PgxChargeRepository) SumChargeAmounts(ctx context.Context, accountID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM charges WHERE account_id = $1;`, accountID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewStorageError("failed to sum charges for account "+accountID, err)
	}
	return total, nil
}

// TransitionChargeStatus moves a locked charge to next when the transition is allowed.
func (r *PgxChargeRepository) TransitionChargeStatus(ctx context.Context, chargeID string, next domain.ChargeStatus, now time.Time) (*domain.Charge, error) {
	var updated domain.Charge
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		charge, err := lockCharge(ctx, tx, chargeID)
		if err != nil {
			return err
		}
		if err := charge.TransitionTo(next, now); err != nil {
			return err
		}
		if err := updateChargeStatus(ctx, tx, chargeID, charge.Status, now); err != nil {
			return err
		}
		updated = charge
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCharge removes a charge. Charges that already carry payments fail with apperrors.ErrConflict.
func (r *PgxChargeRepository) DeleteCharge(ctx context.Context, chargeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM charges WHERE charge_id = $1;`, chargeID)
	if err != nil {
		return mapWriteError(err, "failed to delete charge "+chargeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: charge %s", apperrors.ErrNotFound, chargeID)
	}
	return nil
}
