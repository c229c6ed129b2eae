package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/utility_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/utility_billing_app/internal/middleware"
	"github.com/SscSPs/utility_billing_app/internal/models"
	"github.com/SscSPs/utility_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DefaultReceiptAttempts is used when a non-positive attempt limit is configured.
const DefaultReceiptAttempts = 5

type PgxPaymentRepository struct {
	BaseRepository
	receiptAttempts int
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool DBPool, receiptAttempts int) *PgxPaymentRepository {
	if receiptAttempts <= 0 {
		receiptAttempts = DefaultReceiptAttempts
	}
	return &PgxPaymentRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		receiptAttempts: receiptAttempts,
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var m models.Payment
	if err := row.Scan(
		&m.PaymentID,
		&m.ChargeID,
		&m.Amount,
		&m.PaymentDate,
		&m.ReceiptNumber,
		&m.Status,
		&m.CreatedAt,
	); err != nil {
		return domain.Payment{}, err
	}
	return mapping.ToDomainPayment(m)
}

// insertPayment stores the payment under a fresh receipt number. A receipt number that is
// already taken leaves the insert empty, so a new number is drawn until the attempts run out.
func (r *PgxPaymentRepository) insertPayment(ctx context.Context, q querier, payment domain.Payment, nextReceipt portsrepo.ReceiptNumberFunc) (domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	query := `
		INSERT INTO payments (payment_id, charge_id, amount, payment_date, receipt_number, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (receipt_number) DO NOTHING
		RETURNING payment_id;
	`
	for attempt := 1; attempt <= r.receiptAttempts; attempt++ {
		receipt, err := nextReceipt()
		if err != nil {
			return domain.Payment{}, apperrors.NewStorageError("failed to generate receipt number", err)
		}
		payment.ReceiptNumber = receipt
		m := mapping.ToModelPayment(payment)

		var insertedID string
		err = q.QueryRow(ctx, query,
			m.PaymentID,
			m.ChargeID,
			m.Amount,
			m.PaymentDate,
			m.ReceiptNumber,
			m.Status,
			m.CreatedAt,
		).Scan(&insertedID)
		if err == nil {
			return payment, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, mapWriteError(err, "failed to insert payment for charge "+payment.ChargeID)
		}
		logger.Warn("Receipt number collision, retrying",
			slog.String("receipt_number", receipt),
			slog.Int("attempt", attempt),
		)
	}
	return domain.Payment{}, apperrors.NewStorageError(
		fmt.Sprintf("no unique receipt number after %d attempts", r.receiptAttempts), nil)
}

// RecordPayment inserts the payment and marks its charge paid in one transaction.
// A missing charge yields apperrors.ErrNotFound, a paid one apperrors.ErrValidation.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment, nextReceipt portsrepo.ReceiptNumberFunc) (*domain.Payment, error) {
	var recorded domain.Payment
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		charge, err := lockCharge(ctx, tx, payment.ChargeID)
		if err != nil {
			return err
		}
		if err := charge.TransitionTo(domain.ChargePaid, payment.PaymentDate); err != nil {
			return err
		}

		recorded, err = r.insertPayment(ctx, tx, payment, nextReceipt)
		if err != nil {
			return err
		}
		return updateChargeStatus(ctx, tx, charge.ChargeID, domain.ChargePaid, payment.PaymentDate)
	})
	if err != nil {
		return nil, err
	}
	return &recorded, nil
}

// SettleOutstandingCharges pays every unpaid charge of the account in full within one transaction.
// Zero-amount charges are marked paid without a payment row.
func (r *PgxPaymentRepository) SettleOutstandingCharges(
	ctx context.Context,
	accountID string,
	period string,
	paidAt time.Time,
	newID func() string,
	nextReceipt portsrepo.ReceiptNumberFunc,
) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		charges, err := lockUnpaidCharges(ctx, tx, accountID, period)
		if err != nil {
			return err
		}

		for _, charge := range charges {
			if !charge.Amount.IsZero() {
				payment, err := r.insertPayment(ctx, tx, domain.Payment{
					PaymentID:   newID(),
					ChargeID:    charge.ChargeID,
					Amount:      charge.Amount,
					PaymentDate: paidAt,
					Status:      domain.PaymentCompleted,
					CreatedAt:   paidAt,
				}, nextReceipt)
				if err != nil {
					return fmt.Errorf("settling charge %s: %w", charge.ChargeID, err)
				}
				payments = append(payments, payment)
			}
			if err := updateChargeStatus(ctx, tx, charge.ChargeID, domain.ChargePaid, paidAt); err != nil {
				return fmt.Errorf("settling charge %s: %w", charge.ChargeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// lockUnpaidCharges reads every unpaid charge of the account and holds their row locks.
// The rows are drained before returning so the transaction can issue further statements.
func lockUnpaidCharges(ctx context.Context, q querier, accountID, period string) ([]domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE account_id = $1 AND status = $2`
	args := []any{accountID, string(domain.ChargeUnpaid)}
	if period != "" {
		query += ` AND period = $3`
		args = append(args, period)
	}
	query += ` ORDER BY period, created_at, charge_id FOR UPDATE;`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to lock unpaid charges for account "+accountID, err)
	}
	defer rows.Close()

	var charges []domain.Charge
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

// ListPaymentsByAccount retrieves every payment made against the account's charges.
func (r *PgxPaymentRepository) ListPaymentsByAccount(ctx context.Context, accountID string) ([]domain.Payment, error) {
	query := `
		SELECT p.payment_id, p.charge_id, p.amount, p.payment_date, p.receipt_number, p.status, p.created_at
		FROM payments p
		JOIN charges c ON c.charge_id = p.charge_id
		WHERE c.account_id = $1
		ORDER BY p.payment_date, p.payment_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list payments for account "+accountID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan payment row", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating payment rows", err)
	}
	return payments, nil
}

// SumCompletedPayments totals the completed payments of the account. No payments sum to zero.
func (r *PgxPaymentRepository) SumCompletedPayments(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN charges c ON c.charge_id = p.charge_id
		WHERE c.account_id = $1 AND p.status = $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, string(domain.PaymentCompleted)).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewStorageError("failed to sum payments for account "+accountID, err)
	}
	return total, nil
}

// FindReceipt joins a payment with its charge and account.
func (r *PgxPaymentRepository) FindReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	query := `
		SELECT p.payment_id, p.receipt_number, p.amount, p.payment_date, p.status,
		       c.charge_id, c.service_type, c.period,
		       a.account_id, a.number, a.name, a.address
		FROM payments p
		JOIN charges c ON c.charge_id = p.charge_id
		JOIN accounts a ON a.account_id = c.account_id
		WHERE p.payment_id = $1;
	`
	var m models.Receipt
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&m.ReceiptNumber,
		&m.Amount,
		&m.PaymentDate,
		&m.Status,
		&m.ChargeID,
		&m.ServiceType,
		&m.Period,
		&m.AccountID,
		&m.AccountNumber,
		&m.HolderName,
		&m.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		return nil, apperrors.NewStorageError("failed to find receipt for payment "+paymentID, err)
	}

	receipt, err := mapping.ToDomainReceipt(m)
	if err != nil {
		return nil, apperrors.NewStorageError("corrupt payment row "+paymentID, err)
	}
	return &receipt, nil
}
