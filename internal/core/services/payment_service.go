package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/utility_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/utility_billing_app/internal/core/ports/services"
	"github.com/SscSPs/utility_billing_app/internal/utils"
	"github.com/SscSPs/utility_billing_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	chargeRepo  portsrepo.ChargeReader
	accountRepo portsrepo.AccountReader
	nextReceipt portsrepo.ReceiptNumberFunc
	newID       func() string
}

// PaymentOption configures the payment service.
type PaymentOption func(*paymentService)

// WithReceiptGenerator replaces the timestamp based receipt number generator.
func WithReceiptGenerator(gen portsrepo.ReceiptNumberFunc) PaymentOption {
	return func(s *paymentService) {
		s.nextReceipt = gen
	}
}

// WithIDGenerator replaces uuid.NewString for payment ids.
func WithIDGenerator(gen func() string) PaymentOption {
	return func(s *paymentService) {
		s.newID = gen
	}
}

// WithPaymentClock replaces the wall clock used for payment dates.
func WithPaymentClock(clock func() time.Time) PaymentOption {
	return func(s *paymentService) {
		s.Clock = clock
	}
}

// NewPaymentService creates the payment ledger service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	chargeRepo portsrepo.ChargeReader,
	accountRepo portsrepo.AccountReader,
	options ...PaymentOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo: paymentRepo,
		chargeRepo:  chargeRepo,
		accountRepo: accountRepo,
		nextReceipt: utils.GenerateReceiptNumber,
		newID:       uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// MakePayment records a completed payment and marks the charge paid in one transaction.
func (s *paymentService) MakePayment(ctx context.Context, chargeID string, amount decimal.Decimal) (*domain.Payment, error) {
	if err := domain.ValidatePaymentAmount(amount); err != nil {
		return nil, err
	}

	now := s.now()
	payment, err := s.paymentRepo.RecordPayment(ctx, domain.Payment{
		PaymentID:   s.newID(),
		ChargeID:    chargeID,
		Amount:      amount,
		PaymentDate: now,
		Status:      domain.PaymentCompleted,
		CreatedAt:   now,
	}, s.nextReceipt)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			s.LogError(ctx, err, "Failed to record payment", slog.String("charge_id", chargeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("charge_id", chargeID),
		slog.String("receipt_number", payment.ReceiptNumber),
		slog.String("amount", amount.String()))
	return payment, nil
}

// PayAllCharges settles every unpaid charge of the account, optionally of one period.
// Either every matched charge is paid or none is.
func (s *paymentService) PayAllCharges(ctx context.Context, accountID string, period string) ([]domain.Payment, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	period = strings.TrimSpace(period)
	payments, err := s.paymentRepo.SettleOutstandingCharges(ctx, accountID, period, s.now(), s.newID, s.nextReceipt)
	if err != nil {
		s.LogError(ctx, err, "Settlement failed, nothing was applied",
			slog.String("account_id", accountID),
			slog.String("period", period))
		return nil, err
	}
	if len(payments) == 0 {
		s.LogDebug(ctx, "No outstanding charges to settle",
			slog.String("account_id", accountID),
			slog.String("period", period))
		return payments, nil
	}

	s.LogInfo(ctx, "Charges settled",
		slog.String("account_id", accountID),
		slog.String("period", period),
		slog.Int("payments", len(payments)),
		slog.String("total", accounting.SumPayments(payments).String()))
	return payments, nil
}

func (s *paymentService) ListPayments(ctx context.Context, accountID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("account_id", accountID))
		return nil, err
	}
	return payments, nil
}

// GetTotalPayments sums completed payments only. No payments and a zero total look the same.
func (s *paymentService) GetTotalPayments(ctx context.Context, accountID string) (decimal.Decimal, error) {
	total, err := s.paymentRepo.SumCompletedPayments(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum payments", slog.String("account_id", accountID))
		return decimal.Zero, err
	}
	return total, nil
}

func (s *paymentService) GetPaymentReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	receipt, err := s.paymentRepo.FindReceipt(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to build receipt", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return receipt, nil
}

func (s *paymentService) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	charged, err := s.chargeRepo.SumChargeAmounts(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum charges", slog.String("account_id", accountID))
		return nil, err
	}
	paid, err := s.paymentRepo.SumCompletedPayments(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum payments", slog.String("account_id", accountID))
		return nil, err
	}

	balance := domain.NewAccountBalance(accountID, charged, paid)
	return &balance, nil
}
