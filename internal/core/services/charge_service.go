package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/utility_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/utility_billing_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type chargeService struct {
	BaseService
	chargeRepo  portsrepo.ChargeRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewChargeService creates the charge ledger service.
func NewChargeService(chargeRepo portsrepo.ChargeRepositoryFacade, accountRepo portsrepo.AccountReader, options ...ServiceOption) portssvc.ChargeSvcFacade {
	svc := &chargeService{chargeRepo: chargeRepo, accountRepo: accountRepo}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.ChargeSvcFacade = (*chargeService)(nil)

func (s *chargeService) AddCharge(ctx context.Context, accountID, serviceType string, tariff, volume decimal.Decimal, period string) (*domain.Charge, error) {
	charge, err := domain.NewMeteredCharge(uuid.NewString(), accountID, serviceType, tariff, volume, period, s.now())
	if err != nil {
		return nil, err
	}
	return s.post(ctx, charge)
}

func (s *chargeService) AddFlatCharge(ctx context.Context, accountID, serviceType string, amount decimal.Decimal, period string) (*domain.Charge, error) {
	charge, err := domain.NewFlatCharge(uuid.NewString(), accountID, serviceType, amount, period, s.now())
	if err != nil {
		return nil, err
	}
	return s.post(ctx, charge)
}

// post stores a validated charge against an existing active account.
func (s *chargeService) post(ctx context.Context, charge domain.Charge) (*domain.Charge, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, charge.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
	}

	if err := s.chargeRepo.SaveCharge(ctx, charge); err != nil {
		s.LogError(ctx, err, "Failed to save charge",
			slog.String("account_id", charge.AccountID),
			slog.String("period", charge.Period))
		return nil, err
	}

	s.LogInfo(ctx, "Charge posted",
		slog.String("charge_id", charge.ChargeID),
		slog.String("account_id", charge.AccountID),
		slog.String("amount", charge.Amount.String()))
	return &charge, nil
}

func (s *chargeService) GetCharge(ctx context.Context, chargeID string) (*domain.Charge, error) {
	charge, err := s.chargeRepo.FindChargeByID(ctx, chargeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get charge", slog.String("charge_id", chargeID))
		}
		return nil, err
	}
	return charge, nil
}

func (s *chargeService) ListCharges(ctx context.Context, accountID string, period string) ([]domain.Charge, error) {
	charges, err := s.chargeRepo.ListCharges(ctx, accountID, strings.TrimSpace(period))
	if err != nil {
		s.LogError(ctx, err, "Failed to list charges", slog.String("account_id", accountID))
		return nil, err
	}
	return charges, nil
}

func (s *chargeService) GetTotalAmount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	total, err := s.chargeRepo.SumChargeAmounts(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum charges", slog.String("account_id", accountID))
		return decimal.Zero, err
	}
	return total, nil
}

func (s *chargeService) MarkPaid(ctx context.Context, chargeID string) (*domain.Charge, error) {
	return s.transition(ctx, chargeID, domain.ChargePaid)
}

func (s *chargeService) MarkPending(ctx context.Context, chargeID string) (*domain.Charge, error) {
	return s.transition(ctx, chargeID, domain.ChargePending)
}

func (s *chargeService) transition(ctx context.Context, chargeID string, next domain.ChargeStatus) (*domain.Charge, error) {
	charge, err := s.chargeRepo.TransitionChargeStatus(ctx, chargeID, next, s.now())
	if err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			s.LogError(ctx, err, "Failed to change charge status",
				slog.String("charge_id", chargeID),
				slog.String("status", string(next)))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Charge status changed",
		slog.String("charge_id", chargeID),
		slog.String("status", string(next)))
	return charge, nil
}

// DeleteCharge removes a charge. Charges that already carry payments are refused with apperrors.ErrConflict.
func (s *chargeService) DeleteCharge(ctx context.Context, chargeID string) error {
	if err := s.chargeRepo.DeleteCharge(ctx, chargeID); err != nil {
		s.LogError(ctx, err, "Failed to delete charge", slog.String("charge_id", chargeID))
		return err
	}
	s.LogInfo(ctx, "Charge deleted", slog.String("charge_id", chargeID))
	return nil
}
