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
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the account registry service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: repo}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, details domain.AccountDetails) (*domain.Account, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}

	details = details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.accountRepo.AccountNumberExists(ctx, details.Number)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account number", slog.String("number", details.Number))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: account number %s is already registered", apperrors.ErrDuplicate, details.Number)
	}

	now := s.now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Status:      domain.AccountActive,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	details.Apply(&account)

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("user_id", userID),
			slog.String("number", account.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("user_id", userID))
	return &account, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) AccountExists(ctx context.Context, number string) (bool, error) {
	return s.accountRepo.AccountNumberExists(ctx, strings.TrimSpace(number))
}

// UpdateAccount re-validates every field. The account number is part of the payload but may not change.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, details domain.AccountDetails) (*domain.Account, error) {
	details = details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Number != details.Number {
		return nil, fmt.Errorf("%w: account number cannot be changed", apperrors.ErrValidation)
	}

	details.Apply(account)
	account.LastUpdatedAt = s.now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) ActivateAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.ActivateAccount(ctx, accountID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to activate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account activated", slog.String("account_id", accountID))
	return nil
}

// DeleteAccount hard-deletes an account. Accounts that still have charges are refused with apperrors.ErrConflict.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
