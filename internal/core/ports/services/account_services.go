package services

import (
	"context"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account by its unique identifier.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account owned by the user.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// AccountExists reports whether an account with the number is registered.
	AccountExists(ctx context.Context, number string) (bool, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new active account.
	CreateAccount(ctx context.Context, userID string, details domain.AccountDetails) (*domain.Account, error)

	// UpdateAccount re-validates and stores the account's details.
	UpdateAccount(ctx context.Context, accountID string, details domain.AccountDetails) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string) error

	// ActivateAccount lets an inactive account receive charges again.
	ActivateAccount(ctx context.Context, accountID string) error

	// DeleteAccount removes an account that has no charges.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
