package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByUser retrieves every account owned by the user, oldest first.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)

	// AccountNumberExists reports whether an account with the number is already registered.
	AccountNumberExists(ctx context.Context, number string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, now time.Time) error

	// ActivateAccount marks an account as active again.
	ActivateAccount(ctx context.Context, accountID string, now time.Time) error

	// DeleteAccount physically removes an account that has no charges.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
