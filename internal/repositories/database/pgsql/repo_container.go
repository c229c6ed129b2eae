package pgsql

import (
	portsrepo "github.com/SscSPs/utility_billing_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto the same pool.
// receiptAttempts bounds the retries on a receipt number collision.
func NewRepositoryProvider(dbPool DBPool, receiptAttempts int) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		ChargeRepo:  newPgxChargeRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool, receiptAttempts),
	}
}
