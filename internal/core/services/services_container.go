package services

import (
	portsrepo "github.com/SscSPs/utility_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/utility_billing_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo),
		Charge:  NewChargeService(repos.ChargeRepo, repos.AccountRepo),
		Payment: NewPaymentService(repos.PaymentRepo, repos.ChargeRepo, repos.AccountRepo),
	}
}
