package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/utility_billing_app/internal/core/ports/services"
	"github.com/SscSPs/utility_billing_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func validDetails() domain.AccountDetails {
	return domain.AccountDetails{
		Number:    "1234567890",
		Name:      "Jane Roe",
		Address:   "1 Main St",
		Area:      decimal.RequireFromString("54.5"),
		Residents: 3,
		Company:   "City Water",
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	details := validDetails()
	details.Name = "  Jane Roe  "

	suite.mockRepo.On("AccountNumberExists", suite.ctx, "1234567890").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Number == "1234567890" && a.Name == "Jane Roe" && a.Status == domain.AccountActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, "user-1", details)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("user-1", account.UserID)
	suite.True(account.IsActive())
	suite.Equal(fixedNow, account.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ValidationWritesNothing() {
	tests := []struct {
		name   string
		mutate func(*domain.AccountDetails)
	}{
		{name: "nine digit number", mutate: func(d *domain.AccountDetails) { d.Number = "123456789" }},
		{name: "letters in number", mutate: func(d *domain.AccountDetails) { d.Number = "12345abcde" }},
		{name: "zero area", mutate: func(d *domain.AccountDetails) { d.Area = decimal.Zero }},
		{name: "negative residents", mutate: func(d *domain.AccountDetails) { d.Residents = -1 }},
		{name: "blank company", mutate: func(d *domain.AccountDetails) { d.Company = "   " }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			details := validDetails()
			tt.mutate(&details)

			account, err := suite.service.CreateAccount(suite.ctx, "user-1", details)

			suite.Nil(account)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "AccountNumberExists", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateNumber() {
	suite.mockRepo.On("AccountNumberExists", suite.ctx, "1234567890").Return(true, nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, "user-1", validDetails())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_StorageError() {
	storageErr := apperrors.NewStorageError("failed to save account", fmt.Errorf("connection refused"))
	suite.mockRepo.On("AccountNumberExists", suite.ctx, "1234567890").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(storageErr).Once()

	_, err := suite.service.CreateAccount(suite.ctx, "user-1", validDetails())

	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingUser() {
	_, err := suite.service.CreateAccount(suite.ctx, " ", validDetails())
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestListAccounts_Empty() {
	suite.mockRepo.On("ListAccountsByUser", suite.ctx, "user-2").Return([]domain.Account{}, nil).Once()

	accounts, err := suite.service.ListAccounts(suite.ctx, "user-2")

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	existing := activeAccount("acc-1")
	details := validDetails()
	details.Residents = 5

	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == "acc-1" && a.Residents == 5 && a.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(suite.ctx, "acc-1", details)

	suite.Require().NoError(err)
	suite.Equal(5, updated.Residents)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "missing").
		Return(nil, fmt.Errorf("%w: account missing", apperrors.ErrNotFound)).Once()

	_, err := suite.service.UpdateAccount(suite.ctx, "missing", validDetails())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NumberIsImmutable() {
	details := validDetails()
	details.Number = "0987654321"
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(activeAccount("acc-1"), nil).Once()

	_, err := suite.service.UpdateAccount(suite.ctx, "acc-1", details)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	suite.mockRepo.On("DeactivateAccount", suite.ctx, "acc-1", fixedNow).Return(nil).Once()

	suite.NoError(suite.service.DeactivateAccount(suite.ctx, "acc-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestActivateAccount() {
	suite.mockRepo.On("ActivateAccount", suite.ctx, "acc-1", fixedNow).Return(nil).Once()
	suite.mockRepo.On("ActivateAccount", suite.ctx, "missing", fixedNow).
		Return(fmt.Errorf("%w: account missing", apperrors.ErrNotFound)).Once()

	suite.NoError(suite.service.ActivateAccount(suite.ctx, "acc-1"))
	suite.ErrorIs(suite.service.ActivateAccount(suite.ctx, "missing"), apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_WithCharges() {
	suite.mockRepo.On("DeleteAccount", suite.ctx, "acc-1").
		Return(fmt.Errorf("%w: still referenced from table charges", apperrors.ErrConflict)).Once()

	err := suite.service.DeleteAccount(suite.ctx, "acc-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestAccountExists_TrimsNumber() {
	suite.mockRepo.On("AccountNumberExists", suite.ctx, "1234567890").Return(true, nil).Once()

	exists, err := suite.service.AccountExists(suite.ctx, " 1234567890 ")

	suite.Require().NoError(err)
	suite.True(exists)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
