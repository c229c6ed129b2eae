package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/SscSPs/utility_billing_app/internal/dto"
	"github.com/SscSPs/utility_billing_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockPaymentService *MockPaymentService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.router = newTestEngine()
	suite.mockAccountService = new(MockAccountService)
	suite.mockPaymentService = new(MockPaymentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService, suite.mockPaymentService)
}

func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleAccount(userID string) *domain.Account {
	now := time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC)
	return &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    userID,
		Number:    "1234567890",
		Name:      "Jane Doe",
		Address:   "1 Main St",
		Area:      decimal.RequireFromString("54.50"),
		Residents: 3,
		Company:   "CityWater",
		Status:    domain.AccountActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

func createBody() map[string]any {
	return map[string]any{
		"number":    "1234567890",
		"name":      "Jane Doe",
		"address":   "1 Main St",
		"area":      "54.50",
		"residents": 3,
		"company":   "CityWater",
	}
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	account := sampleAccount(userID)

	suite.mockAccountService.On("CreateAccount", mock.Anything, userID,
		mock.MatchedBy(func(d domain.AccountDetails) bool {
			return d.Number == "1234567890" && d.Area.Equal(decimal.RequireFromString("54.5")) && d.Residents == 3
		}),
	).Return(account, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/accounts", userID), createBody())

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(account.AccountID, res.AccountID)
	suite.Equal("54.5", res.Area)
	suite.Equal("active", res.Status)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingFieldIsBadRequest() {
	body := createBody()
	delete(body, "company")

	w := suite.do(http.MethodPost, "/api/v1/users/u-1/accounts", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: number must be exactly 10 digits", apperrors.ErrValidation), http.StatusBadRequest},
		{"duplicate", fmt.Errorf("%w: account number 1234567890", apperrors.ErrDuplicate), http.StatusConflict},
		{"storage", apperrors.NewStorageError("failed to save account", fmt.Errorf("conn refused")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockAccountService.On("CreateAccount", mock.Anything, "u-1", mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/users/u-1/accounts", createBody())

			suite.Equal(tt.status, w.Code)
			var res handlers.ErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to create account", res.Error)
			} else {
				suite.Equal(tt.err.Error(), res.Error)
			}
		})
	}
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Empty() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, "u-1").Return([]domain.Account{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/u-1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"accounts":[]}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestAccountExists() {
	suite.mockAccountService.On("AccountExists", mock.Anything, "1234567890").Return(true, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/exists?number=1234567890", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"number":"1234567890","exists":true}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestAccountExists_MissingNumber() {
	w := suite.do(http.MethodGet, "/api/v1/accounts/exists", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccount", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: account missing", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_Success() {
	account := sampleAccount("u-1")
	account.Name = "John Doe"
	body := createBody()
	body["name"] = "John Doe"

	suite.mockAccountService.On("UpdateAccount", mock.Anything, account.AccountID,
		mock.MatchedBy(func(d domain.AccountDetails) bool { return d.Name == "John Doe" }),
	).Return(account, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/accounts/"+account.AccountID, body)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("John Doe", res.Name)
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount() {
	suite.mockAccountService.On("DeactivateAccount", mock.Anything, "acc-1").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/deactivate", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *AccountHandlerTestSuite) TestActivateAccount() {
	suite.mockAccountService.On("ActivateAccount", mock.Anything, "acc-1").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/activate", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestActivateAccount_NotFound() {
	suite.mockAccountService.On("ActivateAccount", mock.Anything, "missing").
		Return(fmt.Errorf("%w: account missing", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/missing/activate", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "account missing")
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_WithChargesIsConflict() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, "acc-1").
		Return(fmt.Errorf("%w: account acc-1 has charges", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance() {
	balance := domain.NewAccountBalance("acc-1", decimal.RequireFromString("125"), decimal.RequireFromString("50"))
	suite.mockPaymentService.On("GetAccountBalance", mock.Anything, "acc-1").Return(&balance, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"accountID":"acc-1","totalCharged":"125.00","totalPaid":"50.00","outstanding":"75.00"}`, w.Body.String())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
