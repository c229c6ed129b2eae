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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChargeRouter(svc *MockChargeService) *gin.Engine {
	r := newTestEngine()
	handlers.RegisterChargeRoutes(r.Group("/api/v1"), svc)
	return r
}

func serveJSON(r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleCharge(id string, amount string, status domain.ChargeStatus) domain.Charge {
	now := time.Date(2023, 1, 31, 12, 0, 0, 0, time.UTC)
	return domain.Charge{
		ChargeID:    id,
		AccountID:   "acc-1",
		ServiceType: "water",
		Tariff:      decimal.RequireFromString("2.5"),
		Volume:      decimal.RequireFromString("20"),
		Amount:      decimal.RequireFromString(amount),
		Period:      "2023-01",
		Status:      status,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func TestAddCharge_Metered(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	charge := sampleCharge("ch-1", "50", domain.ChargeUnpaid)

	svc.On("AddCharge", mock.Anything, "acc-1", "water",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("2.5")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(20)) }),
		"2023-01",
	).Return(&charge, nil).Once()

	w := serveJSON(r, http.MethodPost, "/api/v1/accounts/acc-1/charges",
		`{"serviceType":"water","tariff":"2.50","volume":"20","period":"2023-01"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var res dto.ChargeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "50.00", res.Amount)
	assert.Equal(t, "unpaid", res.Status)
	svc.AssertExpectations(t)
}

func TestAddCharge_Flat(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	charge := sampleCharge("ch-2", "75", domain.ChargeUnpaid)

	svc.On("AddFlatCharge", mock.Anything, "acc-1", "maintenance",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(75)) }),
		"2023-01",
	).Return(&charge, nil).Once()

	w := serveJSON(r, http.MethodPost, "/api/v1/accounts/acc-1/charges",
		`{"serviceType":"maintenance","amount":"75","period":"2023-01"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "AddCharge")
}

func TestAddCharge_MeteredWithoutVolumeIsBadRequest(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)

	w := serveJSON(r, http.MethodPost, "/api/v1/accounts/acc-1/charges",
		`{"serviceType":"water","tariff":"2.50","period":"2023-01"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tariff and volume are required")
	svc.AssertNotCalled(t, "AddCharge")
}

func TestAddCharge_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"inactive account", fmt.Errorf("%w: account acc-1 is inactive", apperrors.ErrValidation), http.StatusBadRequest},
		{"unknown account", fmt.Errorf("%w: account acc-1", apperrors.ErrNotFound), http.StatusNotFound},
		{"storage failure", apperrors.NewStorageError("failed to save charge", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockChargeService)
			r := newChargeRouter(svc)
			svc.On("AddCharge", mock.Anything, "acc-1", "water", mock.Anything, mock.Anything, "2023-01").Return(nil, tt.err).Once()

			w := serveJSON(r, http.MethodPost, "/api/v1/accounts/acc-1/charges",
				`{"serviceType":"water","tariff":"1","volume":"1","period":"2023-01"}`)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestListCharges_WithPeriod(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	charges := []domain.Charge{
		sampleCharge("ch-1", "50", domain.ChargeUnpaid),
		sampleCharge("ch-2", "75", domain.ChargePaid),
		sampleCharge("ch-3", "10.25", domain.ChargePending),
	}
	svc.On("ListCharges", mock.Anything, "acc-1", "2023-01").Return(charges, nil).Once()

	w := serveJSON(r, http.MethodGet, "/api/v1/accounts/acc-1/charges?period=2023-01", "")

	require.Equal(t, http.StatusOK, w.Code)
	var res dto.ListChargesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Charges, 3)
	assert.Equal(t, "60.25", res.Outstanding)
	svc.AssertExpectations(t)
}

func TestGetTotalAmount(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	svc.On("GetTotalAmount", mock.Anything, "acc-1").Return(decimal.RequireFromString("125"), nil).Once()

	w := serveJSON(r, http.MethodGet, "/api/v1/accounts/acc-1/charges/total", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accountID":"acc-1","total":"125.00"}`, w.Body.String())
}

func TestGetTotalAmount_KeepsStoredSubCentDigits(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	svc.On("GetTotalAmount", mock.Anything, "acc-1").Return(decimal.RequireFromString("30.3704"), nil).Once()

	w := serveJSON(r, http.MethodGet, "/api/v1/accounts/acc-1/charges/total", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accountID":"acc-1","total":"30.3704"}`, w.Body.String())
}

func TestGetCharge_NotFound(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	svc.On("GetCharge", mock.Anything, "nope").Return(nil, fmt.Errorf("%w: charge nope", apperrors.ErrNotFound)).Once()

	w := serveJSON(r, http.MethodGet, "/api/v1/charges/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkPaidAndPending(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	paid := sampleCharge("ch-1", "50", domain.ChargePaid)
	pending := sampleCharge("ch-1", "50", domain.ChargePending)
	svc.On("MarkPaid", mock.Anything, "ch-1").Return(&paid, nil).Once()
	svc.On("MarkPending", mock.Anything, "ch-1").Return(&pending, nil).Once()

	w := serveJSON(r, http.MethodPost, "/api/v1/charges/ch-1/mark-paid", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"paid"`)

	w = serveJSON(r, http.MethodPost, "/api/v1/charges/ch-1/mark-pending", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	svc.AssertExpectations(t)
}

func TestMarkPending_RejectedTransition(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	svc.On("MarkPending", mock.Anything, "ch-1").
		Return(nil, fmt.Errorf("%w: cannot move charge from unpaid to pending", apperrors.ErrValidation)).Once()

	w := serveJSON(r, http.MethodPost, "/api/v1/charges/ch-1/mark-pending", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCharge(t *testing.T) {
	svc := new(MockChargeService)
	r := newChargeRouter(svc)
	svc.On("DeleteCharge", mock.Anything, "ch-1").Return(nil).Once()
	svc.On("DeleteCharge", mock.Anything, "ch-2").Return(fmt.Errorf("%w: charge ch-2 has payments", apperrors.ErrConflict)).Once()

	assert.Equal(t, http.StatusNoContent, serveJSON(r, http.MethodDelete, "/api/v1/charges/ch-1", "").Code)
	assert.Equal(t, http.StatusConflict, serveJSON(r, http.MethodDelete, "/api/v1/charges/ch-2", "").Code)
}
