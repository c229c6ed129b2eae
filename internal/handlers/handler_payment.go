package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/utility_billing_app/internal/core/ports/services"
	"github.com/SscSPs/utility_billing_app/internal/dto"
	"github.com/SscSPs/utility_billing_app/internal/middleware"
	"github.com/SscSPs/utility_billing_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// RegisterPaymentRoutes registers routes related to payments. settlementGuard, when not nil,
// runs in front of the settlement route only.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, settlementGuard gin.HandlerFunc) {
	h := newPaymentHandler(paymentService)

	rg.POST("/charges/:chargeID/payments", h.makePayment)
	rg.GET("/payments/:paymentID/receipt", h.getReceipt)

	byAccount := rg.Group("/accounts/:accountID")
	{
		settle := []gin.HandlerFunc{h.payAllCharges}
		if settlementGuard != nil {
			settle = append([]gin.HandlerFunc{settlementGuard}, settle...)
		}
		byAccount.POST("/settlements", settle...)
		byAccount.GET("/payments", h.listPayments)
		byAccount.GET("/payments/total", h.getTotalPayments)
	}
}

// makePayment godoc
// @Summary Pay a charge
// @Description Records a completed payment with a fresh receipt number and marks the charge paid in one transaction.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   chargeID path string true "Charge ID"
// @Param   payment body dto.MakePaymentRequest true "Payment amount"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or charge already paid"
// @Failure 404 {object} ErrorResponse "Charge not found"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Router /charges/{chargeID}/payments [post]
func (h *paymentHandler) makePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	var req dto.MakePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request format")
		return
	}

	logger = logger.With(slog.String("charge_id", chargeID))
	payment, err := h.paymentService.MakePayment(c.Request.Context(), chargeID, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("receipt_number", payment.ReceiptNumber))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// payAllCharges godoc
// @Summary Settle an account's unpaid charges
// @Description Pays every unpaid charge of the account, optionally limited to one period, in a single transaction. The body may be omitted.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   settlement body dto.SettleChargesRequest false "Period filter"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 429 {object} ErrorResponse "Too many settlement requests"
// @Failure 500 {object} ErrorResponse "Failed to settle charges"
// @Router /accounts/{accountID}/settlements [post]
func (h *paymentHandler) payAllCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.SettleChargesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, logger, err, "Invalid request format")
		return
	}

	logger = logger.With(slog.String("account_id", accountID), slog.String("period", req.Period))
	payments, err := h.paymentService.PayAllCharges(c.Request.Context(), accountID, req.Period)
	if err != nil {
		respondError(c, logger, err, "Failed to settle charges")
		return
	}

	res := dto.ToSettlementResponse(accountID, req.Period, payments)
	logger.Info("Charges settled", slog.Int("payments", len(payments)), slog.String("total", res.Total))
	c.JSON(http.StatusOK, res)
}

// listPayments godoc
// @Summary List an account's payments
// @Tags payments
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Router /accounts/{accountID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	payments, err := h.paymentService.ListPayments(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// getTotalPayments godoc
// @Summary Sum an account's completed payments
// @Tags payments
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.TotalResponse
// @Failure 500 {object} ErrorResponse "Failed to sum payments"
// @Router /accounts/{accountID}/payments/total [get]
func (h *paymentHandler) getTotalPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	total, err := h.paymentService.GetTotalPayments(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to sum payments")
		return
	}
	c.JSON(http.StatusOK, dto.TotalResponse{AccountID: accountID, Total: utils.FormatMoney(total)})
}

// getReceipt godoc
// @Summary Get the receipt of a payment
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to build receipt"
// @Router /payments/{paymentID}/receipt [get]
func (h *paymentHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	receipt, err := h.paymentService.GetPaymentReceipt(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, logger.With(slog.String("payment_id", paymentID)), err, "Failed to build receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}
