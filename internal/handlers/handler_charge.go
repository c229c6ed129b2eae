package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/utility_billing_app/internal/core/ports/services"
	"github.com/SscSPs/utility_billing_app/internal/dto"
	"github.com/SscSPs/utility_billing_app/internal/middleware"
	"github.com/SscSPs/utility_billing_app/internal/utils"
	"github.com/gin-gonic/gin"
)

var errMeteredFields = errors.New("tariff and volume are required unless amount is given")

// chargeHandler handles HTTP requests related to charges.
type chargeHandler struct {
	chargeService portssvc.ChargeSvcFacade
}

// newChargeHandler creates a new chargeHandler.
func newChargeHandler(cs portssvc.ChargeSvcFacade) *chargeHandler {
	return &chargeHandler{chargeService: cs}
}

// RegisterChargeRoutes registers routes related to charges.
func RegisterChargeRoutes(rg *gin.RouterGroup, chargeService portssvc.ChargeSvcFacade) {
	h := newChargeHandler(chargeService)

	byAccount := rg.Group("/accounts/:accountID/charges")
	{
		byAccount.POST("", h.addCharge)
		byAccount.GET("", h.listCharges)
		byAccount.GET("/total", h.getTotalAmount)
	}

	charges := rg.Group("/charges/:chargeID")
	{
		charges.GET("", h.getCharge)
		charges.DELETE("", h.deleteCharge)
		charges.POST("/mark-paid", h.markPaid)
		charges.POST("/mark-pending", h.markPending)
	}
}

// addCharge godoc
// @Summary Post a charge to an account
// @Description Metered charges carry tariff and volume and are priced tariff * volume. Supplying amount posts a flat charge instead.
// @Tags charges
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   charge body dto.CreateChargeRequest true "Charge details"
// @Success 201 {object} dto.ChargeResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive account"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to add charge"
// @Router /accounts/{accountID}/charges [post]
func (h *chargeHandler) addCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request format")
		return
	}

	logger = logger.With(slog.String("account_id", accountID), slog.String("period", req.Period))

	var (
		charge *domain.Charge
		err    error
	)
	switch {
	case req.IsFlat():
		charge, err = h.chargeService.AddFlatCharge(c.Request.Context(), accountID, req.ServiceType, *req.Amount, req.Period)
	case req.Tariff == nil || req.Volume == nil:
		badRequest(c, logger, errMeteredFields, "Invalid request format")
		return
	default:
		charge, err = h.chargeService.AddCharge(c.Request.Context(), accountID, req.ServiceType, *req.Tariff, *req.Volume, req.Period)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to add charge")
		return
	}

	logger.Info("Charge posted", slog.String("charge_id", charge.ChargeID), slog.String("amount", utils.FormatMoney(charge.Amount)))
	c.JSON(http.StatusCreated, dto.ToChargeResponse(charge))
}

// listCharges godoc
// @Summary List an account's charges
// @Tags charges
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   period query string false "Billing period (YYYY-MM)"
// @Success 200 {object} dto.ListChargesResponse
// @Failure 500 {object} ErrorResponse "Failed to list charges"
// @Router /accounts/{accountID}/charges [get]
func (h *chargeHandler) listCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.ListChargesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err, "Invalid query parameters")
		return
	}

	charges, err := h.chargeService.ListCharges(c.Request.Context(), accountID, params.Period)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to list charges")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChargesResponse(charges))
}

// getTotalAmount godoc
// @Summary Sum every charge of an account
// @Tags charges
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.TotalResponse
// @Failure 500 {object} ErrorResponse "Failed to sum charges"
// @Router /accounts/{accountID}/charges/total [get]
func (h *chargeHandler) getTotalAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	total, err := h.chargeService.GetTotalAmount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to sum charges")
		return
	}
	c.JSON(http.StatusOK, dto.TotalResponse{AccountID: accountID, Total: utils.FormatMoney(total)})
}

// getCharge godoc
// @Summary Get a charge by ID
// @Tags charges
// @Produce  json
// @Param   chargeID path string true "Charge ID"
// @Success 200 {object} dto.ChargeResponse
// @Failure 404 {object} ErrorResponse "Charge not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve charge"
// @Router /charges/{chargeID} [get]
func (h *chargeHandler) getCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	charge, err := h.chargeService.GetCharge(c.Request.Context(), chargeID)
	if err != nil {
		respondError(c, logger.With(slog.String("charge_id", chargeID)), err, "Failed to retrieve charge")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// deleteCharge godoc
// @Summary Delete a charge
// @Description Charges that already have payments cannot be deleted.
// @Tags charges
// @Param   chargeID path string true "Charge ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Charge not found"
// @Failure 409 {object} ErrorResponse "Charge has payments"
// @Failure 500 {object} ErrorResponse "Failed to delete charge"
// @Router /charges/{chargeID} [delete]
func (h *chargeHandler) deleteCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	if err := h.chargeService.DeleteCharge(c.Request.Context(), chargeID); err != nil {
		respondError(c, logger.With(slog.String("charge_id", chargeID)), err, "Failed to delete charge")
		return
	}
	c.Status(http.StatusNoContent)
}

// markPaid godoc
// @Summary Mark a charge as paid without recording a payment
// @Tags charges
// @Produce  json
// @Param   chargeID path string true "Charge ID"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} ErrorResponse "Charge already paid"
// @Failure 404 {object} ErrorResponse "Charge not found"
// @Failure 500 {object} ErrorResponse "Failed to update charge"
// @Router /charges/{chargeID}/mark-paid [post]
func (h *chargeHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	charge, err := h.chargeService.MarkPaid(c.Request.Context(), chargeID)
	if err != nil {
		respondError(c, logger.With(slog.String("charge_id", chargeID)), err, "Failed to update charge")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// markPending godoc
// @Summary Move a paid charge back to pending
// @Tags charges
// @Produce  json
// @Param   chargeID path string true "Charge ID"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} ErrorResponse "Charge is not paid"
// @Failure 404 {object} ErrorResponse "Charge not found"
// @Failure 500 {object} ErrorResponse "Failed to update charge"
// @Router /charges/{chargeID}/mark-pending [post]
func (h *chargeHandler) markPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	charge, err := h.chargeService.MarkPending(c.Request.Context(), chargeID)
	if err != nil {
		respondError(c, logger.With(slog.String("charge_id", chargeID)), err, "Failed to update charge")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}
