package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"budgethero/internal/dto"
	"budgethero/internal/errors"
	"budgethero/internal/services"

	"github.com/labstack/echo/v4"
)

// DefaultDetectionLookbackDays bounds auto-detection when the request does not
const DefaultDetectionLookbackDays = 365

// RecurringMerchantHandler manages the user's recurring merchant records
type RecurringMerchantHandler struct {
	recurringService services.RecurringServiceInterface
	logger           *slog.Logger
	now              func() time.Time
}

// NewRecurringMerchantHandler creates a new recurring merchant handler
func NewRecurringMerchantHandler(recurringService services.RecurringServiceInterface, logger *slog.Logger) *RecurringMerchantHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecurringMerchantHandler{
		recurringService: recurringService,
		logger:           logger,
		now:              time.Now,
	}
}

// ListMerchants lists the user's and the global recurring merchants
// @Summary List recurring merchants
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param includeInactive query bool false "Include deactivated records"
// @Success 200 {object} dto.RecurringMerchantListResponse "Recurring merchants"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /recurring-merchants [get]
func (h *RecurringMerchantHandler) ListMerchants(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	includeInactive := false
	if raw := c.QueryParam("includeInactive"); raw != "" {
		if includeInactive, err = strconv.ParseBool(raw); err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("includeInactive must be true or false"))
		}
	}

	merchants, err := h.recurringService.ListMerchants(userID, includeInactive)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.RecurringMerchantListResponse{
		Merchants: merchants,
		Count:     len(merchants),
	})
}

// CreateMerchant adds a user-defined recurring merchant
// @Summary Create a recurring merchant
// @Description Add a merchant the user pays on a schedule. A previously deactivated record with the same name is reactivated.
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRecurringMerchantRequest true "Merchant details"
// @Success 201 {object} models.RecurringMerchant "Created merchant"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "REC_002 - Merchant already exists"
// @Router /recurring-merchants [post]
func (h *RecurringMerchantHandler) CreateMerchant(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateRecurringMerchantRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	merchant, err := h.recurringService.CreateMerchant(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, merchant)
}

// DeactivateMerchant marks a merchant as not recurring for the user
// @Summary Mark a merchant non-recurring
// @Description Deactivate the user's records for the merchant and store a non-recurring override so global seeds stop matching.
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DeactivateMerchantRequest true "Merchant to deactivate"
// @Success 200 {object} dto.DeactivateMerchantResponse "Number of records deactivated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /recurring-merchants/deactivate [post]
func (h *RecurringMerchantHandler) DeactivateMerchant(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.DeactivateMerchantRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	deactivated, err := h.recurringService.MarkNonRecurring(c.Request().Context(), userID, req.MerchantName, req.Reason)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.DeactivateMerchantResponse{Deactivated: deactivated})
}

// DetectMerchants scans the user's history for new recurring merchants
// @Summary Auto-detect recurring merchants
// @Description Group past expenses by merchant, infer the charge interval and record merchants that recur. Declined merchants are skipped.
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DetectRecurringRequest false "Lookback window"
// @Success 200 {object} dto.RecurringMerchantListResponse "Newly detected merchants"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /recurring-merchants/detect [post]
func (h *RecurringMerchantHandler) DetectMerchants(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.DetectRecurringRequest
	if c.Request().ContentLength != 0 {
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
	}

	lookback := req.LookbackDays
	if lookback == 0 {
		lookback = DefaultDetectionLookbackDays
	}
	since := h.now().AddDate(0, 0, -lookback)

	detected, err := h.recurringService.AutoDetect(c.Request().Context(), userID, since)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.RecurringMerchantListResponse{
		Merchants: detected,
		Count:     len(detected),
	})
}
