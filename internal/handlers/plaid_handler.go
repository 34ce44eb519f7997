package handlers

import (
	"log/slog"
	"net/http"

	"budgethero/internal/dto"
	"budgethero/internal/errors"
	"budgethero/internal/services"

	"github.com/labstack/echo/v4"
)

// PlaidHandler drives the aggregator link flow and on-demand syncs
type PlaidHandler struct {
	syncService services.SyncServiceInterface
	logger      *slog.Logger
}

// NewPlaidHandler creates a new aggregator handler
func NewPlaidHandler(syncService services.SyncServiceInterface, logger *slog.Logger) *PlaidHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaidHandler{
		syncService: syncService,
		logger:      logger,
	}
}

// CreateLinkToken starts the aggregator link flow
// @Summary Create a link token
// @Tags Plaid
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.LinkTokenResponse "Link token"
// @Failure 503 {object} errors.ErrorResponse "SYNC_001 - Aggregator not configured or SYNC_002 - Aggregator unavailable"
// @Router /plaid/link-token [post]
func (h *PlaidHandler) CreateLinkToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	token, err := h.syncService.CreateLinkToken(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.LinkTokenResponse{LinkToken: token})
}

// ExchangePublicToken completes the link flow and stores the item
// @Summary Exchange a public token
// @Tags Plaid
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ExchangeTokenRequest true "Public token from the link flow"
// @Success 201 {object} dto.PlaidItemResponse "Linked item"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 502 {object} errors.ErrorResponse "SYNC_004 - Aggregator returned an error"
// @Router /plaid/exchange [post]
func (h *PlaidHandler) ExchangePublicToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ExchangeTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.syncService.ExchangePublicToken(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, dto.PlaidItemResponse{Item: item})
}

// SyncItem pulls recent transactions for one linked item
// @Summary Sync a linked item
// @Tags Plaid
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} dto.SyncResponse "Sync summary"
// @Failure 404 {object} errors.ErrorResponse "SYNC_003 - Item not found"
// @Failure 502 {object} errors.ErrorResponse "SYNC_004 - Aggregator returned an error"
// @Router /plaid/items/{id}/sync [post]
func (h *PlaidHandler) SyncItem(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Item ID must be a valid UUID"))
	}

	result, err := h.syncService.SyncItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.SyncResponse{Result: result})
}
