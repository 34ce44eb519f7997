package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"budgethero/internal/errors"
	"budgethero/internal/models"
	"budgethero/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler serves the audit trail of user corrections, imports and syncs
type AdminHandler struct {
	auditService services.AuditServiceInterface
	logger       *slog.Logger
}

// NewAdminHandler creates a new audit trail handler
func NewAdminHandler(auditService services.AuditServiceInterface, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// ListActivity returns the caller's own audit trail
// @Summary List my activity
// @Description Returns category and recurring corrections, imports and syncs made by the caller
// @Tags Activity
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /activity [get]
func (h *AdminHandler) ListActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	return h.listActivity(c, userID)
}

// ListUserActivity returns any user's audit trail
// @Summary List user activity (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid user ID"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Router /admin/users/{userId}/activity [get]
func (h *AdminHandler) ListUserActivity(c echo.Context) error {
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("User ID must be a valid UUID"))
	}
	return h.listActivity(c, userID)
}

// ListResourceHistory returns the caller's entries for one resource, such as
// every correction made to a transaction
// @Summary List my history for a resource
// @Tags Activity
// @Security BearerAuth
// @Produce json
// @Param resource path string true "transaction, recurring_merchant, import_batch or plaid_item"
// @Param resourceId path string true "Resource ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Unknown resource"
// @Router /activity/{resource}/{resourceId} [get]
func (h *AdminHandler) ListResourceHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	return h.listResourceHistory(c, &userID)
}

// ListAnyResourceHistory returns every user's entries for one resource
// @Summary List resource history (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param resource path string true "transaction, recurring_merchant, import_batch or plaid_item"
// @Param resourceId path string true "Resource ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Router /admin/activity/{resource}/{resourceId} [get]
func (h *AdminHandler) ListAnyResourceHistory(c echo.Context) error {
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}
	return h.listResourceHistory(c, nil)
}

func (h *AdminHandler) listResourceHistory(c echo.Context, userID *uuid.UUID) error {
	page, limit, invalid := pageParams(c)
	if invalid != "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(invalid))
	}

	resourceID, ok := parseUUIDParam(c, "resourceId")
	if !ok {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Resource ID must be a valid UUID"))
	}

	logs, total, err := h.auditService.GetResourceHistory(userID, c.Param("resource"), resourceID.String(), (page-1)*limit, limit)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}
	return sendAuditPage(c, logs, total, page, limit)
}

func (h *AdminHandler) listActivity(c echo.Context, userID uuid.UUID) error {
	page, limit, invalid := pageParams(c)
	if invalid != "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(invalid))
	}

	startDate, err := optionalDateParam(c, "start_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date"))
	}
	endDate, err := optionalDateParam(c, "end_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date"))
	}
	if endDate != nil {
		end := endOfDay(*endDate)
		endDate = &end
	}

	logs, total, err := h.auditService.GetUserActivity(userID, startDate, endDate, (page-1)*limit, limit)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}
	return sendAuditPage(c, logs, total, page, limit)
}

// pageParams reads page and limit, returning a detail message when either is out of range
func pageParams(c echo.Context) (int, int, string) {
	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", defaultPageLimit)

	if page < 1 {
		return 0, 0, "page: must be greater than 0"
	}
	if limit < 1 || limit > maxPageLimit {
		return 0, 0, "limit: must be between 1 and 100"
	}
	return page, limit, ""
}

func sendAuditPage(c echo.Context, logs []*models.AuditLog, total int64, page, limit int) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: map[string]interface{}{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func optionalDateParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
