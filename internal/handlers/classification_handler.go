package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"budgethero/internal/classification"
	"budgethero/internal/dto"
	"budgethero/internal/errors"
	"budgethero/internal/models"
	"budgethero/internal/services"

	"github.com/labstack/echo/v4"
)

// ClassificationHandler exposes the category classifier and recurrence
// detector over free text
type ClassificationHandler struct {
	categoryService  services.CategoryServiceInterface
	recurringService services.RecurringServiceInterface
	logger           *slog.Logger
}

// NewClassificationHandler creates a new classification handler
func NewClassificationHandler(
	categoryService services.CategoryServiceInterface,
	recurringService services.RecurringServiceInterface,
	logger *slog.Logger,
) *ClassificationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassificationHandler{
		categoryService:  categoryService,
		recurringService: recurringService,
		logger:           logger,
	}
}

// Classify assigns a category to a description and optional merchant
// @Summary Classify a transaction description
// @Description Run the user's merchant overrides and the rule stages over free text. With detectRecurring set, the recurrence detector runs too and the review flag is computed.
// @Tags Classification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Text to classify"
// @Success 200 {object} dto.ClassifyResponse "Classification result"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /classify [post]
func (h *ClassificationHandler) Classify(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ClassifyRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.categoryService.ClassifyForUser(userID, req.Description, req.Merchant)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	response := dto.ClassifyResponse{Classification: result}

	if req.DetectRecurring {
		draft := &models.Transaction{
			UserID:       userID,
			Description:  strings.TrimSpace(req.Description),
			MerchantName: strings.TrimSpace(req.Merchant),
			Type:         models.TransactionTypeExpense,
		}

		match, err := h.recurringService.DetectForTransaction(userID, draft)
		if err != nil {
			return sendServiceError(c, h.logger, err)
		}

		needsReview := classification.NeedsUserReview(result.Confidence, match.Confidence, match.Source)
		response.Recurring = &match
		response.NeedsReview = &needsReview
	}

	return c.JSON(http.StatusOK, response)
}

// Confidence scores an already assigned category
// @Summary Score a category assignment
// @Description Return the confidence that a category fits a description and merchant. Unknown or empty categories score 0.
// @Tags Classification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConfidenceRequest true "Assignment to score"
// @Success 200 {object} dto.ConfidenceResponse "Confidence in [0,1]"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /classify/confidence [post]
func (h *ClassificationHandler) Confidence(c echo.Context) error {
	var req dto.ConfidenceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return c.JSON(http.StatusOK, dto.ConfidenceResponse{
		Confidence: h.categoryService.Confidence(req.Description, req.Merchant, req.Category),
	})
}

// Categories lists the valid category names
// @Summary List categories
// @Tags Classification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CategoriesResponse "Category names"
// @Router /categories [get]
func (h *ClassificationHandler) Categories(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "private, max-age=3600")
	return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: h.categoryService.Categories()})
}
