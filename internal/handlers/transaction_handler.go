package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"budgethero/internal/dto"
	"budgethero/internal/errors"
	"budgethero/internal/models"
	"budgethero/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	cacheTTL         = 30 * time.Second
	dateLayout       = "2006-01-02"
)

// TransactionHandler handles transaction reads, manual entry and user corrections
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	categoryService    services.CategoryServiceInterface
	recurringService   services.RecurringServiceInterface
	batchClassifier    services.BatchClassifierInterface
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	categoryService services.CategoryServiceInterface,
	recurringService services.RecurringServiceInterface,
	batchClassifier services.BatchClassifierInterface,
	logger *slog.Logger,
) *TransactionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionHandler{
		transactionService: transactionService,
		categoryService:    categoryService,
		recurringService:   recurringService,
		batchClassifier:    batchClassifier,
		logger:             logger,
	}
}

// cursorData represents the data encoded in a pagination cursor
type cursorData struct {
	Date          time.Time `json:"date"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

// encodeCursor creates a cursor string from the last row's date and ID
func encodeCursor(date time.Time, transactionID uuid.UUID) string {
	data := cursorData{
		Date:          date,
		TransactionID: transactionID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonData)
}

// decodeCursor decodes a cursor string to date and transaction ID
func decodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("empty cursor")
	}

	jsonData, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	var data cursorData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: %w", err)
	}

	if data.TransactionID == uuid.Nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor has no transaction id")
	}

	return data.Date, data.TransactionID, nil
}

// ListTransactions retrieves the user's transactions, newest first
// @Summary List transactions
// @Description Retrieve filtered transactions with cursor-based pagination, ordered by date then ID descending
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param cursor query string false "Pagination cursor for next page"
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param type query string false "Filter by transaction type" Enums(income, expense)
// @Param category query string false "Filter by category name"
// @Param source query string false "Filter by source" Enums(manual, imported, aggregator)
// @Param min_amount query string false "Filter by minimum amount"
// @Param max_amount query string false "Filter by maximum amount"
// @Param merchant query string false "Filter by merchant name"
// @Param is_recurring query bool false "Filter by recurring flag"
// @Param needs_review query bool false "Filter by review flag"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters or VALIDATION_007 - Invalid cursor"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c, h.categoryService.IsKnownCategory)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	filters.UserID = userID

	pagination, err := parsePaginationParams(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if pagination.Cursor != "" {
		cursorDate, cursorID, err := decodeCursor(pagination.Cursor)
		if err != nil {
			return SendError(c, errors.ValidationInvalidCursor)
		}
		filters.CursorDate = &cursorDate
		filters.CursorID = &cursorID
	}

	// One extra row tells whether another page exists
	filters.Limit = pagination.Limit + 1

	transactions, total, err := h.transactionService.ListTransactions(filters)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	var nextCursor string
	hasMore := false

	if len(transactions) > pagination.Limit {
		hasMore = true
		transactions = transactions[:pagination.Limit]
		last := &transactions[len(transactions)-1]
		nextCursor = encodeCursor(last.Date, last.ID)
	}

	response := dto.ListTransactionsResponse{
		Transactions: transactions,
		Pagination: dto.PaginationInfo{
			HasMore:    hasMore,
			NextCursor: nextCursor,
			Limit:      pagination.Limit,
			Total:      total,
		},
	}

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))

	return c.JSON(http.StatusOK, response)
}

// parseTransactionFilters parses and validates transaction filter parameters
func parseTransactionFilters(c echo.Context, knownCategory func(string) bool) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		end := endOfDay(endDate)
		filters.EndDate = &end
	}

	if txnType := c.QueryParam("type"); txnType != "" {
		if !models.IsValidTransactionType(txnType) {
			return filters, fmt.Errorf("invalid type, must be 'income' or 'expense'")
		}
		filters.Type = txnType
	}

	if category := c.QueryParam("category"); category != "" {
		if !knownCategory(category) {
			return filters, fmt.Errorf("invalid category")
		}
		filters.Category = category
	}

	if source := c.QueryParam("source"); source != "" {
		if !models.IsValidTransactionSource(source) {
			return filters, fmt.Errorf("invalid source")
		}
		filters.Source = source
	}

	if minAmountStr := c.QueryParam("min_amount"); minAmountStr != "" {
		minAmount, err := decimal.NewFromString(minAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid min_amount format")
		}
		filters.MinAmount = &minAmount
	}

	if maxAmountStr := c.QueryParam("max_amount"); maxAmountStr != "" {
		maxAmount, err := decimal.NewFromString(maxAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid max_amount format")
		}
		filters.MaxAmount = &maxAmount
	}

	if filters.MinAmount != nil && filters.MaxAmount != nil && filters.MinAmount.GreaterThan(*filters.MaxAmount) {
		return filters, fmt.Errorf("min_amount must not exceed max_amount")
	}

	if merchant := c.QueryParam("merchant"); merchant != "" {
		filters.MerchantName = merchant
	}

	for name, target := range map[string]**bool{
		"is_recurring": &filters.IsRecurring,
		"needs_review": &filters.NeedsReview,
	} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid %s, must be true or false", name)
		}
		*target = &value
	}

	return filters, nil
}

// parsePaginationParams parses pagination parameters from query string
func parsePaginationParams(c echo.Context) (dto.PaginationParams, error) {
	params := dto.PaginationParams{
		Limit: defaultPageLimit,
	}

	if cursor := c.QueryParam("cursor"); cursor != "" {
		params.Cursor = cursor
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter")
		}

		if limit < 1 {
			return params, fmt.Errorf("limit must be at least 1")
		}

		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		params.Limit = limit
	}

	return params, nil
}

func endOfDay(t time.Time) time.Time {
	return t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// CreateTransaction records a manually entered transaction
// @Summary Create a transaction
// @Description Store a manual income or expense. The transaction is classified, checked for recurrence and flagged for review before it is saved.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.Transaction "Enriched transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	txn, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, txn)
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 404 {object} errors.ErrorResponse "TXN_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	txn, err := h.transactionService.GetTransaction(userID, transactionID)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))

	return c.JSON(http.StatusOK, txn)
}

// UpdateCategory pins a user-chosen category on a transaction
// @Summary Correct a transaction's category
// @Description Pin the category with full confidence. With applyToMerchant set, the choice is stored as a merchant override and re-applied to the user's other transactions from the same merchant.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "Category correction"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "TXN_001 - Transaction not found"
// @Failure 409 {object} errors.ErrorResponse "TXN_005 - Concurrent modification"
// @Router /transactions/{id}/category [patch]
func (h *TransactionHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	txn, err := h.categoryService.OverrideCategory(c.Request().Context(), userID, transactionID, &req)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, txn)
}

// UpdateRecurring pins a user-chosen recurring flag on a transaction
// @Summary Correct a transaction's recurring flag
// @Description Marking a transaction recurring links it to a user merchant record; unmarking stores a non-recurring override for the merchant.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateRecurringRequest true "Recurring correction"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "TXN_001 - Transaction not found"
// @Router /transactions/{id}/recurring [patch]
func (h *TransactionHandler) UpdateRecurring(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateRecurringRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	txn, err := h.recurringService.SetTransactionRecurring(c.Request().Context(), userID, transactionID, &req)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, txn)
}

// GetReviewQueue lists transactions flagged for review
// @Summary Review queue
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of transactions (max 500)" default(50)
// @Success 200 {object} dto.ReviewQueueResponse "Transactions needing review"
// @Router /transactions/review [get]
func (h *TransactionHandler) GetReviewQueue(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", services.DefaultReviewQueueLimit)

	transactions, err := h.transactionService.GetReviewQueue(userID, limit)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.ReviewQueueResponse{
		Transactions: transactions,
		Count:        len(transactions),
	})
}

// Reclassify re-runs classification over stored transactions
// @Summary Reclassify transactions
// @Description Reclassify the listed transactions in bounded groups. An empty list reclassifies every transaction flagged for review. User-pinned fields are kept.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReclassifyRequest true "Transactions to reclassify"
// @Success 200 {object} models.BatchResult "Per-item outcome"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "TXN_006 - Too many transactions"
// @Router /transactions/reclassify [post]
func (h *TransactionHandler) Reclassify(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ReclassifyRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.Request().Context()

	var result *models.BatchResult
	if len(req.TransactionIDs) == 0 {
		result, err = h.batchClassifier.ReclassifyNeedingReview(ctx, userID)
	} else {
		ids := make([]uuid.UUID, 0, len(req.TransactionIDs))
		for _, raw := range req.TransactionIDs {
			ids = append(ids, uuid.MustParse(raw))
		}
		result, err = h.batchClassifier.ReclassifyByIDs(ctx, userID, ids)
	}
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetCategorySummary aggregates the user's transactions by category
// @Summary Category summary
// @Description Totals per category over a date range. Defaults to the current calendar month.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.CategorySummaryResponse "Totals by category"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date or VALIDATION_004 - Start after end"
// @Router /transactions/summary [get]
func (h *TransactionHandler) GetCategorySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	now := time.Now().UTC()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	endDate := endOfDay(startDate.AddDate(0, 1, -1))

	if raw := c.QueryParam("start_date"); raw != "" {
		if startDate, err = time.Parse(dateLayout, raw); err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date"))
		}
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date"))
		}
		endDate = endOfDay(parsed)
	}

	summary, err := h.transactionService.GetCategorySummary(userID, startDate, endDate)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.CategorySummaryResponse{
		StartDate:  startDate,
		EndDate:    endDate,
		Categories: summary,
	})
}
