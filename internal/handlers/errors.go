package handlers

import (
	stderrors "errors"
	"log/slog"

	"budgethero/internal/errors"
	"budgethero/internal/importer"
	"budgethero/internal/models"
	"budgethero/internal/plaid"
	"budgethero/internal/repositories"
	"budgethero/internal/services"

	"github.com/labstack/echo/v4"
)

// domainErrors maps sentinel errors from the service and storage layers to
// API error codes. The first match wins, so wrapping sentinels go first.
var domainErrors = []struct {
	target error
	code   errors.ErrorCode
}{
	{services.ErrCircuitBreakerOpen, errors.SyncAggregatorDown},
	{services.ErrAggregatorDisabled, errors.SyncAggregatorDisabled},
	{services.ErrInvalidPublicToken, errors.SyncInvalidPublicToken},
	{plaid.ErrRateLimit, errors.SyncAggregatorDown},
	{services.ErrAggregatorRequest, errors.SyncUpstreamError},
	{repositories.ErrPlaidItemNotFound, errors.SyncItemNotFound},

	{repositories.ErrTransactionNotFound, errors.TxnNotFound},
	{services.ErrInvalidTransactionAmount, errors.TxnInvalidAmount},
	{models.ErrInvalidAmount, errors.TxnInvalidAmount},
	{models.ErrInvalidTransactionType, errors.TxnInvalidType},
	{services.ErrInvalidCategory, errors.TxnInvalidCategory},
	{services.ErrOverrideConflicts, errors.TxnOverrideConflict},
	{models.ErrOptimisticLockConflict, errors.TxnVersionConflict},
	{services.ErrBatchTooLarge, errors.TxnBatchTooLarge},
	{services.ErrInvalidTransactionDate, errors.ValidationInvalidDate},
	{services.ErrInvalidDateRange, errors.ValidationOutOfRange},
	{services.ErrInvalidUserID, errors.ValidationInvalidID},
	{services.ErrAuditDateRange, errors.ValidationOutOfRange},
	{services.ErrAuditResource, errors.ValidationInvalidFormat},
	{services.ErrAuditResourceID, errors.ValidationInvalidID},

	{repositories.ErrRecurringMerchantNotFound, errors.RecMerchantNotFound},
	{services.ErrRecurringMerchantExist, errors.RecMerchantExists},
	{services.ErrInvalidMerchantName, errors.RecInvalidMerchant},
	{services.ErrMerchantUnknown, errors.RecInvalidMerchant},
	{models.ErrInvalidFrequency, errors.RecInvalidFrequency},
	{models.ErrInvalidRecurringType, errors.ValidationInvalidFormat},

	{importer.ErrNoValidTransactions, errors.ImportNoValidTransactions},
	{importer.ErrEmptyFile, errors.ImportEmptyFile},
	{importer.ErrTooManyRows, errors.ImportTooManyRows},
	{importer.ErrMalformedFile, errors.ImportMalformedFile},
	{repositories.ErrImportBatchNotFound, errors.ImportBatchNotFound},
}

// ErrorCodeFor returns the API error code for a known domain error
func ErrorCodeFor(err error) (errors.ErrorCode, bool) {
	for _, m := range domainErrors {
		if stderrors.Is(err, m.target) {
			return m.code, true
		}
	}
	return "", false
}

// sendServiceError writes the mapped error response for a domain error and
// falls back to a logged system error for anything unrecognized
func sendServiceError(c echo.Context, logger *slog.Logger, err error) error {
	if code, ok := ErrorCodeFor(err); ok {
		return SendError(c, code)
	}

	logger.ErrorContext(c.Request().Context(), "request failed",
		"error", err,
		"trace_id", getTraceID(c),
		"path", c.Path(),
		"method", c.Request().Method,
	)
	return SendSystemError(c, err)
}
