package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidID     ErrorCode = "VALIDATION_006"
	ValidationInvalidCursor ErrorCode = "VALIDATION_007"
)

// Transaction error codes (TXN_*)
const (
	TxnNotFound         ErrorCode = "TXN_001"
	TxnInvalidAmount    ErrorCode = "TXN_002"
	TxnInvalidType      ErrorCode = "TXN_003"
	TxnInvalidCategory  ErrorCode = "TXN_004"
	TxnVersionConflict  ErrorCode = "TXN_005"
	TxnBatchTooLarge    ErrorCode = "TXN_006"
	TxnOverrideConflict ErrorCode = "TXN_007"
)

// Recurring merchant error codes (REC_*)
const (
	RecMerchantNotFound ErrorCode = "REC_001"
	RecMerchantExists   ErrorCode = "REC_002"
	RecInvalidMerchant  ErrorCode = "REC_003"
	RecInvalidFrequency ErrorCode = "REC_004"
)

// Import error codes (IMPORT_*)
const (
	ImportNoValidTransactions ErrorCode = "IMPORT_001"
	ImportEmptyFile           ErrorCode = "IMPORT_002"
	ImportTooManyRows         ErrorCode = "IMPORT_003"
	ImportFileTooLarge        ErrorCode = "IMPORT_004"
	ImportMissingFile         ErrorCode = "IMPORT_005"
	ImportBatchNotFound       ErrorCode = "IMPORT_006"
	ImportMalformedFile       ErrorCode = "IMPORT_007"
)

// Aggregator sync error codes (SYNC_*)
const (
	SyncAggregatorDisabled ErrorCode = "SYNC_001"
	SyncAggregatorDown     ErrorCode = "SYNC_002"
	SyncItemNotFound       ErrorCode = "SYNC_003"
	SyncUpstreamError      ErrorCode = "SYNC_004"
	SyncInvalidPublicToken ErrorCode = "SYNC_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token",
	AuthInsufficientPermission: "Insufficient permissions to perform this action",

	// Validation
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",
	ValidationInvalidID:     "Invalid identifier",
	ValidationInvalidCursor: "Invalid pagination cursor",

	// Transactions
	TxnNotFound:         "Transaction not found",
	TxnInvalidAmount:    "Transaction amount must be a positive decimal",
	TxnInvalidType:      "Transaction type must be income or expense",
	TxnInvalidCategory:  "Unknown category",
	TxnVersionConflict:  "Transaction was modified concurrently, reload and retry",
	TxnBatchTooLarge:    "Too many transactions in one reclassification request",
	TxnOverrideConflict: "Conflicting override update, retry the request",

	// Recurring merchants
	RecMerchantNotFound: "Recurring merchant not found",
	RecMerchantExists:   "Recurring merchant already exists",
	RecInvalidMerchant:  "Merchant name is required",
	RecInvalidFrequency: "Unknown recurrence frequency",

	// Imports
	ImportNoValidTransactions: "No valid transactions found in file",
	ImportEmptyFile:           "Uploaded file is empty",
	ImportTooManyRows:         "File exceeds the maximum number of rows",
	ImportFileTooLarge:        "Uploaded file is too large",
	ImportMissingFile:         "A file upload is required",
	ImportBatchNotFound:       "Import batch not found",
	ImportMalformedFile:       "File could not be parsed",

	// Aggregator
	SyncAggregatorDisabled: "Bank aggregation is not configured",
	SyncAggregatorDown:     "Bank aggregator is temporarily unavailable",
	SyncItemNotFound:       "Linked bank item not found",
	SyncUpstreamError:      "Bank aggregator returned an error",
	SyncInvalidPublicToken: "Public token is required",

	// System
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for an error code
// Returns a generic message if the code is not found
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the given error code is valid
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
