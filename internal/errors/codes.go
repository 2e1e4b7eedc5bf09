package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Store error codes (STORE_*)
const (
	StoreLedgerUnavailable ErrorCode = "STORE_001"
	StoreLedgerQueryFailed ErrorCode = "STORE_002"
	StoreIdentityDegraded  ErrorCode = "STORE_003"
)

// Chat error codes (CHAT_*)
const (
	ChatCouldNotUnderstand ErrorCode = "CHAT_001"
	ChatNoAnswer           ErrorCode = "CHAT_002"
	ChatUnknownTool        ErrorCode = "CHAT_003"
)

// Assistant error codes (ASSISTANT_*)
const (
	AssistantUpstreamFailure ErrorCode = "ASSISTANT_001"
	AssistantNotReady        ErrorCode = "ASSISTANT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Store errors
	StoreLedgerUnavailable: "Transaction data is temporarily unavailable. Please try again later",
	StoreLedgerQueryFailed: "Failed to retrieve transaction data",
	StoreIdentityDegraded:  "Account owner lookup is degraded",

	// Chat errors
	ChatCouldNotUnderstand: "The assistant could not understand the question",
	ChatNoAnswer:           "The assistant could not generate an answer",
	ChatUnknownTool:        "The assistant requested an unknown tool",

	// Assistant errors
	AssistantUpstreamFailure: "The reasoning service failed to process the request",
	AssistantNotReady:        "The reasoning service is not ready",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
