package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidUserIDParam    = "user_id must be a positive integer"

	// Catalog operation error messages
	ErrMsgListCasesFailed = "Failed to list cases"
	ErrMsgGetCaseFailed   = "Failed to get case"

	// Opening operation error messages
	ErrMsgOpenCaseFailed = "Failed to open case"

	// User operation error messages
	ErrMsgGetProfileFailed   = "Failed to get profile"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgGetHistoryFailed   = "Failed to get history"
)
