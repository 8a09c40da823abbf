package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Catalog errors
	ErrMsgCaseNotFound = "case not found"
	ErrMsgItemNotFound = "item not found"
	ErrMsgEmptyCase    = "case has no items"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Concurrency errors
	ErrMsgConcurrencyConflict = "concurrent update conflict"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Catalog errors
	ErrCaseNotFound = errors.New(ErrMsgCaseNotFound)
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrEmptyCase    = errors.New(ErrMsgEmptyCase)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Concurrency errors
	// Transient store-level conflict; safe to retry a bounded number of times.
	ErrConcurrencyConflict = errors.New(ErrMsgConcurrencyConflict)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
