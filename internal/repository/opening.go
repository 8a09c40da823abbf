package repository

import (
	"context"

	"github.com/caseforge/caseforge/internal/domain"
)

// Opening defines the persistence contract of the opening transaction.
// The debit, the inventory append and the history append commit as one
// atomic unit through OpeningTx.
type Opening interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	BeginTx(ctx context.Context) (OpeningTx, error)
}

// OpeningTx is one in-flight opening transaction.
type OpeningTx interface {
	Tx

	// DebitBalance decrements the balance by amount only if the current
	// balance covers it, as a single conditional update, and returns the
	// resulting balance. It is the sole serialization point for a user:
	// of two concurrent openings at most one can observe a given balance
	// as sufficient. Fails with domain.ErrInsufficientFunds (no effect)
	// when the balance does not cover amount, domain.ErrUserNotFound
	// when the user row is gone, or domain.ErrConcurrencyConflict on a
	// transient store conflict.
	DebitBalance(ctx context.Context, userID int64, amount domain.Cents) (domain.Cents, error)

	// AddInventoryEntry appends one owned item for the user.
	AddInventoryEntry(ctx context.Context, userID, itemID int64) error

	// RecordOpening appends one audit record for the opening.
	RecordOpening(ctx context.Context, userID, caseID, itemID int64) error
}
