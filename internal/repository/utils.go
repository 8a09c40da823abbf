package repository

import (
	"context"
	"errors"

	"github.com/caseforge/caseforge/internal/logger"
)

// ErrTxClosed is returned by Rollback/Commit on a transaction that has
// already finished. Store implementations map their driver's
// equivalent onto it so SafeRollback stays quiet after a commit.
var ErrTxClosed = errors.New("transaction is closed")

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
