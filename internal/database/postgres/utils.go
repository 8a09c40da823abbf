package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caseforge/caseforge/internal/domain"
)

// isRetryableConflict reports whether err is a serialization failure or a
// deadlock, the two SQLSTATEs Postgres asks clients to retry.
func isRetryableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == PgErrorCodeSerializationFailure || pgErr.Code == PgErrorCodeDeadlockDetected
}

// mapConflict rewrites retryable driver errors onto
// domain.ErrConcurrencyConflict so callers can retry without knowing
// SQLSTATEs. Other errors pass through wrapped.
func mapConflict(msg string, err error) error {
	if isRetryableConflict(err) {
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrConcurrencyConflict, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
