// Package opening coordinates the case-opening transaction: weighted
// draw, atomic balance debit, inventory and history appends. The three
// writes commit as one unit; on any failure no state is mutated.
package opening

import (
	"context"
	"errors"
	"fmt"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/droptable"
	"github.com/caseforge/caseforge/internal/logger"
	"github.com/caseforge/caseforge/internal/metrics"
	"github.com/caseforge/caseforge/internal/repository"
)

// CatalogProvider supplies consistent case snapshots for one opening.
type CatalogProvider interface {
	GetOpenableCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error)
}

// Service defines the interface for case opening
type Service interface {
	OpenCase(ctx context.Context, userID int64, caseSlug string) (*domain.OpenResult, error)
}

type service struct {
	catalog CatalogProvider
	store   repository.Opening
	rnd     droptable.Source
}

// NewService creates a new opening service
func NewService(catalog CatalogProvider, store repository.Opening) Service {
	return &service{
		catalog: catalog,
		store:   store,
		rnd:     droptable.DefaultSource,
	}
}

func (s *service) OpenCase(ctx context.Context, userID int64, caseSlug string) (*domain.OpenResult, error) {
	log := logger.FromContext(ctx)
	log.Info("OpenCase called", "user_id", userID, "case", caseSlug)

	if userID <= 0 || caseSlug == "" {
		return nil, fmt.Errorf("%w: user id and case slug are required", domain.ErrInvalidInput)
	}

	// Validating: the snapshot is the only catalog view this opening
	// will ever see; its price and weights cannot change underneath us.
	snapshot, err := s.catalog.GetOpenableCase(ctx, caseSlug)
	if err != nil {
		s.countFailure(caseSlug, err)
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	table, err := droptable.New(snapshot.Entries)
	if err != nil {
		log.Error("Case has an invalid drop table", "case", caseSlug, "error", err)
		s.countFailure(caseSlug, err)
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		s.countFailure(caseSlug, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Drawing happens before the debit, but the outcome is held in
	// memory only: nothing is revealed or persisted unless the debit
	// commits, so a rejected payment can never leak a result.
	won := table.Roll(s.rnd)
	if won.Item == nil {
		s.countFailure(caseSlug, nil)
		return nil, fmt.Errorf("drop table entry %d has no item data", won.ItemID)
	}

	newBalance, err := s.commitOpening(ctx, user.ID, snapshot, won)
	if err != nil {
		s.countFailure(caseSlug, err)
		return nil, err
	}

	metrics.CasesOpened.WithLabelValues(caseSlug, won.Item.Rarity).Inc()
	metrics.MoneySpentCents.Add(float64(snapshot.Case.Price))
	log.Info("Case opened",
		"user_id", userID,
		"case", caseSlug,
		"item", won.Item.Slug,
		"rarity", won.Item.Rarity,
		"price_paid", snapshot.Case.Price.String(),
		"new_balance", newBalance.String(),
	)

	return &domain.OpenResult{
		Case: domain.OpenedCase{
			ID:    snapshot.Case.ID,
			Name:  snapshot.Case.Name,
			Price: snapshot.Case.Price,
		},
		Item:       *won.Item,
		NewBalance: newBalance,
	}, nil
}

// commitOpening runs the Debiting and Recording phases in one store
// transaction, retrying whole attempts on transient conflicts. Every
// failed attempt rolls back, so a retried attempt starts from zero
// side effects.
func (s *service) commitOpening(ctx context.Context, userID int64, snapshot *domain.CaseSnapshot, won domain.CaseEntry) (domain.Cents, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxDebitAttempts; attempt++ {
		// Caller cancellation before the debit commits is a rejection
		// with no effect.
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("opening cancelled before debit: %w", err)
		}

		newBalance, err := s.attemptOpening(ctx, userID, snapshot, won)
		if err == nil {
			return newBalance, nil
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			return 0, err
		}

		lastErr = err
		log.Warn("Retrying opening after store conflict", "user_id", userID, "attempt", attempt)
	}

	return 0, fmt.Errorf("opening failed after %d attempts: %w", maxDebitAttempts, lastErr)
}

func (s *service) attemptOpening(ctx context.Context, userID int64, snapshot *domain.CaseSnapshot, won domain.CaseEntry) (domain.Cents, error) {
	log := logger.FromContext(ctx)

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	newBalance, err := tx.DebitBalance(ctx, userID, snapshot.Case.Price)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to debit balance: %w", err)
	}

	// Once the debit has been issued the transaction is driven to its
	// end even if the caller goes away: abandoning it mid-flight would
	// leave the debit's fate to the connection teardown.
	recordCtx := context.WithoutCancel(ctx)

	if err := tx.AddInventoryEntry(recordCtx, userID, won.ItemID); err != nil {
		log.Error("Failed to append inventory entry, rolling back debit", "user_id", userID, "item_id", won.ItemID, "error", err)
		return 0, fmt.Errorf("failed to add inventory entry: %w", err)
	}

	if err := tx.RecordOpening(recordCtx, userID, snapshot.Case.ID, won.ItemID); err != nil {
		log.Error("Failed to append opening record, rolling back debit", "user_id", userID, "case_id", snapshot.Case.ID, "error", err)
		return 0, fmt.Errorf("failed to record opening: %w", err)
	}

	if err := tx.Commit(recordCtx); err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			return 0, fmt.Errorf("failed to commit opening: %w", err)
		}
		// The store reports whether the transaction applied; a failed
		// commit aborts atomically, so the debit cannot survive alone.
		// Logged with full context so operators can reconcile if the
		// store's report was itself lost.
		log.Error("opening reconciliation required: commit failed",
			"user_id", userID,
			"case_id", snapshot.Case.ID,
			"item_id", won.ItemID,
			"amount", snapshot.Case.Price.String(),
			"error", err,
		)
		return 0, fmt.Errorf("failed to commit opening: %w", err)
	}

	return newBalance, nil
}

// countFailure records a failed opening under a coarse reason label.
func (s *service) countFailure(caseSlug string, err error) {
	metrics.OpeningFailures.WithLabelValues(caseSlug, failureReason(err)).Inc()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCaseNotFound), errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrEmptyCase):
		return "empty_case"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
