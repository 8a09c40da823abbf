package repository

import (
	"context"

	"github.com/caseforge/caseforge/internal/domain"
)

// Catalog defines read-only access to cases and items. Snapshots are
// defensive copies: the opening flow never observes catalog mutation
// mid-transaction.
type Catalog interface {
	ListActiveCases(ctx context.Context) ([]domain.Case, error)
	// GetCaseBySlug returns the case and its entries (items included)
	// regardless of active flag, or domain.ErrCaseNotFound.
	GetCaseBySlug(ctx context.Context, slug string) (*domain.CaseSnapshot, error)
	// GetOpenableCase is GetCaseBySlug restricted to active cases.
	// Inactive cases report domain.ErrCaseNotFound, matching the
	// behaviour callers see for missing ones.
	GetOpenableCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error)
}
