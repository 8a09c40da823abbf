// Package catalog exposes read-only case and item data. It owns the
// snapshot contract: every returned value is a copy the caller may hold
// without observing later catalog changes.
package catalog

import (
	"context"
	"fmt"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/logger"
	"github.com/caseforge/caseforge/internal/repository"
)

// Service defines the interface for catalog reads
type Service interface {
	ListCases(ctx context.Context) ([]domain.Case, error)
	// GetCase returns a case with its entries for detail pages. Served
	// through a short-TTL cache.
	GetCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error)
	// GetOpenableCase returns a fresh snapshot of an active case. The
	// opening flow charges the snapshot's price, so this read always
	// bypasses the cache.
	GetOpenableCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error)
}

type service struct {
	repo  repository.Catalog
	cache *snapshotCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newSnapshotCache(),
	}
}

func (s *service) ListCases(ctx context.Context) ([]domain.Case, error) {
	cases, err := s.repo.ListActiveCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

func (s *service) GetCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: case slug is required", domain.ErrInvalidInput)
	}

	if snapshot, found := s.cache.Get(slug); found {
		return snapshot, nil
	}

	snapshot, err := s.repo.GetCaseBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	s.cache.Set(slug, snapshot)
	logger.FromContext(ctx).Debug("Cached case snapshot", "case", slug)
	return snapshot, nil
}

func (s *service) GetOpenableCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: case slug is required", domain.ErrInvalidInput)
	}
	return s.repo.GetOpenableCase(ctx, slug)
}
