// Package user serves the profile, inventory and history read surface.
// All writes to these stores happen in the opening flow; this package
// only reads.
package user

import (
	"context"
	"fmt"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/logger"
	"github.com/caseforge/caseforge/internal/repository"
)

// HistoryLimit caps the number of opening records returned per request.
const HistoryLimit = 50

// Service defines the interface for user reads
type Service interface {
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error)
	GetHistory(ctx context.Context, userID int64) ([]domain.OpeningRecord, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	opened, err := s.repo.CountOpenings(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to count openings", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count openings: %w", err)
	}

	return &domain.Profile{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		Balance:          u.Balance,
		TotalCasesOpened: opened,
		CreatedAt:        u.CreatedAt,
	}, nil
}

func (s *service) GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	entries, err := s.repo.ListInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return entries, nil
}

func (s *service) GetHistory(ctx context.Context, userID int64) ([]domain.OpeningRecord, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	records, err := s.repo.ListOpenings(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list openings: %w", err)
	}
	return records, nil
}
