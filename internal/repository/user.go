package repository

import (
	"context"

	"github.com/caseforge/caseforge/internal/domain"
)

// User defines the read surface for profile, inventory and history.
type User interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	CountOpenings(ctx context.Context, userID int64) (int64, error)
	// ListInventory returns the user's inventory, newest first.
	ListInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error)
	// ListOpenings returns up to limit opening records, newest first.
	ListOpenings(ctx context.Context, userID int64, limit int) ([]domain.OpeningRecord, error)
}
