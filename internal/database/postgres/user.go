package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseforge/caseforge/internal/domain"
)

// UserRepository implements the user read repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID returns the user or domain.ErrUserNotFound.
func (r *UserRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return getUserByID(ctx, r.db, userID)
}

// CountOpenings returns the number of openings the user has committed.
func (r *UserRepository) CountOpenings(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM case_openings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountOpenings, err)
	}
	return count, nil
}

// ListInventory returns the user's inventory, newest first.
func (r *UserRepository) ListInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error) {
	query := `
		SELECT ui.id, ui.user_id, ui.item_id, ui.acquired_at, ui.is_sold,
		       i.id, i.name, i.slug, COALESCE(i.description, ''), COALESCE(i.image_url, ''), i.rarity, i.price_cents
		FROM user_inventory ui
		JOIN items i ON i.id = ui.item_id
		WHERE ui.user_id = $1
		ORDER BY ui.acquired_at DESC, ui.id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		var e domain.InventoryEntry
		var item domain.Item
		err := rows.Scan(&e.ID, &e.UserID, &e.ItemID, &e.AcquiredAt, &e.IsSold,
			&item.ID, &item.Name, &item.Slug, &item.Description, &item.ImageURL, &item.Rarity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
		}
		e.Item = &item
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	return entries, nil
}

// ListOpenings returns up to limit opening records, newest first.
func (r *UserRepository) ListOpenings(ctx context.Context, userID int64, limit int) ([]domain.OpeningRecord, error) {
	query := `
		SELECT co.id, co.user_id, co.case_id, co.item_id, co.created_at,
		       i.id, i.name, i.slug, COALESCE(i.description, ''), COALESCE(i.image_url, ''), i.rarity, i.price_cents
		FROM case_openings co
		JOIN items i ON i.id = co.item_id
		WHERE co.user_id = $1
		ORDER BY co.created_at DESC, co.id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListOpenings, err)
	}
	defer rows.Close()

	records := []domain.OpeningRecord{}
	for rows.Next() {
		var rec domain.OpeningRecord
		var item domain.Item
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.CaseID, &rec.ItemID, &rec.CreatedAt,
			&item.ID, &item.Name, &item.Slug, &item.Description, &item.ImageURL, &item.Rarity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListOpenings, err)
		}
		rec.Item = &item
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListOpenings, err)
	}
	return records, nil
}
