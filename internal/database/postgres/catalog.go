package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseforge/caseforge/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const caseColumns = `id, name, slug, COALESCE(description, ''), COALESCE(image_url, ''), price_cents, is_active`

// ListActiveCases returns all active cases, cheapest first.
func (r *CatalogRepository) ListActiveCases(ctx context.Context) ([]domain.Case, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases
		WHERE is_active
		ORDER BY price_cents, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
	}
	defer rows.Close()

	cases := []domain.Case{}
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.Price, &c.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
	}
	return cases, nil
}

// GetCaseBySlug returns the case and its entries regardless of active flag.
func (r *CatalogRepository) GetCaseBySlug(ctx context.Context, slug string) (*domain.CaseSnapshot, error) {
	return r.getCase(ctx, slug, false)
}

// GetOpenableCase is GetCaseBySlug restricted to active cases.
func (r *CatalogRepository) GetOpenableCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error) {
	return r.getCase(ctx, slug, true)
}

// getCase reads the case row and its entries inside one repeatable-read
// transaction so the snapshot is internally consistent: the price and the
// weights all come from the same catalog state.
func (r *CatalogRepository) getCase(ctx context.Context, slug string, activeOnly bool) (*domain.CaseSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT ` + caseColumns + `
		FROM cases
		WHERE slug = $1
	`
	if activeOnly {
		query += ` AND is_active`
	}

	var c domain.Case
	err = tx.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.Price, &c.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCase, err)
	}

	entriesQuery := `
		SELECT ci.item_id, ci.drop_weight_bp,
		       i.id, i.name, i.slug, COALESCE(i.description, ''), COALESCE(i.image_url, ''), i.rarity, i.price_cents
		FROM case_items ci
		JOIN items i ON i.id = ci.item_id
		WHERE ci.case_id = $1
		ORDER BY ci.id
	`
	rows, err := tx.Query(ctx, entriesQuery, c.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCaseItems, err)
	}
	defer rows.Close()

	entries := []domain.CaseEntry{}
	for rows.Next() {
		var e domain.CaseEntry
		var item domain.Item
		err := rows.Scan(&e.ItemID, &e.Weight,
			&item.ID, &item.Name, &item.Slug, &item.Description, &item.ImageURL, &item.Rarity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCaseItems, err)
		}
		e.Item = &item
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCaseItems, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}

	return &domain.CaseSnapshot{Case: c, Entries: entries}, nil
}
