package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseforge/caseforge/internal/database"
)

var (
	setupOnce sync.Once
	setupErr  error
	testPool  *pgxpool.Pool
)

// requireTestPool returns a pool against TEST_DATABASE_URL with migrations
// applied, or skips the test when the variable is unset.
func requireTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	setupOnce.Do(func() {
		if err := database.Migrate(connString); err != nil {
			setupErr = fmt.Errorf("failed to apply migrations: %w", err)
			return
		}
		testPool, setupErr = pgxpool.New(context.Background(), connString)
	})
	if setupErr != nil {
		t.Fatalf("test database setup failed: %v", setupErr)
	}
	return testPool
}

// createTestUser inserts a user with the given balance and returns its id.
// Cleanup cascades through the user's inventory and openings.
func createTestUser(t *testing.T, pool *pgxpool.Pool, balanceCents int64) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO users (email, username, balance_cents)
		VALUES ($1, $2, $3)
		RETURNING id
	`, fmt.Sprintf("it-%s@test.local", t.Name()), fmt.Sprintf("it-%s", t.Name()), balanceCents).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	})
	return id
}

// createTestCase inserts a case with one guaranteed-drop item and returns the
// case id, item id and slug.
func createTestCase(t *testing.T, pool *pgxpool.Pool, priceCents int64, active bool) (caseID, itemID int64, slug string) {
	t.Helper()

	ctx := context.Background()
	slug = fmt.Sprintf("it-case-%s", t.Name())

	err := pool.QueryRow(ctx, `
		INSERT INTO items (name, slug, rarity, price_cents)
		VALUES ($1, $2, 'common', 100)
		RETURNING id
	`, "it item "+t.Name(), fmt.Sprintf("it-item-%s", t.Name())).Scan(&itemID)
	if err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO cases (name, slug, price_cents, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "it case "+t.Name(), slug, priceCents, active).Scan(&caseID)
	if err != nil {
		t.Fatalf("failed to create test case: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO case_items (case_id, item_id, drop_weight_bp)
		VALUES ($1, $2, 10000)
	`, caseID, itemID)
	if err != nil {
		t.Fatalf("failed to link test case item: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = pool.Exec(ctx, `DELETE FROM cases WHERE id = $1`, caseID)
		_, _ = pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	})
	return caseID, itemID, slug
}
