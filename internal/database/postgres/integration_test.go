package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/repository"
)

func TestDebitBalance_SufficientFunds(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, 10000)
	repo := NewOpeningRepository(pool)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	newBalance, err := tx.DebitBalance(ctx, userID, 2500)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(7500), newBalance)

	require.NoError(t, tx.Commit(ctx))

	user, err := repo.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(7500), user.Balance)
}

func TestDebitBalance_InsufficientFunds(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, 1000)
	repo := NewOpeningRepository(pool)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.DebitBalance(ctx, userID, 2500)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	require.NoError(t, tx.Rollback(ctx))

	user, err := repo.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1000), user.Balance, "failed debit must not change the balance")
}

func TestDebitBalance_UserNotFound(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	repo := NewOpeningRepository(pool)
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.DebitBalance(ctx, -1, 100)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestOpeningTx_RollbackLeavesNoTrace(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, 10000)
	caseID, itemID, _ := createTestCase(t, pool, 2500, true)
	repo := NewOpeningRepository(pool)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	_, err = tx.DebitBalance(ctx, userID, 2500)
	require.NoError(t, err)
	require.NoError(t, tx.AddInventoryEntry(ctx, userID, itemID))
	require.NoError(t, tx.RecordOpening(ctx, userID, caseID, itemID))
	require.NoError(t, tx.Rollback(ctx))

	user, err := repo.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(10000), user.Balance)

	users := NewUserRepository(pool)
	inventory, err := users.ListInventory(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, inventory)

	count, err := users.CountOpenings(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOpeningTx_CommitPersistsAllThree(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, 10000)
	caseID, itemID, _ := createTestCase(t, pool, 2500, true)
	repo := NewOpeningRepository(pool)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.DebitBalance(ctx, userID, 2500)
	require.NoError(t, err)
	require.NoError(t, tx.AddInventoryEntry(ctx, userID, itemID))
	require.NoError(t, tx.RecordOpening(ctx, userID, caseID, itemID))
	require.NoError(t, tx.Commit(ctx))

	users := NewUserRepository(pool)

	inventory, err := users.ListInventory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, inventory, 1)
	assert.Equal(t, itemID, inventory[0].ItemID)
	require.NotNil(t, inventory[0].Item)

	records, err := users.ListOpenings(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, caseID, records[0].CaseID)

	count, err := users.CountOpenings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOpeningTx_RollbackAfterCommitIsTxClosed(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, 10000)
	repo := NewOpeningRepository(pool)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	_, err = tx.DebitBalance(ctx, userID, 100)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)
}

func TestCatalogRepository_GetCaseBySlug(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	caseID, itemID, slug := createTestCase(t, pool, 2500, false)
	repo := NewCatalogRepository(pool)

	snap, err := repo.GetCaseBySlug(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, caseID, snap.Case.ID)
	assert.False(t, snap.Case.IsActive)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, itemID, snap.Entries[0].ItemID)
	assert.Equal(t, domain.Weight(10000), snap.Entries[0].Weight)
	require.NotNil(t, snap.Entries[0].Item)

	// Inactive cases are invisible to the opening path.
	_, err = repo.GetOpenableCase(ctx, slug)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)

	_, err = repo.GetCaseBySlug(ctx, "no-such-case")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestDebitBalance_ConcurrentOpeningsSingleWinner(t *testing.T) {
	pool := requireTestPool(t)
	ctx := context.Background()

	// Balance covers exactly one of two concurrent debits.
	userID := createTestUser(t, pool, 6000)
	repo := NewOpeningRepository(pool)

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			tx, err := repo.BeginTx(ctx)
			if err != nil {
				results <- err
				return
			}
			defer repository.SafeRollback(ctx, tx)

			if _, err := tx.DebitBalance(ctx, userID, 6000); err != nil {
				results <- err
				return
			}
			results <- tx.Commit(ctx)
		}()
	}

	var successes, insufficient int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, domain.ErrInsufficientFunds):
			insufficient++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, insufficient)

	user, err := repo.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(0), user.Balance)
}
