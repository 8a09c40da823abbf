package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/repository"
)

// OpeningRepository implements the opening repository for PostgreSQL
type OpeningRepository struct {
	db *pgxpool.Pool
}

// NewOpeningRepository creates a new OpeningRepository
func NewOpeningRepository(db *pgxpool.Pool) *OpeningRepository {
	return &OpeningRepository{db: db}
}

const userColumns = `id, email, username, balance_cents, created_at, updated_at`

func getUserByID(ctx context.Context, db *pgxpool.Pool, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u domain.User
	err := db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Email, &u.Username, &u.Balance, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &u, nil
}

// GetUserByID returns the user or domain.ErrUserNotFound.
func (r *OpeningRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return getUserByID(ctx, r.db, userID)
}

// BeginTx starts one opening transaction.
func (r *OpeningRepository) BeginTx(ctx context.Context) (repository.OpeningTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &openingTx{tx: tx}, nil
}

// openingTx bundles the debit, the inventory append and the history append
// into one database transaction. The conditional debit row-locks the user for
// the remainder of the transaction, so concurrent openings for the same user
// serialize here.
type openingTx struct {
	tx pgx.Tx
}

func (t *openingTx) DebitBalance(ctx context.Context, userID int64, amount domain.Cents) (domain.Cents, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%s: negative amount %d: %w", ErrMsgFailedToDebitBalance, amount, domain.ErrInvalidInput)
	}

	// The WHERE clause makes the debit conditional on sufficient funds: of
	// two concurrent openings at most one can observe the balance as
	// covering the price.
	query := `
		UPDATE users
		SET balance_cents = balance_cents - $2, updated_at = now()
		WHERE id = $1 AND balance_cents >= $2
		RETURNING balance_cents
	`

	var newBalance domain.Cents
	err := t.tx.QueryRow(ctx, query, userID, int64(amount)).Scan(&newBalance)
	if err == nil {
		return newBalance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, mapConflict(ErrMsgFailedToDebitBalance, err)
	}

	// No row updated: either the user is gone or the balance fell short.
	var exists bool
	err = t.tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return 0, mapConflict(ErrMsgFailedToCheckUserExists, err)
	}
	if !exists {
		return 0, domain.ErrUserNotFound
	}
	return 0, domain.ErrInsufficientFunds
}

func (t *openingTx) AddInventoryEntry(ctx context.Context, userID, itemID int64) error {
	query := `INSERT INTO user_inventory (user_id, item_id) VALUES ($1, $2)`
	if _, err := t.tx.Exec(ctx, query, userID, itemID); err != nil {
		return mapConflict(ErrMsgFailedToAddInventory, err)
	}
	return nil
}

func (t *openingTx) RecordOpening(ctx context.Context, userID, caseID, itemID int64) error {
	query := `INSERT INTO case_openings (user_id, case_id, item_id) VALUES ($1, $2, $3)`
	if _, err := t.tx.Exec(ctx, query, userID, caseID, itemID); err != nil {
		return mapConflict(ErrMsgFailedToRecordOpening, err)
	}
	return nil
}

func (t *openingTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return mapConflict(ErrMsgFailedToCommit, err)
	}
	return nil
}

func (t *openingTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}
