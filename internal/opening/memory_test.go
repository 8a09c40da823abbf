package opening

import (
	"context"
	"fmt"
	"sync"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/repository"
)

// fakeCatalog serves a fixed set of snapshots, cloned per call like the
// real provider.
type fakeCatalog struct {
	snapshots map[string]*domain.CaseSnapshot
}

func (f *fakeCatalog) GetOpenableCase(_ context.Context, slug string) (*domain.CaseSnapshot, error) {
	s, ok := f.snapshots[slug]
	if !ok || !s.Case.IsActive {
		return nil, domain.ErrCaseNotFound
	}
	return s.Clone(), nil
}

// fakeOpeningStore is an in-memory repository.Opening. The debit takes
// effect under the store lock as soon as it is issued, emulating the
// row lock a conditional UPDATE holds until commit: a concurrent
// transaction observes the debited value. Rollback restores it.
type fakeOpeningStore struct {
	mu        sync.Mutex
	balances  map[int64]domain.Cents
	inventory []domain.InventoryEntry
	openings  []domain.OpeningRecord
	nextID    int64

	failInventory error
	failRecord    error
	failCommit    error
}

func newFakeOpeningStore() *fakeOpeningStore {
	return &fakeOpeningStore{balances: make(map[int64]domain.Cents), nextID: 1}
}

func (f *fakeOpeningStore) GetUserByID(_ context.Context, userID int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	balance, ok := f.balances[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{ID: userID, Balance: balance}, nil
}

func (f *fakeOpeningStore) BeginTx(_ context.Context) (repository.OpeningTx, error) {
	return &fakeOpeningTx{store: f}, nil
}

func (f *fakeOpeningStore) balanceOf(userID int64) domain.Cents {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[userID]
}

type fakeOpeningTx struct {
	store *fakeOpeningStore

	debitUser   int64
	debitAmount domain.Cents
	hasDebit    bool

	pendingInventory []domain.InventoryEntry
	pendingOpenings  []domain.OpeningRecord
	done             bool
}

func (t *fakeOpeningTx) DebitBalance(_ context.Context, userID int64, amount domain.Cents) (domain.Cents, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	balance, ok := t.store.balances[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	if balance < amount {
		return 0, domain.ErrInsufficientFunds
	}

	t.store.balances[userID] = balance - amount
	t.debitUser = userID
	t.debitAmount = amount
	t.hasDebit = true
	return balance - amount, nil
}

func (t *fakeOpeningTx) AddInventoryEntry(_ context.Context, userID, itemID int64) error {
	if err := t.store.failInventory; err != nil {
		return err
	}
	t.pendingInventory = append(t.pendingInventory, domain.InventoryEntry{UserID: userID, ItemID: itemID})
	return nil
}

func (t *fakeOpeningTx) RecordOpening(_ context.Context, userID, caseID, itemID int64) error {
	if err := t.store.failRecord; err != nil {
		return err
	}
	t.pendingOpenings = append(t.pendingOpenings, domain.OpeningRecord{UserID: userID, CaseID: caseID, ItemID: itemID})
	return nil
}

func (t *fakeOpeningTx) Commit(_ context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true

	if err := t.store.failCommit; err != nil {
		t.undoDebitLocked()
		return fmt.Errorf("commit: %w", err)
	}

	for _, e := range t.pendingInventory {
		e.ID = t.store.nextID
		t.store.nextID++
		t.store.inventory = append(t.store.inventory, e)
	}
	for _, o := range t.pendingOpenings {
		o.ID = t.store.nextID
		t.store.nextID++
		t.store.openings = append(t.store.openings, o)
	}
	return nil
}

func (t *fakeOpeningTx) Rollback(_ context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.undoDebitLocked()
	return nil
}

func (t *fakeOpeningTx) undoDebitLocked() {
	if t.hasDebit {
		t.store.balances[t.debitUser] += t.debitAmount
		t.hasDebit = false
	}
}
