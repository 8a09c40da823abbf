package opening

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/repository"
)

// MockCatalog implements CatalogProvider for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetOpenableCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseSnapshot), args.Error(1)
}

// MockStore implements repository.Opening for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockStore) BeginTx(ctx context.Context) (repository.OpeningTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.OpeningTx), args.Error(1)
}

// MockTx implements repository.OpeningTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) DebitBalance(ctx context.Context, userID int64, amount domain.Cents) (domain.Cents, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockTx) AddInventoryEntry(ctx context.Context, userID, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockTx) RecordOpening(ctx context.Context, userID, caseID, itemID int64) error {
	args := m.Called(ctx, userID, caseID, itemID)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
