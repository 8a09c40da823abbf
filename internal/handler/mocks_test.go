package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseforge/caseforge/internal/domain"
)

// MockCatalogService mocks catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCases(ctx context.Context) ([]domain.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockCatalogService) GetCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseSnapshot), args.Error(1)
}

func (m *MockCatalogService) GetOpenableCase(ctx context.Context, slug string) (*domain.CaseSnapshot, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseSnapshot), args.Error(1)
}

// MockOpeningService mocks opening.Service
type MockOpeningService struct {
	mock.Mock
}

func (m *MockOpeningService) OpenCase(ctx context.Context, userID int64, caseSlug string) (*domain.OpenResult, error) {
	args := m.Called(ctx, userID, caseSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenResult), args.Error(1)
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserService) GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockUserService) GetHistory(ctx context.Context, userID int64) ([]domain.OpeningRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpeningRecord), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
