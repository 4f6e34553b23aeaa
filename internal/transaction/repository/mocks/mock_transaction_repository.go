package mocks

import (
	"context"

	"github.com/ridloal/product-transactions/internal/transaction/domain"
	"github.com/stretchr/testify/mock"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransactionRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, q domain.ListQuery) ([]domain.Product, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context, q domain.ListQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) GetStatistics(ctx context.Context, monthKey string) (*domain.Statistics, error) {
	args := m.Called(ctx, monthKey)
	if res := args.Get(0); res != nil {
		return res.(*domain.Statistics), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) GetPriceRangeCounts(ctx context.Context, monthKey string) ([]domain.PriceRangeCount, error) {
	args := m.Called(ctx, monthKey)
	if res := args.Get(0); res != nil {
		return res.([]domain.PriceRangeCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) GetCategoryCounts(ctx context.Context, monthKey string) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, monthKey)
	if res := args.Get(0); res != nil {
		return res.([]domain.CategoryCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
