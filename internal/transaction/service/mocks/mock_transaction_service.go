package mocks

import (
	"context"

	"github.com/ridloal/product-transactions/internal/transaction/domain"
	"github.com/stretchr/testify/mock"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, q domain.ListQuery) (*domain.TransactionPage, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.(*domain.TransactionPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) GetStatistics(ctx context.Context, q domain.MonthQuery) (*domain.Statistics, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.(*domain.Statistics), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) GetBarChart(ctx context.Context, q domain.MonthQuery) ([]domain.PriceRangeCount, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.([]domain.PriceRangeCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) GetPieChart(ctx context.Context, q domain.MonthQuery) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.([]domain.CategoryCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) GetCombined(ctx context.Context, q domain.MonthQuery) (*domain.CombinedReport, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.(*domain.CombinedReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
