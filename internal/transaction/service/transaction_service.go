package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ridloal/product-transactions/internal/transaction/domain"
	"github.com/ridloal/product-transactions/internal/transaction/repository"
)

type TransactionService interface {
	ListTransactions(ctx context.Context, q domain.ListQuery) (*domain.TransactionPage, error)
	GetStatistics(ctx context.Context, q domain.MonthQuery) (*domain.Statistics, error)
	GetBarChart(ctx context.Context, q domain.MonthQuery) ([]domain.PriceRangeCount, error)
	GetPieChart(ctx context.Context, q domain.MonthQuery) ([]domain.CategoryCount, error)
	GetCombined(ctx context.Context, q domain.MonthQuery) (*domain.CombinedReport, error)
	CheckHealth(ctx context.Context) error
}

type transactionServiceImpl struct {
	repo repository.TransactionRepository
}

func NewTransactionService(repo repository.TransactionRepository) TransactionService {
	return &transactionServiceImpl{repo: repo}
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context, q domain.ListQuery) (*domain.TransactionPage, error) {
	if q.Page < 1 {
		q.Page = domain.DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = domain.DefaultPerPage
	}

	items := []domain.Product{}
	if _, ok := q.Offset(); ok {
		var err error
		items, err = s.repo.ListTransactions(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}
	}
	total, err := s.repo.CountTransactions(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}
	return &domain.TransactionPage{Items: items, Total: total}, nil
}

func (s *transactionServiceImpl) GetStatistics(ctx context.Context, q domain.MonthQuery) (*domain.Statistics, error) {
	stats, err := s.repo.GetStatistics(ctx, q.MonthKey())
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	return stats, nil
}

func (s *transactionServiceImpl) GetBarChart(ctx context.Context, q domain.MonthQuery) ([]domain.PriceRangeCount, error) {
	counts, err := s.repo.GetPriceRangeCounts(ctx, q.MonthKey())
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}

	// GROUP BY order is engine-defined; present buckets in ascending price order.
	chart := make([]domain.PriceRangeCount, 0, len(counts))
	for _, c := range counts {
		if c.ItemCount > 0 {
			chart = append(chart, c)
		}
	}
	sort.SliceStable(chart, func(i, j int) bool {
		return domain.BucketIndex(chart[i].PriceRange) < domain.BucketIndex(chart[j].PriceRange)
	})
	return chart, nil
}

func (s *transactionServiceImpl) GetPieChart(ctx context.Context, q domain.MonthQuery) ([]domain.CategoryCount, error) {
	counts, err := s.repo.GetCategoryCounts(ctx, q.MonthKey())
	if err != nil {
		return nil, fmt.Errorf("pie chart: %w", err)
	}
	return counts, nil
}

// GetCombined runs the three monthly reports concurrently and fails if any of them fails.
func (s *transactionServiceImpl) GetCombined(ctx context.Context, q domain.MonthQuery) (*domain.CombinedReport, error) {
	var (
		report domain.CombinedReport
		stats  *domain.Statistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.GetStatistics(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		report.BarChart, err = s.GetBarChart(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		report.PieChart, err = s.GetPieChart(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Statistics = *stats
	return &report, nil
}

func (s *transactionServiceImpl) CheckHealth(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
