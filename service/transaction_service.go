package service

import (
	"context"
	"go-transactions-api/model"
	"go-transactions-api/repository"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// TransactionService answers the read-only dashboard queries.
type TransactionService struct {
	repo repository.ITransactionRepository
}

func NewTransactionService(repo repository.ITransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// ListTransactions returns one page of records for the month, optionally
// narrowed by a free-text search. Zero page or perPage fall back to the defaults.
func (s *TransactionService) ListTransactions(ctx context.Context, q model.TransactionQuery) (*model.TransactionPage, error) {
	page, perPage := q.Page, q.PerPage
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	filter := model.TransactionFilter{
		Month:  q.Month,
		Search: q.Search,
		Limit:  perPage,
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	// The offset is only computed for pages that exist, so a huge page
	// number cannot overflow into a negative OFFSET.
	totalPages := (total + perPage - 1) / perPage
	transactions := []*model.Transaction{}
	if page <= totalPages {
		filter.Offset = (page - 1) * perPage
		transactions, err = s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
	}

	return &model.TransactionPage{
		Page:         page,
		PerPage:      perPage,
		Total:        total,
		TotalPages:   totalPages,
		Transactions: transactions,
	}, nil
}

func (s *TransactionService) Statistics(ctx context.Context, month int) (*model.Statistics, error) {
	return s.repo.Statistics(ctx, month)
}

// BarChart always returns all ten price ranges, including empty ones.
func (s *TransactionService) BarChart(ctx context.Context, month int) ([]model.PriceRangeCount, error) {
	counts, err := s.repo.PriceBucketCounts(ctx, month, priceBucketWidth, priceBucketCount)
	if err != nil {
		return nil, err
	}

	ranges := priceRanges()
	for k := range ranges {
		ranges[k].Count = counts[k]
	}
	return ranges, nil
}

func (s *TransactionService) PieChart(ctx context.Context, month int) ([]model.CategoryCount, error) {
	return s.repo.CategoryCounts(ctx, month)
}

// AllData runs the four dashboard queries for the same month concurrently.
// The first failure cancels the others and is returned.
func (s *TransactionService) AllData(ctx context.Context, q model.TransactionQuery) (*model.AllData, error) {
	var data model.AllData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.ListTransactions(ctx, q)
		data.Transactions = page
		return err
	})
	g.Go(func() error {
		stats, err := s.Statistics(ctx, q.Month)
		data.Statistics = stats
		return err
	})
	g.Go(func() error {
		bars, err := s.BarChart(ctx, q.Month)
		data.BarChart = bars
		return err
	})
	g.Go(func() error {
		pie, err := s.PieChart(ctx, q.Month)
		data.PieChart = pie
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
