package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-transactions-api/datasource"
	"go-transactions-api/logger"
	"go-transactions-api/model"
	"go-transactions-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrSeedInProgress = errors.New("a seed is already in progress")
	ErrEmptyDataset   = errors.New("seed source returned no transactions")
)

// SeedService replaces the stored dataset with the one from the remote source.
type SeedService struct {
	db     *sql.DB
	repo   repository.ITransactionRepository
	source datasource.Source
	locker SeedLocker
}

func NewSeedService(db *sql.DB, repo repository.ITransactionRepository, source datasource.Source, locker SeedLocker) *SeedService {
	return &SeedService{
		db:     db,
		repo:   repo,
		source: source,
		locker: locker,
	}
}

// Seed fetches the dataset first and only then swaps it in, in a single SQL
// transaction, so a failed fetch or insert leaves the previous data in place.
func (s *SeedService) Seed(ctx context.Context) (*model.SeedResult, error) {
	release, ok, err := s.locker.TryLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not acquire seed lock: %w", err)
	}
	if !ok {
		return nil, ErrSeedInProgress
	}
	defer release()

	logger.Log.Info("Starting seed process")

	transactions, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, ErrEmptyDataset
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleted, err := s.repo.DeleteAll(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("could not delete existing transactions: %w", err)
	}

	for _, t := range transactions {
		if err := s.repo.Insert(ctx, tx, t); err != nil {
			return nil, fmt.Errorf("could not insert transaction %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"deleted":  deleted,
		"inserted": len(transactions),
	}).Info("Seed completed successfully")

	return &model.SeedResult{
		Message:  "Database seeded successfully",
		Deleted:  deleted,
		Inserted: len(transactions),
	}, nil
}
