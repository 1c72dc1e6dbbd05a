package repository

import (
	"context"
	"database/sql"
	"go-transactions-api/config"
	"go-transactions-api/db"
	"go-transactions-api/logger"
	"go-transactions-api/model"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to TEST_DATABASE_DSN, or to the configured database
// with a "_test" suffix, and applies the migrations.
func openTestDB() *sql.DB {
	if err := config.LoadConfig("../"); err != nil {
		logger.Log.WithError(err).Warn("Could not load config, skipping integration tests")
		return nil
	}

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		config.AppConfig.Database.Name += "_test"
		dsn = db.DSN(true)
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Log.WithError(err).Warn("Could not open test database, skipping integration tests")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		logger.Log.WithError(err).Warn("Test database not reachable, skipping integration tests")
		return nil
	}

	if err := db.RunMigrations(dsn); err != nil {
		conn.Close()
		logger.Log.WithError(err).Warn("Could not migrate test database, skipping integration tests")
		return nil
	}
	return conn
}

// --- Test Helper Functions ---

func integrationRepo(t *testing.T) *TransactionRepository {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not reachable")
	}
	_, err := testDB.Exec(`TRUNCATE transactions`)
	require.NoError(t, err)
	return NewTransactionRepository(testDB)
}

func insertTransactions(t *testing.T, repo *TransactionRepository, transactions []*model.Transaction) {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.DB.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	for _, tr := range transactions {
		require.NoError(t, repo.Insert(ctx, tx, tr))
	}
	require.NoError(t, tx.Commit())
}

// boundaryTransactions returns rows sitting on the price bucket edges. Ids 1-6
// fall in March when read in UTC, id 7 in April.
func boundaryTransactions() []*model.Transaction {
	berlin := time.FixedZone("UTC+2", 2*60*60)
	newYork := time.FixedZone("UTC-5", -5*60*60)

	return []*model.Transaction{
		{ID: 1, Title: "Coffee maker", Price: decimal.Zero, Sold: true, Category: "electronics",
			DateOfSale: time.Date(2021, time.March, 31, 23, 30, 0, 0, time.UTC)},
		{ID: 2, Title: "Refurbished cable", Price: decimal.NewFromInt(-5), Sold: false, Category: "electronics",
			DateOfSale: time.Date(2021, time.March, 15, 10, 0, 0, 0, time.UTC)},
		{ID: 3, Title: "Silver ring", Price: decimal.NewFromInt(100), Sold: true, Category: "jewelery",
			DateOfSale: time.Date(2022, time.April, 1, 0, 30, 0, 0, berlin)},
		{ID: 4, Title: "Gold chain", Price: decimal.RequireFromString("100.01"), Sold: false, Category: "jewelery",
			DateOfSale: time.Date(2021, time.February, 28, 23, 59, 59, 0, newYork)},
		{ID: 5, Title: "Item 50 pack", Price: decimal.NewFromInt(900), Sold: true, Category: "men's clothing",
			DateOfSale: time.Date(2021, time.March, 10, 12, 0, 0, 0, time.UTC)},
		{ID: 6, Title: "50%_off sale", Price: decimal.RequireFromString("900.01"), Sold: true, Category: "women's clothing",
			DateOfSale: time.Date(2021, time.March, 11, 12, 0, 0, 0, time.UTC)},
		{ID: 7, Title: "Television", Price: decimal.NewFromInt(5000), Sold: true, Category: "electronics",
			DateOfSale: time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestTransactionRepositoryIntegration_PriceBucketCounts(t *testing.T) {
	repo := integrationRepo(t)
	insertTransactions(t, repo, boundaryTransactions())
	ctx := context.Background()
	width := decimal.NewFromInt(100)

	t.Run("march", func(t *testing.T) {
		counts, err := repo.PriceBucketCounts(ctx, 3, width, 10)

		require.NoError(t, err)
		assert.Equal(t, map[int]int{0: 3, 1: 1, 8: 1, 9: 1}, counts)
	})

	t.Run("all months", func(t *testing.T) {
		counts, err := repo.PriceBucketCounts(ctx, 0, width, 10)

		require.NoError(t, err)
		assert.Equal(t, map[int]int{0: 3, 1: 1, 8: 1, 9: 2}, counts)
	})
}

func TestTransactionRepositoryIntegration_Statistics(t *testing.T) {
	repo := integrationRepo(t)
	insertTransactions(t, repo, boundaryTransactions())
	ctx := context.Background()

	stats, err := repo.Statistics(ctx, 3)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1900.01").Equal(stats.TotalSaleAmount), "got %s", stats.TotalSaleAmount)
	assert.Equal(t, 4, stats.SoldItems)
	assert.Equal(t, 2, stats.NotSoldItems)

	stats, err = repo.Statistics(ctx, 0)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("6900.01").Equal(stats.TotalSaleAmount), "got %s", stats.TotalSaleAmount)
	assert.Equal(t, 5, stats.SoldItems)

	stats, err = repo.Statistics(ctx, 7)
	require.NoError(t, err)
	assert.True(t, stats.TotalSaleAmount.IsZero())
	assert.Zero(t, stats.SoldItems)
	assert.Zero(t, stats.NotSoldItems)
}

func TestTransactionRepositoryIntegration_Count(t *testing.T) {
	repo := integrationRepo(t)
	insertTransactions(t, repo, boundaryTransactions())
	ctx := context.Background()

	tests := []struct {
		name   string
		filter model.TransactionFilter
		want   int
	}{
		{"all", model.TransactionFilter{}, 7},
		{"march in utc", model.TransactionFilter{Month: 3}, 6},
		{"april in utc", model.TransactionFilter{Month: 4}, 1},
		{"local february is march in utc", model.TransactionFilter{Month: 2}, 0},
		{"case-insensitive title", model.TransactionFilter{Search: "COFFEE"}, 1},
		{"percent is literal", model.TransactionFilter{Search: "50%"}, 1},
		{"underscore is literal", model.TransactionFilter{Search: "_off"}, 1},
		{"numeric search matches price", model.TransactionFilter{Search: "100"}, 1},
		{"numeric search with month", model.TransactionFilter{Search: "900.01", Month: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := repo.Count(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestTransactionRepositoryIntegration_CategoryCounts(t *testing.T) {
	repo := integrationRepo(t)
	insertTransactions(t, repo, boundaryTransactions())

	counts, err := repo.CategoryCounts(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []model.CategoryCount{
		{Category: "electronics", Count: 2},
		{Category: "jewelery", Count: 2},
		{Category: "men's clothing", Count: 1},
		{Category: "women's clothing", Count: 1},
	}, counts)
}

func TestTransactionRepositoryIntegration_ListAndDeleteAll(t *testing.T) {
	repo := integrationRepo(t)
	insertTransactions(t, repo, boundaryTransactions())
	ctx := context.Background()

	page, err := repo.List(ctx, model.TransactionFilter{Month: 3, Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].ID)
	assert.Equal(t, 4, page[1].ID)
	assert.True(t, decimal.RequireFromString("100.01").Equal(page[1].Price))
	assert.True(t, page[1].DateOfSale.Equal(time.Date(2021, time.March, 1, 4, 59, 59, 0, time.UTC)))

	tx, err := repo.DB.BeginTx(ctx, nil)
	require.NoError(t, err)
	deleted, err := repo.DeleteAll(ctx, tx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Equal(t, int64(7), deleted)

	total, err := repo.Count(ctx, model.TransactionFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}
