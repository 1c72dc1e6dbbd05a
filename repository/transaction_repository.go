package repository

import (
	"context"
	"database/sql"
	"fmt"
	"go-transactions-api/logger"
	"go-transactions-api/model"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction database operations.
type ITransactionRepository interface {
	DeleteAll(ctx context.Context, tx *sql.Tx) (int64, error)
	Insert(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error
	List(ctx context.Context, filter model.TransactionFilter) ([]*model.Transaction, error)
	Count(ctx context.Context, filter model.TransactionFilter) (int, error)
	Statistics(ctx context.Context, month int) (*model.Statistics, error)
	PriceBucketCounts(ctx context.Context, month int, width decimal.Decimal, buckets int) (map[int]int, error)
	CategoryCounts(ctx context.Context, month int) ([]model.CategoryCount, error)
}

// TransactionRepository implements ITransactionRepository on PostgreSQL.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

const transactionColumns = `id, title, description, price, date_of_sale, category, sold, image`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildFilter returns the WHERE clause shared by every read query together
// with its positional arguments. Month compares the UTC calendar month of
// date_of_sale, in any year.
func buildFilter(month int, search string) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if month > 0 {
		args = append(args, month)
		clauses = append(clauses, fmt.Sprintf("EXTRACT(MONTH FROM date_of_sale AT TIME ZONE 'UTC') = $%d", len(args)))
	}

	if search = strings.TrimSpace(search); search != "" {
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
		n := len(args)
		cond := fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d", n, n)
		if price, err := decimal.NewFromString(search); err == nil {
			args = append(args, price)
			cond += fmt.Sprintf(" OR price = $%d", len(args))
		}
		clauses = append(clauses, cond+")")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *TransactionRepository) DeleteAll(ctx context.Context, tx *sql.Tx) (int64, error) {
	log := logger.Log
	log.Info("Executing query to delete all transactions")

	res, err := tx.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete all transactions query")
		return 0, err
	}
	return res.RowsAffected()
}

func (r *TransactionRepository) Insert(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := tx.ExecContext(ctx, query,
		transaction.ID, transaction.Title, transaction.Description, transaction.Price,
		transaction.DateOfSale, transaction.Category, transaction.Sold, transaction.Image)
	if err != nil {
		logger.Log.WithError(err).WithField("transaction_id", transaction.ID).Error("Failed to execute insert transaction query")
		return err
	}
	return nil
}

// List returns one page of transactions matching the filter, ordered by id.
func (r *TransactionRepository) List(ctx context.Context, filter model.TransactionFilter) ([]*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"month":  filter.Month,
		"search": filter.Search,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
	log.Debug("Executing query to list transactions")

	where, args := buildFilter(filter.Month, filter.Search)
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM transactions%s ORDER BY id LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute list transactions query")
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*model.Transaction, 0, filter.Limit)
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.DateOfSale, &t.Category, &t.Sold, &t.Image); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Error("Failed to iterate transaction rows")
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepository) Count(ctx context.Context, filter model.TransactionFilter) (int, error) {
	where, args := buildFilter(filter.Month, filter.Search)

	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total)
	if err != nil {
		logger.Log.WithError(err).WithField("month", filter.Month).Error("Failed to execute count transactions query")
		return 0, err
	}
	return total, nil
}

// Statistics sums the price of sold records and counts sold and unsold ones.
func (r *TransactionRepository) Statistics(ctx context.Context, month int) (*model.Statistics, error) {
	log := logger.Log.WithField("month", month)
	log.Debug("Executing query to compute statistics")

	where, args := buildFilter(month, "")
	query := `
		SELECT COALESCE(SUM(price) FILTER (WHERE sold), 0),
		       COUNT(*) FILTER (WHERE sold),
		       COUNT(*) FILTER (WHERE NOT sold)
		FROM transactions` + where

	stats := &model.Statistics{}
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&stats.TotalSaleAmount, &stats.SoldItems, &stats.NotSoldItems); err != nil {
		log.WithError(err).Error("Failed to execute statistics query")
		return nil, err
	}
	return stats, nil
}

// PriceBucketCounts counts records per price bucket in one pass. Bucket k
// holds prices in (k*width, (k+1)*width]; everything at or below width falls
// into bucket 0 and everything above the last boundary into buckets-1.
// Buckets without records are absent from the result.
func (r *TransactionRepository) PriceBucketCounts(ctx context.Context, month int, width decimal.Decimal, buckets int) (map[int]int, error) {
	log := logger.Log.WithFields(logrus.Fields{"month": month, "buckets": buckets})
	log.Debug("Executing query to count transactions per price bucket")

	where, args := buildFilter(month, "")
	args = append(args, width, buckets)
	query := fmt.Sprintf(`
		SELECT LEAST(GREATEST(CEIL(price / $%d::numeric) - 1, 0), $%d::int - 1)::int AS bucket, COUNT(*)
		FROM transactions%s
		GROUP BY bucket`, len(args)-1, len(args), where)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute price bucket query")
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int, buckets)
	for rows.Next() {
		var bucket, count int
		if err := rows.Scan(&bucket, &count); err != nil {
			log.WithError(err).Error("Failed to scan price bucket row")
			return nil, err
		}
		counts[bucket] = count
	}
	return counts, rows.Err()
}

func (r *TransactionRepository) CategoryCounts(ctx context.Context, month int) ([]model.CategoryCount, error) {
	log := logger.Log.WithField("month", month)
	log.Debug("Executing query to count transactions per category")

	where, args := buildFilter(month, "")
	query := `SELECT category, COUNT(*) FROM transactions` + where + ` GROUP BY category ORDER BY category`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute category count query")
		return nil, err
	}
	defer rows.Close()

	counts := []model.CategoryCount{}
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			log.WithError(err).Error("Failed to scan category count row")
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
