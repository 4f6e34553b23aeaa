package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ridloal/product-transactions/internal/platform/database"
	"github.com/ridloal/product-transactions/internal/platform/logger"
	"github.com/ridloal/product-transactions/internal/transaction/domain"
)

type TransactionRepository interface {
	EnsureSchema(ctx context.Context) error
	CountProducts(ctx context.Context) (int64, error)
	CreateProduct(ctx context.Context, p *domain.Product) error

	ListTransactions(ctx context.Context, q domain.ListQuery) ([]domain.Product, error)
	CountTransactions(ctx context.Context, q domain.ListQuery) (int64, error)
	GetStatistics(ctx context.Context, monthKey string) (*domain.Statistics, error)
	GetPriceRangeCounts(ctx context.Context, monthKey string) ([]domain.PriceRangeCount, error)
	GetCategoryCounts(ctx context.Context, monthKey string) ([]domain.CategoryCount, error)

	Ping(ctx context.Context) error
}

const productColumns = `id, title, description, price, category, dateOfSale, sold`

// monthFilter compares the two-digit month of an ISO date string ("2021-11-27T...").
const monthFilter = `substr(dateOfSale, 6, 2) = ?`

const searchFilter = `(
	LOWER(title) LIKE LOWER(?) OR
	LOWER(description) LIKE LOWER(?) OR
	CAST(price AS TEXT) LIKE ?
)`

var schemaByDriver = map[string]string{
	database.DriverSQLite: `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			title TEXT,
			description TEXT,
			price REAL,
			category TEXT,
			dateOfSale TEXT,
			sold INTEGER
		)`,
	database.DriverPostgres: `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			title TEXT,
			description TEXT,
			price DOUBLE PRECISION,
			category TEXT,
			dateOfSale TEXT,
			sold INTEGER
		)`,
}

type sqlTransactionRepository struct {
	db     *sql.DB
	driver string
}

func NewSQLTransactionRepository(db *sql.DB, driver string) TransactionRepository {
	return &sqlTransactionRepository{db: db, driver: driver}
}

func (r *sqlTransactionRepository) bind(query string) string {
	return database.Rebind(r.driver, query)
}

func (r *sqlTransactionRepository) EnsureSchema(ctx context.Context) error {
	ddl, ok := schemaByDriver[r.driver]
	if !ok {
		return fmt.Errorf("no products schema for driver %q", r.driver)
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		logger.Error("EnsureSchema: create table failed", err)
		return err
	}
	return nil
}

func (r *sqlTransactionRepository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		logger.Error("CountProducts: query failed", err)
		return 0, err
	}
	return n, nil
}

func (r *sqlTransactionRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	query := r.bind(`INSERT INTO products (title, description, price, category, dateOfSale, sold)
              VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowContext(ctx, query, p.Title, p.Description, p.Price, p.Category, p.DateOfSale, int(p.Sold)).
		Scan(&p.ID)
	if err != nil {
		logger.Error("CreateProduct: failed to insert product %q", err, p.Title)
		return err
	}
	return nil
}

func searchArgs(search string) []interface{} {
	pattern := "%" + search + "%"
	return []interface{}{pattern, pattern, pattern}
}

func (r *sqlTransactionRepository) ListTransactions(ctx context.Context, q domain.ListQuery) ([]domain.Product, error) {
	offset, ok := q.Offset()
	if !ok {
		return []domain.Product{}, nil
	}

	query := r.bind(`SELECT ` + productColumns + ` FROM products
		WHERE ` + monthFilter + ` AND ` + searchFilter + `
		ORDER BY id ASC
		LIMIT ? OFFSET ?`)
	args := append([]interface{}{q.MonthKey()}, searchArgs(q.Search)...)
	args = append(args, q.PerPage, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("ListTransactions: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Category, &p.DateOfSale, &p.Sold); err != nil {
			logger.Error("ListTransactions: scan failed", err)
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListTransactions: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *sqlTransactionRepository) CountTransactions(ctx context.Context, q domain.ListQuery) (int64, error) {
	query := r.bind(`SELECT COUNT(*) FROM products WHERE ` + monthFilter + ` AND ` + searchFilter)
	args := append([]interface{}{q.MonthKey()}, searchArgs(q.Search)...)

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.Error("CountTransactions: query failed", err)
		return 0, err
	}
	return n, nil
}

func (r *sqlTransactionRepository) GetStatistics(ctx context.Context, monthKey string) (*domain.Statistics, error) {
	query := r.bind(`SELECT
			COALESCE(SUM(price), 0),
			COUNT(*),
			COALESCE(SUM(CASE WHEN sold = 0 THEN 1 ELSE 0 END), 0)
		FROM products
		WHERE ` + monthFilter)

	var s domain.Statistics
	err := r.db.QueryRowContext(ctx, query, monthKey).Scan(&s.TotalSaleAmount, &s.TotalSoldItems, &s.TotalNotSoldItems)
	if err != nil {
		logger.Error("GetStatistics: query failed", err)
		return nil, err
	}
	return &s, nil
}

func (r *sqlTransactionRepository) GetPriceRangeCounts(ctx context.Context, monthKey string) ([]domain.PriceRangeCount, error) {
	query := r.bind(`SELECT ` + domain.BucketCaseSQL("price") + ` AS priceRange, COUNT(*) AS itemCount
		FROM products
		WHERE ` + monthFilter + `
		GROUP BY priceRange`)

	rows, err := r.db.QueryContext(ctx, query, monthKey)
	if err != nil {
		logger.Error("GetPriceRangeCounts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	counts := []domain.PriceRangeCount{}
	for rows.Next() {
		var c domain.PriceRangeCount
		if err := rows.Scan(&c.PriceRange, &c.ItemCount); err != nil {
			logger.Error("GetPriceRangeCounts: scan failed", err)
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *sqlTransactionRepository) GetCategoryCounts(ctx context.Context, monthKey string) ([]domain.CategoryCount, error) {
	query := r.bind(`SELECT category, COUNT(*) FROM products
		WHERE ` + monthFilter + `
		GROUP BY category
		ORDER BY category ASC`)

	rows, err := r.db.QueryContext(ctx, query, monthKey)
	if err != nil {
		logger.Error("GetCategoryCounts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	counts := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.ItemCount); err != nil {
			logger.Error("GetCategoryCounts: scan failed", err)
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *sqlTransactionRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
