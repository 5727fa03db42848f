package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"order-desk/internal/model"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	// NUMERIC columns must scan into decimal.Decimal, same as the server pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			category VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS promotions (
			id VARCHAR(50) PRIMARY KEY,
			code VARCHAR(50) NOT NULL UNIQUE,
			kind VARCHAR(20) NOT NULL,
			value NUMERIC(10, 2) NOT NULL DEFAULT 0 CHECK (value >= 0),
			description VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(20) NOT NULL,
			payment_method VARCHAR(10) NOT NULL,
			cash_amount NUMERIC(10, 2) NOT NULL DEFAULT 0,
			total_amount NUMERIC(10, 2) NOT NULL,
			change_amount NUMERIC(10, 2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			unit_price NUMERIC(10, 2) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			promotion_code VARCHAR(50) NOT NULL DEFAULT 'NONE',
			line_price NUMERIC(10, 2) NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts the test products and promotions into the database.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := []model.Product{
		{ID: "prod-laptop", Name: "Laptop", Price: decimal.NewFromInt(1200), Category: "Electronics"},
		{ID: "prod-smartphone", Name: "Smartphone", Price: decimal.NewFromInt(800), Category: "Electronics"},
		{ID: "prod-headphones", Name: "Headphones", Price: decimal.NewFromInt(150), Category: "Accessories"},
		{ID: "prod-monitor", Name: "Monitor", Price: decimal.NewFromInt(300), Category: "Electronics"},
		{ID: "prod-keyboard", Name: "Keyboard", Price: decimal.NewFromInt(80), Category: "Accessories"},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, price, category) VALUES ($1, $2, $3, $4)",
			p.ID, p.Name, p.Price, p.Category,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.ID, err)
		}
	}

	promotions := []model.Promotion{
		{ID: "promo-none", Code: model.NoPromotionCode, Kind: model.PromotionNone, Value: decimal.Zero, Description: "No discount"},
		{ID: "promo-save10", Code: "SAVE10", Kind: model.PromotionPercentage, Value: decimal.NewFromInt(10), Description: "10% off"},
		{ID: "promo-save20", Code: "SAVE20", Kind: model.PromotionPercentage, Value: decimal.NewFromInt(20), Description: "20% off"},
		{ID: "promo-flat50", Code: "FLAT50", Kind: model.PromotionFixed, Value: decimal.NewFromInt(50), Description: "$50 off"},
		{ID: "promo-flat100", Code: "FLAT100", Kind: model.PromotionFixed, Value: decimal.NewFromInt(100), Description: "$100 off"},
	}

	for _, p := range promotions {
		_, err := pool.Exec(ctx,
			"INSERT INTO promotions (id, code, kind, value, description) VALUES ($1, $2, $3, $4, $5)",
			p.ID, p.Code, string(p.Kind), p.Value, p.Description,
		)
		if err != nil {
			t.Fatalf("failed to seed promotion %s: %v", p.Code, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "promotions", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
