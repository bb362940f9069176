package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/config"
	"github.com/jafarshop/shopfront/internal/domain"
	"github.com/jafarshop/shopfront/pkg/errors"
)

// NewConnection opens a Postgres connection for the devserver catalog.
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Catalog persists the devserver's products and orders in Postgres.
type Catalog struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatalog creates a Postgres-backed catalog.
func NewCatalog(db *sql.DB, logger *zap.Logger) *Catalog {
	return &Catalog{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the catalog tables if they do not exist yet.
func (c *Catalog) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			total_amount DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id),
			product_id TEXT NOT NULL,
			product_title TEXT NOT NULL,
			product_price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL,
			sum DOUBLE PRECISION NOT NULL
		);
	`
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (c *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, owner_id, title, description, image_url, price
		FROM products
		ORDER BY created_at
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		c.logger.Error("Failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ImageURL, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (c *Catalog) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	query := `
		SELECT id, owner_id, title, description, image_url, price
		FROM products
		WHERE id = $1
	`

	var p domain.Product
	err := c.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ImageURL, &p.Price,
	)
	if err == sql.ErrNoRows {
		return domain.Product{}, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	if err != nil {
		c.logger.Error("Failed to get product", zap.String("product_id", id), zap.Error(err))
		return domain.Product{}, err
	}
	return p, nil
}

func (c *Catalog) InsertProduct(ctx context.Context, p domain.Product) error {
	query := `
		INSERT INTO products (id, owner_id, title, description, image_url, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := c.db.ExecContext(ctx, query, p.ID, p.OwnerID, p.Title, p.Description, p.ImageURL, p.Price)
	if err != nil {
		c.logger.Error("Failed to insert product", zap.Error(err))
		return err
	}
	return nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, p domain.Product) error {
	query := `
		UPDATE products
		SET title = $2, description = $3, image_url = $4
		WHERE id = $1
	`

	res, err := c.db.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.ImageURL)
	if err != nil {
		c.logger.Error("Failed to update product", zap.String("product_id", p.ID), zap.Error(err))
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: p.ID}
	}
	return nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		c.logger.Error("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: id}
	}
	return nil
}

func (c *Catalog) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `
		SELECT id, total_amount, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := c.db.QueryContext(ctx, query, userID)
	if err != nil {
		c.logger.Error("Failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.TotalAmount, &o.Date); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := c.listOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (c *Catalog) listOrderItems(ctx context.Context, orderID string) ([]domain.CartLine, error) {
	query := `
		SELECT product_id, product_title, product_price, quantity, sum
		FROM order_items
		WHERE order_id = $1
	`

	rows, err := c.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartLine, 0)
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.ProductID, &l.ProductTitle, &l.ProductPrice, &l.Quantity, &l.Sum); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (c *Catalog) InsertOrder(ctx context.Context, userID string, o domain.Order) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, total_amount, created_at) VALUES ($1, $2, $3, $4)`,
		o.ID, userID, o.TotalAmount, o.Date,
	)
	if err != nil {
		c.logger.Error("Failed to insert order", zap.Error(err))
		return err
	}

	for _, l := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, product_title, product_price, quantity, sum)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID, l.ProductID, l.ProductTitle, l.ProductPrice, l.Quantity, l.Sum,
		)
		if err != nil {
			c.logger.Error("Failed to insert order item", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}
