package devserver

import (
	"context"
	"sync"

	"github.com/jafarshop/shopfront/internal/domain"
	"github.com/jafarshop/shopfront/pkg/errors"
)

// Catalog is the storage behind the devserver. The in-memory implementation
// is the default; a Postgres-backed one lives in the postgres subpackage.
type Catalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	InsertProduct(ctx context.Context, p domain.Product) error
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
	InsertOrder(ctx context.Context, userID string, o domain.Order) error
}

// MemoryCatalog keeps everything in process memory, preserving insertion
// order.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []domain.Product
	orders   map[string][]domain.Order
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		orders: make(map[string][]domain.Order),
	}
}

func (c *MemoryCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *MemoryCatalog) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, &errors.ErrNotFound{Resource: "product", ID: id}
}

func (c *MemoryCatalog) InsertProduct(ctx context.Context, p domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
	return nil
}

func (c *MemoryCatalog) UpdateProduct(ctx context.Context, p domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "product", ID: p.ID}
}

func (c *MemoryCatalog) DeleteProduct(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "product", ID: id}
}

func (c *MemoryCatalog) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	orders := c.orders[userID]
	out := make([]domain.Order, len(orders))
	copy(out, orders)
	return out, nil
}

func (c *MemoryCatalog) InsertOrder(ctx context.Context, userID string, o domain.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[userID] = append(c.orders[userID], o)
	return nil
}
