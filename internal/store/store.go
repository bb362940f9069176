package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
	"github.com/jafarshop/shopfront/internal/pkg/clock"
)

// Gateway is the remote backend surface the store dispatches against.
// Satisfied by *backend.Client.
type Gateway interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, title, description, imageURL string, price float64) (domain.Product, error)
	UpdateProduct(ctx context.Context, id, title, description, imageURL string) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, items []domain.CartLine, total float64) (domain.Order, error)
}

// Store holds the global shop state shared by every screen. All mutation
// flows through the dispatch operations in actions.go; screens read it only
// through the selectors.
type Store struct {
	mu      sync.RWMutex
	gateway Gateway
	userID  string
	clock   clock.Clock
	logger  *zap.Logger

	available []domain.Product
	user      []domain.Product
	cart      map[string]domain.CartLine
	cartTotal float64
	orders    []domain.Order
}

// New creates an empty store dispatching against the given gateway.
// Products whose owner matches userID form the user-products projection.
func New(gateway Gateway, userID string, clk clock.Clock, logger *zap.Logger) *Store {
	return &Store{
		gateway: gateway,
		userID:  userID,
		clock:   clk,
		logger:  logger,
		cart:    make(map[string]domain.CartLine),
	}
}
