package store

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// Dispatch operations. Each one calls the backend to completion, then applies
// the resulting state change under the store lock. From a screen's
// perspective every operation is atomic: it either succeeds or returns an
// error with a human-readable message.

// FetchProducts reloads the catalog and both product projections.
func (s *Store) FetchProducts(ctx context.Context) error {
	products, err := s.gateway.FetchProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch products", zap.Error(err))
		return err
	}

	user := make([]domain.Product, 0)
	for _, p := range products {
		if p.OwnerID == s.userID {
			user = append(user, p)
		}
	}

	s.mu.Lock()
	s.available = products
	s.user = user
	s.mu.Unlock()
	return nil
}

// CreateProduct creates a product owned by the current user.
func (s *Store) CreateProduct(ctx context.Context, title, description, imageURL string, price float64) error {
	created, err := s.gateway.CreateProduct(ctx, title, description, imageURL, price)
	if err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.available = append(s.available, created)
	s.user = append(s.user, created)
	s.mu.Unlock()
	return nil
}

// UpdateProduct updates an existing product. Price is never changed here.
func (s *Store) UpdateProduct(ctx context.Context, id, title, description, imageURL string) error {
	updated, err := s.gateway.UpdateProduct(ctx, id, title, description, imageURL)
	if err != nil {
		s.logger.Error("Failed to update product", zap.String("product_id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	replace(s.available, updated)
	replace(s.user, updated)
	s.mu.Unlock()
	return nil
}

// DeleteProduct removes a product from the catalog and, if present, from the
// cart.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.gateway.DeleteProduct(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.available = remove(s.available, id)
	s.user = remove(s.user, id)
	if line, ok := s.cart[id]; ok {
		s.cartTotal = roundAmount(s.cartTotal - line.Sum)
		delete(s.cart, id)
	}
	s.mu.Unlock()
	return nil
}

// AddToCart adds one unit of the product to the cart, creating the line or
// bumping its quantity.
func (s *Store) AddToCart(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart[product.ID]
	if ok {
		line.Quantity++
		line.Sum = roundAmount(line.Sum + product.Price)
	} else {
		line = domain.CartLine{
			ProductID:    product.ID,
			ProductTitle: product.Title,
			ProductPrice: product.Price,
			Quantity:     1,
			Sum:          product.Price,
		}
	}
	s.cart[product.ID] = line
	s.cartTotal = roundAmount(s.cartTotal + product.Price)
	return nil
}

// RemoveFromCart removes one unit of the product; a line at quantity 1 is
// deleted so quantities stay >= 1.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart[productID]
	if !ok {
		return nil
	}
	if line.Quantity > 1 {
		line.Quantity--
		line.Sum = roundAmount(line.Sum - line.ProductPrice)
		s.cart[productID] = line
	} else {
		delete(s.cart, productID)
	}
	s.cartTotal = roundAmount(s.cartTotal - line.ProductPrice)
	return nil
}

// FetchOrders reloads the order history.
func (s *Store) FetchOrders(ctx context.Context) error {
	orders, err := s.gateway.FetchOrders(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// AddOrder submits the given cart snapshot as a new order. On success the
// order is appended to the history and the cart is cleared.
func (s *Store) AddOrder(ctx context.Context, items []domain.CartLine, total float64) error {
	order, err := s.gateway.CreateOrder(ctx, items, total)
	if err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return err
	}
	if order.Date.IsZero() {
		order.Date = s.clock.Now()
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.cart = make(map[string]domain.CartLine)
	s.cartTotal = 0
	s.mu.Unlock()
	return nil
}

func replace(products []domain.Product, updated domain.Product) {
	for i, p := range products {
		if p.ID == updated.ID {
			products[i] = updated
			return
		}
	}
}

func remove(products []domain.Product, id string) []domain.Product {
	out := products[:0]
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// roundAmount keeps cart math at cent precision so repeated add/remove
// cycles cannot accumulate float drift.
func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
