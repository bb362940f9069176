package store

import (
	"sort"

	"github.com/jafarshop/shopfront/internal/domain"
)

// Selectors are pure projections of the global state. Each returns a copy so
// callers can never mutate the store through the result.

// AvailableProducts returns every product in the catalog.
func (s *Store) AvailableProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.available))
	copy(out, s.available)
	return out
}

// UserProducts returns the products owned by the configured user.
func (s *Store) UserProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.user))
	copy(out, s.user)
	return out
}

// UserProduct looks up one of the user's products by ID.
func (s *Store) UserProduct(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.user {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// CartLines returns the cart contents sorted ascending by product ID.
func (s *Store) CartLines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartLine, 0, len(s.cart))
	for _, line := range s.cart {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

// CartTotal returns the current cart total.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartTotal
}

// Orders returns the fetched order history.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
