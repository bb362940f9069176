package screens

import (
	"context"
	"sync"

	"github.com/jafarshop/shopfront/internal/domain"
)

// fakeSelectors is a canned Selectors implementation.
type fakeSelectors struct {
	available []domain.Product
	user      []domain.Product
	lines     []domain.CartLine
	total     float64
	orders    []domain.Order
}

func (f *fakeSelectors) AvailableProducts() []domain.Product { return f.available }
func (f *fakeSelectors) UserProducts() []domain.Product      { return f.user }
func (f *fakeSelectors) CartLines() []domain.CartLine        { return f.lines }
func (f *fakeSelectors) CartTotal() float64                  { return f.total }
func (f *fakeSelectors) Orders() []domain.Order              { return f.orders }

func (f *fakeSelectors) UserProduct(id string) (domain.Product, bool) {
	for _, p := range f.user {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

type createCall struct {
	title, description, imageURL string
	price                        float64
}

type updateCall struct {
	id, title, description, imageURL string
}

type orderCall struct {
	items []domain.CartLine
	total float64
}

// fakeDispatcher records every dispatch and fails on demand.
type fakeDispatcher struct {
	mu sync.Mutex

	fetchProductsErr error
	fetchOrdersErr   error
	createErr        error
	updateErr        error
	deleteErr        error
	addOrderErr      error

	fetchProducts int
	fetchOrders   int
	created       []createCall
	updated       []updateCall
	deleted       []string
	addedToCart   []string
	removed       []string
	orders        []orderCall
}

func (f *fakeDispatcher) FetchProducts(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchProducts++
	return f.fetchProductsErr
}

func (f *fakeDispatcher) FetchOrders(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchOrders++
	return f.fetchOrdersErr
}

func (f *fakeDispatcher) CreateProduct(ctx context.Context, title, description, imageURL string, price float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, createCall{title, description, imageURL, price})
	return nil
}

func (f *fakeDispatcher) UpdateProduct(ctx context.Context, id, title, description, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, updateCall{id, title, description, imageURL})
	return nil
}

func (f *fakeDispatcher) DeleteProduct(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeDispatcher) AddToCart(ctx context.Context, product domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addedToCart = append(f.addedToCart, product.ID)
	return nil
}

func (f *fakeDispatcher) RemoveFromCart(ctx context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, productID)
	return nil
}

func (f *fakeDispatcher) AddOrder(ctx context.Context, items []domain.CartLine, total float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addOrderErr != nil {
		return f.addOrderErr
	}
	f.orders = append(f.orders, orderCall{items, total})
	return nil
}

type navCall struct {
	screen string
	params map[string]string
}

// fakeNavigator records navigation and lets tests fire re-focus events.
type fakeNavigator struct {
	mu           sync.Mutex
	navigated    []navCall
	wentBack     int
	setParams    []map[string]string
	refocus      func()
	unsubscribed bool
}

func (f *fakeNavigator) NavigateTo(screen string, params map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.navigated = append(f.navigated, navCall{screen, params})
}

func (f *fakeNavigator) GoBack() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wentBack++
}

func (f *fakeNavigator) SetParams(params map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setParams = append(f.setParams, params)
}

func (f *fakeNavigator) AddRefocusListener(fn func()) Unsubscribe {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refocus = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unsubscribed = true
	}
}

// Refocus simulates the user navigating back to the screen.
func (f *fakeNavigator) Refocus() {
	f.mu.Lock()
	fn := f.refocus
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (f *fakeNavigator) goBackCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wentBack
}

type alertCall struct {
	title   string
	message string
	options []string
}

// fakeAlerter answers every prompt with a fixed option.
type fakeAlerter struct {
	mu     sync.Mutex
	answer string
	calls  []alertCall
}

func (f *fakeAlerter) Confirm(title, message string, options []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, alertCall{title, message, options})
	if f.answer != "" {
		return f.answer
	}
	return options[len(options)-1]
}
