package screens

import (
	"context"

	"github.com/jafarshop/shopfront/internal/domain"
)

// Screen names used for navigation.
const (
	ScreenProductDetail = "ProductDetail"
	ScreenEditProduct   = "EditProduct"
	ScreenUserProducts  = "UserProducts"
	ScreenCart          = "Cart"
)

// Alert option labels.
const (
	OptionYes  = "Yes"
	OptionNo   = "No"
	OptionOkay = "Okay"
)

// Selectors is the read-only projection of the global store consumed by the
// screen controllers. Satisfied by *store.Store.
type Selectors interface {
	AvailableProducts() []domain.Product
	UserProducts() []domain.Product
	UserProduct(id string) (domain.Product, bool)
	CartLines() []domain.CartLine
	CartTotal() float64
	Orders() []domain.Order
}

// Dispatcher is the asynchronous mutation surface of the global store.
// Every operation runs to completion or returns an error with a
// human-readable message. Satisfied by *store.Store.
type Dispatcher interface {
	FetchProducts(ctx context.Context) error
	CreateProduct(ctx context.Context, title, description, imageURL string, price float64) error
	UpdateProduct(ctx context.Context, id, title, description, imageURL string) error
	DeleteProduct(ctx context.Context, id string) error
	AddToCart(ctx context.Context, product domain.Product) error
	RemoveFromCart(ctx context.Context, productID string) error
	FetchOrders(ctx context.Context) error
	AddOrder(ctx context.Context, items []domain.CartLine, total float64) error
}

// Unsubscribe removes a previously registered listener.
type Unsubscribe func()

// Navigator is the routing chrome the controllers call into. Its semantics
// are owned by the hosting application.
type Navigator interface {
	NavigateTo(screen string, params map[string]string)
	GoBack()
	SetParams(params map[string]string)
	AddRefocusListener(fn func()) Unsubscribe
}

// Alerter presents a blocking modal choice and returns the selected option.
type Alerter interface {
	Confirm(title, message string, options []string) string
}

// RenderMode is the resolved render output of a screen.
type RenderMode string

const (
	RenderList    RenderMode = "LIST"
	RenderEmpty   RenderMode = "EMPTY"
	RenderSpinner RenderMode = "SPINNER"
	RenderError   RenderMode = "ERROR"
)

// resolveRender applies the render precedence shared by the list screens:
// error beats everything, a full-screen load beats content, an empty result
// shows the not-found message. A refreshing screen keeps its content visible.
func resolveRender(status domain.ScreenStatus, itemCount int) RenderMode {
	switch {
	case status == domain.StatusError:
		return RenderError
	case status == domain.StatusLoading || status == domain.StatusIdle:
		return RenderSpinner
	case itemCount == 0:
		return RenderEmpty
	default:
		return RenderList
	}
}
