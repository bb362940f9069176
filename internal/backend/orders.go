package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jafarshop/shopfront/internal/domain"
)

// CartLinePayload is the wire representation of one order line
type CartLinePayload struct {
	ProductID    string  `json:"product_id"`
	ProductTitle string  `json:"product_title"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	Sum          float64 `json:"sum"`
}

// OrderPayload is the wire representation of an order
type OrderPayload struct {
	ID          string            `json:"id"`
	Items       []CartLinePayload `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
}

// CreateOrderRequest is the order submission payload
type CreateOrderRequest struct {
	Items       []CartLinePayload `json:"items"`
	TotalAmount float64           `json:"total_amount"`
}

func lineToPayload(l domain.CartLine) CartLinePayload {
	return CartLinePayload{
		ProductID:    l.ProductID,
		ProductTitle: l.ProductTitle,
		ProductPrice: l.ProductPrice,
		Quantity:     l.Quantity,
		Sum:          l.Sum,
	}
}

func (p OrderPayload) toDomain() domain.Order {
	items := make([]domain.CartLine, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, domain.CartLine{
			ProductID:    it.ProductID,
			ProductTitle: it.ProductTitle,
			ProductPrice: it.ProductPrice,
			Quantity:     it.Quantity,
			Sum:          it.Sum,
		})
	}
	return domain.Order{
		ID:          p.ID,
		Items:       items,
		TotalAmount: p.TotalAmount,
		Date:        p.CreatedAt,
	}
}

// FetchOrders retrieves the user's order history.
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var payload []OrderPayload
	if err := c.do(ctx, http.MethodGet, "/v1/orders", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(payload))
	for _, o := range payload {
		orders = append(orders, o.toDomain())
	}
	return orders, nil
}

// CreateOrder submits the cart snapshot as a new order.
func (c *Client) CreateOrder(ctx context.Context, items []domain.CartLine, total float64) (domain.Order, error) {
	req := CreateOrderRequest{
		Items:       make([]CartLinePayload, 0, len(items)),
		TotalAmount: total,
	}
	for _, l := range items {
		req.Items = append(req.Items, lineToPayload(l))
	}

	var payload OrderPayload
	if err := c.do(ctx, http.MethodPost, "/v1/orders", req, &payload); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return payload.toDomain(), nil
}
