package screens

import (
	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// OrderView is one order prepared for rendering.
type OrderView struct {
	ID           string
	Items        []domain.CartLine
	TotalDisplay string
	ReadableDate string
}

// OrderListView is the render model for the order-history screen.
type OrderListView struct {
	Mode         RenderMode
	ErrorMessage string
	Refreshing   bool
	Orders       []OrderView
}

// OrderListController drives the order-history screen.
type OrderListController struct {
	*listController
	sel Selectors
}

// NewOrderList creates the controller for the order-history screen.
func NewOrderList(sel Selectors, disp Dispatcher, nav Navigator, logger *zap.Logger) *OrderListController {
	return &OrderListController{
		listController: newListController(disp.FetchOrders, nav, logger),
		sel:            sel,
	}
}

// View resolves the render output from the screen status and the order
// history.
func (c *OrderListController) View() OrderListView {
	status := c.Status()
	orders := c.sel.Orders()

	v := OrderListView{
		Mode:       resolveRender(status, len(orders)),
		Refreshing: status == domain.StatusRefreshing,
	}
	switch v.Mode {
	case RenderError:
		v.ErrorMessage = c.ErrorMessage()
	case RenderList:
		v.Orders = make([]OrderView, 0, len(orders))
		for _, o := range orders {
			v.Orders = append(v.Orders, OrderView{
				ID:           o.ID,
				Items:        o.Items,
				TotalDisplay: domain.FormatAmount(o.TotalAmount),
				ReadableDate: o.ReadableDate(),
			})
		}
	}
	return v
}
