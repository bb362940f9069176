package screens

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// CartView is the render model for the cart screen.
type CartView struct {
	Lines        []domain.CartLine
	TotalDisplay string
	CanOrder     bool
	Submitting   bool
	ErrorMessage string
}

// CartController drives the cart screen. Unlike the list screens it has no
// fetch on mount: the view is a pure projection of the cart selectors plus
// the submit state.
type CartController struct {
	mu      sync.Mutex
	status  domain.ScreenStatus
	errMsg  string
	sel     Selectors
	disp    Dispatcher
	alerter Alerter
	logger  *zap.Logger
}

// NewCart creates the controller for the cart screen.
func NewCart(sel Selectors, disp Dispatcher, alerter Alerter, logger *zap.Logger) *CartController {
	return &CartController{
		status:  domain.StatusIdle,
		sel:     sel,
		disp:    disp,
		alerter: alerter,
		logger:  logger,
	}
}

// View projects the cart state. The order control is disabled while the cart
// is empty or a submission is in flight.
func (c *CartController) View() CartView {
	c.mu.Lock()
	status := c.status
	errMsg := c.errMsg
	c.mu.Unlock()

	lines := c.sel.CartLines()
	return CartView{
		Lines:        lines,
		TotalDisplay: domain.FormatAmount(c.sel.CartTotal()),
		CanOrder:     len(lines) > 0 && status != domain.StatusLoading,
		Submitting:   status == domain.StatusLoading,
		ErrorMessage: errMsg,
	}
}

// RemoveLine takes one unit of the product out of the cart.
func (c *CartController) RemoveLine(ctx context.Context, productID string) error {
	return c.disp.RemoveFromCart(ctx, productID)
}

// SubmitOrder sends the current cart snapshot as a new order. A dispatch
// failure is captured into the error state and surfaced as a blocking alert.
func (c *CartController) SubmitOrder(ctx context.Context) error {
	lines := c.sel.CartLines()
	if len(lines) == 0 {
		return nil
	}
	total := c.sel.CartTotal()

	c.mu.Lock()
	c.errMsg = ""
	c.status = domain.StatusLoading
	c.mu.Unlock()

	err := c.disp.AddOrder(ctx, lines, total)

	c.mu.Lock()
	if err != nil {
		c.status = domain.StatusError
		c.errMsg = err.Error()
	} else {
		c.status = domain.StatusReady
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("Failed to submit order", zap.Error(err))
		c.alerter.Confirm("An error occurred!", err.Error(), []string{OptionOkay})
		return err
	}
	return nil
}
