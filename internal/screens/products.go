package screens

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// ProductListView is the render model for the all-products screen.
type ProductListView struct {
	Mode         RenderMode
	ErrorMessage string
	Refreshing   bool
	Products     []domain.Product
}

// ProductListController drives the all-products screen: it loads the catalog
// on mount, refreshes on re-focus and lets the user open a product or add it
// to the cart.
type ProductListController struct {
	*listController
	sel  Selectors
	disp Dispatcher
	nav  Navigator
}

// NewProductList creates the controller for the all-products screen.
func NewProductList(sel Selectors, disp Dispatcher, nav Navigator, logger *zap.Logger) *ProductListController {
	return &ProductListController{
		listController: newListController(disp.FetchProducts, nav, logger),
		sel:            sel,
		disp:           disp,
		nav:            nav,
	}
}

// View resolves the render output from the screen status and the catalog
// projection.
func (c *ProductListController) View() ProductListView {
	status := c.Status()
	products := c.sel.AvailableProducts()

	v := ProductListView{
		Mode:       resolveRender(status, len(products)),
		Refreshing: status == domain.StatusRefreshing,
	}
	switch v.Mode {
	case RenderError:
		v.ErrorMessage = c.ErrorMessage()
	case RenderList:
		v.Products = products
	}
	return v
}

// SelectProduct opens the detail screen for the given product.
func (c *ProductListController) SelectProduct(id, title string) {
	c.nav.NavigateTo(ScreenProductDetail, map[string]string{
		"productId":    id,
		"productTitle": title,
	})
}

// AddToCart puts one unit of the product into the cart.
func (c *ProductListController) AddToCart(ctx context.Context, productID string) error {
	for _, p := range c.sel.AvailableProducts() {
		if p.ID == productID {
			return c.disp.AddToCart(ctx, p)
		}
	}
	return fmt.Errorf("product %s is not in the catalog", productID)
}
