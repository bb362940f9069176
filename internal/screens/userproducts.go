package screens

import (
	"context"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// UserProductListView is the render model for the seller's products screen.
type UserProductListView struct {
	Mode         RenderMode
	ErrorMessage string
	Refreshing   bool
	Products     []domain.Product
}

// UserProductListController drives the seller's products screen: the user's
// own products with edit and delete controls.
type UserProductListController struct {
	*listController
	sel     Selectors
	disp    Dispatcher
	nav     Navigator
	alerter Alerter
	logger  *zap.Logger
}

// NewUserProductList creates the controller for the seller's products screen.
func NewUserProductList(sel Selectors, disp Dispatcher, nav Navigator, alerter Alerter, logger *zap.Logger) *UserProductListController {
	return &UserProductListController{
		listController: newListController(disp.FetchProducts, nav, logger),
		sel:            sel,
		disp:           disp,
		nav:            nav,
		alerter:        alerter,
		logger:         logger,
	}
}

// View resolves the render output from the screen status and the
// user-products projection.
func (c *UserProductListController) View() UserProductListView {
	status := c.Status()
	products := c.sel.UserProducts()

	v := UserProductListView{
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

// AddProduct opens the product form with empty defaults.
func (c *UserProductListController) AddProduct() {
	c.nav.NavigateTo(ScreenEditProduct, nil)
}

// EditProduct opens the product form seeded from the given product.
func (c *UserProductListController) EditProduct(id string) {
	c.nav.NavigateTo(ScreenEditProduct, map[string]string{"productId": id})
}

// Delete asks for confirmation and, only on an explicit yes, dispatches the
// delete. A dispatch failure is surfaced as a blocking alert.
func (c *UserProductListController) Delete(ctx context.Context, id string) error {
	choice := c.alerter.Confirm(
		"Are you sure?",
		"Do you want to delete this item?",
		[]string{OptionNo, OptionYes},
	)
	if choice != OptionYes {
		return nil
	}

	if err := c.disp.DeleteProduct(ctx, id); err != nil {
		c.logger.Error("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		c.alerter.Confirm("An error occurred!", err.Error(), []string{OptionOkay})
		return err
	}
	return nil
}
