package screens

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// Form field identifiers.
const (
	FieldTitle       = "title"
	FieldImageURL    = "imageUrl"
	FieldPrice       = "price"
	FieldDescription = "description"
)

// navigateBackDelay keeps the success state visible for a beat before the
// form screen pops.
const navigateBackDelay = 500 * time.Millisecond

// FormView is the render model for the product form screen.
type FormView struct {
	Values       map[string]string
	FormIsValid  bool
	Submitting   bool
	ErrorMessage string
	Editing      bool
}

// ProductFormController drives the create/edit product screen. When editing,
// the form is seeded from the user-products projection and the price field is
// neither shown nor resubmitted. Field values are stored unconditionally,
// invalid ones included, so the user can see and correct them; overall form
// validity is the AND over every field's validity flag.
type ProductFormController struct {
	mu         sync.Mutex
	status     domain.ScreenStatus
	errMsg     string
	values     map[string]string
	validities map[string]bool
	formValid  bool

	editing   bool
	productID string
	navDelay  time.Duration

	disp    Dispatcher
	nav     Navigator
	alerter Alerter
	logger  *zap.Logger
}

// NewProductForm creates the form controller. An empty productID means the
// form creates a new product.
func NewProductForm(productID string, sel Selectors, disp Dispatcher, nav Navigator, alerter Alerter, logger *zap.Logger) *ProductFormController {
	f := &ProductFormController{
		status:   domain.StatusIdle,
		navDelay: navigateBackDelay,
		disp:     disp,
		nav:      nav,
		alerter:  alerter,
		logger:   logger,
	}

	if productID != "" {
		if p, ok := sel.UserProduct(productID); ok {
			f.editing = true
			f.productID = productID
			f.values = map[string]string{
				FieldTitle:       p.Title,
				FieldImageURL:    p.ImageURL,
				FieldPrice:       "",
				FieldDescription: p.Description,
			}
			f.validities = map[string]bool{
				FieldTitle:       true,
				FieldImageURL:    true,
				FieldPrice:       true,
				FieldDescription: true,
			}
			f.formValid = true
			return f
		}
	}

	f.values = map[string]string{
		FieldTitle:       "",
		FieldImageURL:    "",
		FieldPrice:       "",
		FieldDescription: "",
	}
	f.validities = map[string]bool{
		FieldTitle:       false,
		FieldImageURL:    false,
		FieldPrice:       false,
		FieldDescription: false,
	}
	return f
}

// InputChanged records a field change reported by the input renderer. The
// value is stored even when invalid; form validity is recomputed as the AND
// over all validity flags.
func (f *ProductFormController) InputChanged(field, value string, valid bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[field] = value
	f.validities[field] = valid

	formValid := true
	for _, v := range f.validities {
		formValid = formValid && v
	}
	f.formValid = formValid
}

// View projects the form state for rendering.
func (f *ProductFormController) View() FormView {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := make(map[string]string, len(f.values))
	for k, v := range f.values {
		values[k] = v
	}
	return FormView{
		Values:       values,
		FormIsValid:  f.formValid,
		Submitting:   f.status == domain.StatusLoading,
		ErrorMessage: f.errMsg,
		Editing:      f.editing,
	}
}

// FormIsValid reports whether every field currently validates.
func (f *ProductFormController) FormIsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.formValid
}

// Status returns the current screen status.
func (f *ProductFormController) Status() domain.ScreenStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit saves the form. An invalid form raises a blocking validation alert
// and dispatches nothing. A valid form dispatches update (when editing,
// without the price) or create (with the price parsed from text), then
// navigates back after a short delay. A dispatch failure is captured and
// alerted; the screen stays on the form.
func (f *ProductFormController) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.formValid {
		f.mu.Unlock()
		f.alerter.Confirm(
			"Wrong input!",
			"Please check the errors in the form.",
			[]string{OptionOkay},
		)
		return nil
	}
	f.errMsg = ""
	f.status = domain.StatusLoading
	title := f.values[FieldTitle]
	imageURL := f.values[FieldImageURL]
	priceText := f.values[FieldPrice]
	description := f.values[FieldDescription]
	f.mu.Unlock()

	var err error
	if f.editing {
		err = f.disp.UpdateProduct(ctx, f.productID, title, description, imageURL)
	} else {
		var price float64
		price, err = strconv.ParseFloat(priceText, 64)
		if err != nil {
			err = fmt.Errorf("invalid price %q", priceText)
		} else {
			err = f.disp.CreateProduct(ctx, title, description, imageURL, price)
		}
	}

	f.mu.Lock()
	if err != nil {
		f.status = domain.StatusError
		f.errMsg = err.Error()
		f.mu.Unlock()

		f.logger.Error("Failed to save product", zap.Bool("editing", f.editing), zap.Error(err))
		f.alerter.Confirm("An error occurred!", err.Error(), []string{OptionOkay})
		return err
	}
	f.status = domain.StatusReady
	f.mu.Unlock()

	time.Sleep(f.navDelay)
	f.nav.GoBack()
	return nil
}
