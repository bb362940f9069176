package screens

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// listController is the state machine shared by the list-style screens.
// Mount runs the first fetch behind a full-screen load, re-focus events and
// pull-to-refresh repeat it behind a refresh indicator, and a retry from the
// error view starts over with the full-screen load.
//
// Overlapping fetches are legal; each one takes a generation number when it
// starts and only the newest-issued fetch may apply its outcome. A fetch
// resolving after Unmount is dropped the same way.
type listController struct {
	mu      sync.Mutex
	status  domain.ScreenStatus
	errMsg  string
	gen     uint64
	mounted bool
	fetch   func(context.Context) error
	nav     Navigator
	unsub   Unsubscribe
	logger  *zap.Logger
}

func newListController(fetch func(context.Context) error, nav Navigator, logger *zap.Logger) *listController {
	return &listController{
		status: domain.StatusIdle,
		fetch:  fetch,
		nav:    nav,
		logger: logger,
	}
}

// Mount marks the screen visible, subscribes to re-focus events and runs the
// initial fetch behind the full-screen loading state.
func (c *listController) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.mounted = true
	c.mu.Unlock()

	if c.nav != nil {
		c.unsub = c.nav.AddRefocusListener(func() {
			c.Refresh(context.Background())
		})
	}
	return c.load(ctx, domain.StatusLoading)
}

// Refresh repeats the fetch without the full-screen loading indicator.
func (c *listController) Refresh(ctx context.Context) error {
	return c.load(ctx, domain.StatusRefreshing)
}

// Retry re-invokes the fetch from the error view.
func (c *listController) Retry(ctx context.Context) error {
	return c.load(ctx, domain.StatusLoading)
}

// Unmount unsubscribes from re-focus events and resets the screen state.
// A fetch still in flight keeps running but its outcome is discarded.
func (c *listController) Unmount() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
	c.mu.Lock()
	c.mounted = false
	c.status = domain.StatusIdle
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *listController) load(ctx context.Context, via domain.ScreenStatus) error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return nil
	}
	c.gen++
	gen := c.gen
	// Entering Loading or Refreshing always clears a prior error.
	c.errMsg = ""
	c.status = via
	c.mu.Unlock()

	err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted || gen != c.gen {
		// Superseded by a newer fetch or by an unmount.
		if err != nil && c.logger != nil {
			c.logger.Debug("Dropping superseded fetch outcome", zap.Error(err))
		}
		return err
	}
	if err != nil {
		c.status = domain.StatusError
		c.errMsg = err.Error()
	} else {
		c.status = domain.StatusReady
	}
	return err
}

// Status returns the current screen status.
func (c *listController) Status() domain.ScreenStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// ErrorMessage returns the captured fetch failure, if any.
func (c *listController) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
