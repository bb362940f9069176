package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
)

// blockingFetch hands control of each fetch resolution to the test.
type blockingFetch struct {
	started chan struct{}
	release chan error
}

func newBlockingFetch() *blockingFetch {
	return &blockingFetch{
		started: make(chan struct{}, 8),
		release: make(chan error, 8),
	}
}

func (b *blockingFetch) fetch(ctx context.Context) error {
	b.started <- struct{}{}
	return <-b.release
}

func TestMountRunsFetchBehindLoading(t *testing.T) {
	bf := newBlockingFetch()
	c := newListController(bf.fetch, nil, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- c.Mount(context.Background()) }()

	<-bf.started
	assert.Equal(t, domain.StatusLoading, c.Status())
	assert.Empty(t, c.ErrorMessage())

	bf.release <- nil
	require.NoError(t, <-done)
	assert.Equal(t, domain.StatusReady, c.Status())
}

func TestFetchFailureCapturesError(t *testing.T) {
	fetch := func(ctx context.Context) error { return errors.New("backend is down") }
	c := newListController(fetch, nil, zap.NewNop())

	err := c.Mount(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.StatusError, c.Status())
	assert.Equal(t, "backend is down", c.ErrorMessage())
}

func TestLoadingClearsPriorError(t *testing.T) {
	bf := newBlockingFetch()
	calls := 0
	fetch := func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("backend is down")
		}
		return bf.fetch(ctx)
	}
	c := newListController(fetch, nil, zap.NewNop())

	require.Error(t, c.Mount(context.Background()))
	require.Equal(t, domain.StatusError, c.Status())

	done := make(chan error, 1)
	go func() { done <- c.Retry(context.Background()) }()

	<-bf.started
	// Entering Loading must reset the error before the fetch resolves.
	assert.Equal(t, domain.StatusLoading, c.Status())
	assert.Empty(t, c.ErrorMessage())

	bf.release <- nil
	require.NoError(t, <-done)
	assert.Equal(t, domain.StatusReady, c.Status())
}

func TestRefreshAvoidsFullScreenLoading(t *testing.T) {
	bf := newBlockingFetch()
	first := true
	fetch := func(ctx context.Context) error {
		if first {
			first = false
			return nil
		}
		return bf.fetch(ctx)
	}
	c := newListController(fetch, nil, zap.NewNop())
	require.NoError(t, c.Mount(context.Background()))

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()

	<-bf.started
	assert.Equal(t, domain.StatusRefreshing, c.Status())

	bf.release <- nil
	require.NoError(t, <-done)
	assert.Equal(t, domain.StatusReady, c.Status())
}

func TestSupersededFetchOutcomeIsDropped(t *testing.T) {
	bf := newBlockingFetch()
	calls := 0
	fetch := func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return bf.fetch(ctx)
		}
		return nil
	}
	c := newListController(fetch, nil, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- c.Mount(context.Background()) }()
	<-bf.started

	// A second fetch is issued while the first is still in flight and
	// resolves successfully.
	require.NoError(t, c.Refresh(context.Background()))
	require.Equal(t, domain.StatusReady, c.Status())

	// The first fetch now resolves with an error; it was superseded, so its
	// outcome must not overwrite the newer state.
	bf.release <- errors.New("stale failure")
	require.Error(t, <-done)
	assert.Equal(t, domain.StatusReady, c.Status())
	assert.Empty(t, c.ErrorMessage())
}

func TestUnmountDropsInFlightOutcome(t *testing.T) {
	bf := newBlockingFetch()
	c := newListController(bf.fetch, nil, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- c.Mount(context.Background()) }()
	<-bf.started

	c.Unmount()
	bf.release <- errors.New("resolved after unmount")
	require.Error(t, <-done)

	assert.Equal(t, domain.StatusIdle, c.Status())
	assert.Empty(t, c.ErrorMessage())
}

func TestRefocusTriggersRefresh(t *testing.T) {
	sel := &fakeSelectors{available: []domain.Product{{ID: "p1", Title: "Pen"}}}
	disp := &fakeDispatcher{}
	nav := &fakeNavigator{}
	c := NewProductList(sel, disp, nav, zap.NewNop())

	require.NoError(t, c.Mount(context.Background()))
	require.Equal(t, 1, disp.fetchProducts)

	nav.Refocus()
	assert.Equal(t, 2, disp.fetchProducts)
	assert.Equal(t, domain.StatusReady, c.Status())

	c.Unmount()
	assert.True(t, nav.unsubscribed)
}
