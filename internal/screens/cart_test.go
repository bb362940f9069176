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

func cartSelectors() *fakeSelectors {
	return &fakeSelectors{
		lines: []domain.CartLine{
			{ProductID: "a", ProductTitle: "Pen", ProductPrice: 5.0, Quantity: 2, Sum: 10.0},
			{ProductID: "b", ProductTitle: "Mug", ProductPrice: 5.5, Quantity: 1, Sum: 5.5},
		},
		total: 15.5,
	}
}

func TestCartViewFormatsTotal(t *testing.T) {
	c := NewCart(cartSelectors(), &fakeDispatcher{}, &fakeAlerter{}, zap.NewNop())

	v := c.View()
	assert.Equal(t, "$15.50", v.TotalDisplay)
	assert.True(t, v.CanOrder)
	assert.Len(t, v.Lines, 2)
}

func TestCartOrderDisabledWhenEmpty(t *testing.T) {
	disp := &fakeDispatcher{}
	c := NewCart(&fakeSelectors{}, disp, &fakeAlerter{}, zap.NewNop())

	v := c.View()
	assert.False(t, v.CanOrder)
	assert.Equal(t, "$0.00", v.TotalDisplay)

	// Submitting an empty cart dispatches nothing.
	require.NoError(t, c.SubmitOrder(context.Background()))
	assert.Empty(t, disp.orders)
}

func TestSubmitOrderDispatchesSnapshot(t *testing.T) {
	disp := &fakeDispatcher{}
	c := NewCart(cartSelectors(), disp, &fakeAlerter{}, zap.NewNop())

	require.NoError(t, c.SubmitOrder(context.Background()))

	require.Len(t, disp.orders, 1)
	assert.Len(t, disp.orders[0].items, 2)
	assert.Equal(t, 15.5, disp.orders[0].total)
	assert.Empty(t, c.View().ErrorMessage)
}

func TestSubmitOrderFailureIsSurfaced(t *testing.T) {
	disp := &fakeDispatcher{addOrderErr: errors.New("order rejected")}
	alerter := &fakeAlerter{}
	c := NewCart(cartSelectors(), disp, alerter, zap.NewNop())

	require.Error(t, c.SubmitOrder(context.Background()))

	v := c.View()
	assert.Equal(t, "order rejected", v.ErrorMessage)
	assert.False(t, v.Submitting)

	require.Len(t, alerter.calls, 1)
	assert.Equal(t, "An error occurred!", alerter.calls[0].title)
	assert.Equal(t, "order rejected", alerter.calls[0].message)
}

func TestRemoveLineDispatches(t *testing.T) {
	disp := &fakeDispatcher{}
	c := NewCart(cartSelectors(), disp, &fakeAlerter{}, zap.NewNop())

	require.NoError(t, c.RemoveLine(context.Background(), "a"))
	assert.Equal(t, []string{"a"}, disp.removed)
}
