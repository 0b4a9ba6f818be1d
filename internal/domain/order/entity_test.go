//go:build unit

package order_test

import (
	"testing"
	"time"

	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func snapshot(rid, price string) order.DealSnapshot {
	s := order.DealSnapshot{ID: uuid.New(), RestaurantID: rid, RestaurantName: rid, Title: "deal " + rid, Status: "PUBLISHED"}
	if price != "" {
		p := decimal.RequireFromString(price)
		s.Price = &p
	}
	return s
}

func lineItem(t *testing.T, rid, price string, qty int) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(snapshot(rid, price), qty)
	require.NoError(t, err)
	return li
}

func TestNewLineItem(t *testing.T) {
	li := lineItem(t, "taqueria-7", "10.00", 3)
	assert.True(t, decimal.RequireFromString("10.00").Equal(li.UnitPrice()))
	assert.True(t, decimal.RequireFromString("30.00").Equal(li.Subtotal()))
	assert.Equal(t, "taqueria-7", li.RestaurantID())

	free := lineItem(t, "taqueria-7", "", 2)
	assert.True(t, free.Subtotal().IsZero())

	for _, qty := range []int{0, -1} {
		_, err := order.NewLineItem(snapshot("x", "1.00"), qty)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("total is the sum of line subtotals", func(t *testing.T) {
		o, err := order.NewOrder(uuid.Nil, uuid.New(), []order.LineItem{
			lineItem(t, "a", "10.00", 2),
			lineItem(t, "b", "5.00", 1),
		}, nil, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.True(t, decimal.RequireFromString("25.00").Equal(o.Total()))
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.PaymentRef())
		require.Len(t, o.Items(), 2)
		assert.Equal(t, "a", o.Items()[0].RestaurantID())
		assert.Equal(t, "b", o.Items()[1].RestaurantID())
	})

	t.Run("payment reference marks paid at creation", func(t *testing.T) {
		ref := "pi_1"
		o, err := order.NewOrder(uuid.New(), uuid.New(), []order.LineItem{lineItem(t, "a", "1.00", 1)}, &ref, now)
		require.NoError(t, err)
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, now, *o.PaidAt())
		assert.Equal(t, ref, *o.PaymentRef())
	})

	t.Run("empty reference is ignored", func(t *testing.T) {
		ref := ""
		o, err := order.NewOrder(uuid.New(), uuid.New(), []order.LineItem{lineItem(t, "a", "1.00", 1)}, &ref, now)
		require.NoError(t, err)
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.PaymentRef())
	})

	t.Run("items required", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), uuid.New(), nil, nil, now)
		require.ErrorIs(t, err, order.ErrItemsRequired)
	})
}

func TestStatusOrdering(t *testing.T) {
	cases := []struct {
		from, to order.Status
		errIs    error
	}{
		{order.StatusPlaced, order.StatusPreparing, nil},
		{order.StatusPreparing, order.StatusReady, nil},
		{order.StatusReady, order.StatusCompleted, nil},
		{order.StatusPlaced, order.StatusCompleted, nil},
		{order.StatusPlaced, order.StatusPlaced, order.ErrIllegalTransition},
		{order.StatusReady, order.StatusPreparing, order.ErrIllegalTransition},
		{order.StatusCompleted, order.StatusPlaced, order.ErrIllegalTransition},
		{order.StatusPlaced, order.Status("Shipped"), order.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			err := tc.from.CanAdvanceTo(tc.to)
			if tc.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
		})
	}

	_, err := order.ParseStatus("preparing")
	require.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.Equal(t, []string{"Placed", "Preparing", "Ready", "Completed"}, order.StatusNames())
}
