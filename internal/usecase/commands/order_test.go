//go:build unit

package commands_test

import (
	"context"
	"testing"

	"deal-marketplace/internal/domain/notification"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/testutil/builder"
	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) seedOrder(mutate ...func(*builder.OrderBuilder)) *builder.OrderBuilder {
	b := builder.NewOrderBuilder()
	b.UserID = f.customer.ID
	b.Deals[0].WithRestaurant(f.restaurant.RestaurantID, f.restaurant.Name)
	for _, m := range mutate {
		m(b)
	}
	f.store.PutOrder(b.BuildDomain())
	return b
}

func (f *fixture) orderStatus(t *testing.T, id uuid.UUID) order.Status {
	t.Helper()
	o, ok := f.store.Order(id)
	require.True(t, ok)
	return o.Status()
}

func TestAdvanceOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: each forward step once, then conflicts", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		o := f.seedOrder()

		for _, target := range []order.Status{order.StatusPreparing, order.StatusReady, order.StatusCompleted} {
			res, err := uc.AdvanceOrderStatus(ctx, f.owner, o.ID, string(target))
			require.NoError(t, err, target)
			assert.Equal(t, target, res.Status)
			assert.Equal(t, target, f.orderStatus(t, o.ID))

			_, err = uc.AdvanceOrderStatus(ctx, f.owner, o.ID, string(target))
			require.ErrorIs(t, err, order.ErrIllegalTransition, "repeat %s", target)
		}

		inbox := f.store.Notifications(f.customer.ID)
		require.Len(t, inbox, 3)
		for _, n := range inbox {
			assert.Equal(t, notification.KindOrderStatus, n.Notification.Kind())
			require.NotNil(t, n.Notification.OrderID())
			assert.Equal(t, o.ID, *n.Notification.OrderID())
		}
	})

	t.Run("success: forward jump is allowed", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		o := f.seedOrder()

		_, err := uc.AdvanceOrderStatus(ctx, f.owner, o.ID, "Completed")
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, f.orderStatus(t, o.ID))
	})

	t.Run("conflict: regression leaves status unchanged", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		o := f.seedOrder(func(b *builder.OrderBuilder) { b.WithStatus(order.StatusReady) })

		for _, target := range []string{"Placed", "Preparing", "Ready"} {
			_, err := uc.AdvanceOrderStatus(ctx, f.owner, o.ID, target)
			require.ErrorIs(t, err, order.ErrIllegalTransition)
			assert.True(t, errs.Is(err, errs.ErrConflict))
		}
		assert.Equal(t, order.StatusReady, f.orderStatus(t, o.ID))
		assert.Empty(t, f.store.Notifications(f.customer.ID))
	})

	t.Run("validation: unknown status", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		o := f.seedOrder()

		_, err := uc.AdvanceOrderStatus(ctx, f.owner, o.ID, "Shipped")
		require.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("not found: order of another restaurant", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		o := f.seedOrder(func(b *builder.OrderBuilder) {
			b.Deals[0].WithRestaurant("pho-9", "Pho Nine")
		})

		_, err := uc.AdvanceOrderStatus(ctx, f.owner, o.ID, "Preparing")
		require.ErrorIs(t, err, commands.ErrOrderNotFound)
		assert.Equal(t, order.StatusPlaced, f.orderStatus(t, o.ID))
	})

	t.Run("not found: unknown order", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)

		_, err := uc.AdvanceOrderStatus(ctx, f.owner, uuid.New(), "Preparing")
		require.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("success: mixed order advanced by any supplying owner", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		other := builder.NewRestaurantBuilder().With(func(b *builder.RestaurantBuilder) {
			b.RestaurantID = "pho-9"
			b.Name = "Pho Nine"
		})
		f.store.PutProfile(other.OwnerProfile())
		f.store.PutRestaurant(other.BuildSnapshot())
		o := f.seedOrder(func(b *builder.OrderBuilder) {
			b.Deals = append(b.Deals, builder.NewDealBuilder().WithRestaurant("pho-9", "Pho Nine"))
			b.Qty = append(b.Qty, 1)
		})

		_, err := uc.AdvanceOrderStatus(ctx, other.Owner(), o.ID, "Preparing")
		require.NoError(t, err)
	})

	t.Run("forbidden: customer cannot advance", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		o := f.seedOrder()

		_, err := uc.AdvanceOrderStatus(ctx, f.customer, o.ID, "Preparing")
		require.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("forbidden: owner without restaurant", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewOrderUseCase(f.store, f.authz, f.clock)
		o := f.seedOrder()
		orphan := user.NewActor(uuid.New(), user.RoleOwner)
		f.store.PutProfile(shared.ProfileSnapshot{ID: orphan.ID, Role: string(user.RoleOwner)})

		_, err := uc.AdvanceOrderStatus(ctx, orphan, o.ID, "Preparing")
		require.ErrorIs(t, err, user.ErrOwnerRestaurantRequired)
	})
}
