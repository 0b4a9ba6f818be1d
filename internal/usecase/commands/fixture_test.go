//go:build unit

package commands_test

import (
	"testing"
	"time"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra/memstore"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/testutil/builder"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

type fixture struct {
	store      *memstore.Store
	authz      *authz.Authorizer
	clock      *clock.MockClock
	restaurant *builder.RestaurantBuilder
	owner      user.Actor
	admin      user.Actor
	customer   user.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	az, err := authz.NewAuthorizer()
	require.NoError(t, err)

	f := &fixture{
		store:      memstore.New(),
		authz:      az,
		clock:      clock.NewMockClock(baseTime),
		restaurant: builder.NewRestaurantBuilder(),
		admin:      user.NewActor(uuid.New(), user.RoleAdmin),
		customer:   user.NewActor(uuid.New(), user.RoleCustomer),
	}
	f.owner = f.restaurant.Owner()

	f.store.PutProfile(f.restaurant.OwnerProfile())
	f.store.PutRestaurant(f.restaurant.BuildSnapshot())
	f.store.PutProfile(shared.ProfileSnapshot{ID: f.admin.ID, Role: string(user.RoleAdmin)})
	f.store.PutProfile(shared.ProfileSnapshot{ID: f.customer.ID, Role: string(user.RoleCustomer)})
	return f
}

// seedDeal stores a deal of the fixture restaurant created by its owner.
func (f *fixture) seedDeal(status deal.Status, mutate ...func(*builder.DealBuilder)) *builder.DealBuilder {
	b := builder.NewDealBuilder().
		WithRestaurant(f.restaurant.RestaurantID, f.restaurant.Name).
		WithStatus(status)
	b.CreatedBy = f.owner.ID
	for _, m := range mutate {
		m(b)
	}
	f.store.PutDeal(*b.BuildSnapshot())
	return b
}

func (f *fixture) dealStatus(t *testing.T, id uuid.UUID) string {
	t.Helper()
	d, ok := f.store.Deal(id)
	require.True(t, ok)
	return d.Status
}
