//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	queriesmock "deal-marketplace/internal/mock/queries"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/testutil/builder"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthorizer(t *testing.T) *authz.Authorizer {
	t.Helper()
	az, err := authz.NewAuthorizer()
	require.NoError(t, err)
	return az
}

func ownerProfile(id uuid.UUID, restaurantID string) *queries.ProfileView {
	return &queries.ProfileView{ID: id, Role: string(user.RoleOwner), RestaurantID: &restaurantID}
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func TestDealFilterNormalize(t *testing.T) {
	t.Parallel()

	bogus := "Brunch"
	blank := "   "
	city := "  Austin "
	tests := []struct {
		name string
		in   queries.DealFilter
		want func(t *testing.T, f queries.DealFilter)
	}{
		{
			name: "defaults",
			in:   queries.DealFilter{},
			want: func(t *testing.T, f queries.DealFilter) {
				assert.Equal(t, 1, f.Page)
				assert.Equal(t, queries.DefaultPageLimit, f.Limit)
				assert.Equal(t, queries.SortNewest, f.Sort)
				assert.Equal(t, 0, f.Offset())
			},
		},
		{
			name: "limit is clamped",
			in:   queries.DealFilter{Page: 3, Limit: 500, Sort: "value"},
			want: func(t *testing.T, f queries.DealFilter) {
				assert.Equal(t, queries.MaxPageLimit, f.Limit)
				assert.Equal(t, queries.SortValue, f.Sort)
				assert.Equal(t, 100, f.Offset())
			},
		},
		{
			name: "negative limit becomes one",
			in:   queries.DealFilter{Limit: -4},
			want: func(t *testing.T, f queries.DealFilter) {
				assert.Equal(t, 1, f.Limit)
			},
		},
		{
			name: "unknown deal type and blank text filters are dropped",
			in:   queries.DealFilter{DealType: &bogus, Q: &blank, City: &city, Sort: "cheapest"},
			want: func(t *testing.T, f queries.DealFilter) {
				assert.Nil(t, f.DealType)
				assert.Nil(t, f.Q)
				require.NotNil(t, f.City)
				assert.Equal(t, "Austin", *f.City)
				assert.Equal(t, queries.SortNewest, f.Sort)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.want(t, tt.in.Normalize())
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, queries.TotalPages(0, 10))
	assert.Equal(t, 1, queries.TotalPages(10, 10))
	assert.Equal(t, 2, queries.TotalPages(11, 10))
	assert.Equal(t, 5, queries.TotalPages(250, 50))
}

func TestDealQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	az := newAuthorizer(t)

	t.Run("Browse runs page and count with the normalized filter", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		deals := queriesmock.NewMockDealReadStore(ctrl)
		q := queries.NewDealQueries(deals, queriesmock.NewMockProfileReadStore(ctrl), queriesmock.NewMockPublishedDealCache(ctrl), az)

		minPrice := decimal.NewFromInt(5)
		want := queries.DealFilter{MinPrice: &minPrice}.Normalize()
		view := builder.NewDealBuilder().BuildView()
		deals.EXPECT().SearchPublished(gomock.Any(), want).Return([]*queries.DealView{view}, nil)
		deals.EXPECT().CountPublished(gomock.Any(), want).Return(int64(21), nil)

		page, err := q.Browse(ctx, queries.DealFilter{MinPrice: &minPrice})
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("Browse returns an empty slice, not nil", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		deals := queriesmock.NewMockDealReadStore(ctrl)
		q := queries.NewDealQueries(deals, queriesmock.NewMockProfileReadStore(ctrl), queriesmock.NewMockPublishedDealCache(ctrl), az)

		deals.EXPECT().SearchPublished(gomock.Any(), gomock.Any()).Return(nil, nil)
		deals.EXPECT().CountPublished(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		page, err := q.Browse(ctx, queries.DealFilter{})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("Browse fails when either read fails", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		deals := queriesmock.NewMockDealReadStore(ctrl)
		q := queries.NewDealQueries(deals, queriesmock.NewMockProfileReadStore(ctrl), queriesmock.NewMockPublishedDealCache(ctrl), az)

		boom := errors.New("boom")
		deals.EXPECT().SearchPublished(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		deals.EXPECT().CountPublished(gomock.Any(), gomock.Any()).Return(int64(0), boom)

		_, err := q.Browse(ctx, queries.DealFilter{})
		require.ErrorIs(t, err, boom)
	})

	t.Run("GetPublished loads through the cache", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		deals := queriesmock.NewMockDealReadStore(ctrl)
		cache := queriesmock.NewMockPublishedDealCache(ctrl)
		q := queries.NewDealQueries(deals, queriesmock.NewMockProfileReadStore(ctrl), cache, az)

		view := builder.NewDealBuilder().BuildView()
		cache.EXPECT().GetOrLoad(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, load func(context.Context) (*queries.DealView, error)) (*queries.DealView, error) {
				return load(ctx)
			})
		deals.EXPECT().FindPublishedByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetPublished(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("GetPublished maps a missing row to not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		cache := queriesmock.NewMockPublishedDealCache(ctrl)
		q := queries.NewDealQueries(queriesmock.NewMockDealReadStore(ctrl), queriesmock.NewMockProfileReadStore(ctrl), cache, az)

		cache.EXPECT().GetOrLoad(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := q.GetPublished(ctx, uuid.New())
		require.ErrorIs(t, err, queries.ErrDealNotFound)
	})

	t.Run("ListOwnerDeals reads the caller's restaurant", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		deals := queriesmock.NewMockDealReadStore(ctrl)
		profiles := queriesmock.NewMockProfileReadStore(ctrl)
		q := queries.NewDealQueries(deals, profiles, queriesmock.NewMockPublishedDealCache(ctrl), az)

		owner := user.NewActor(uuid.New(), user.RoleOwner)
		profiles.EXPECT().FindProfile(gomock.Any(), owner.ID).Return(ownerProfile(owner.ID, "taqueria-7"), nil)
		deals.EXPECT().FindByRestaurant(gomock.Any(), "taqueria-7").Return([]*queries.DealView{}, nil)

		got, err := q.ListOwnerDeals(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ListOwnerDeals rejects owners without a profile", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		profiles := queriesmock.NewMockProfileReadStore(ctrl)
		q := queries.NewDealQueries(queriesmock.NewMockDealReadStore(ctrl), profiles, queriesmock.NewMockPublishedDealCache(ctrl), az)

		owner := user.NewActor(uuid.New(), user.RoleOwner)
		profiles.EXPECT().FindProfile(gomock.Any(), owner.ID).Return(nil, notFound())

		_, err := q.ListOwnerDeals(ctx, owner)
		require.ErrorIs(t, err, user.ErrOwnerRestaurantRequired)
	})

	t.Run("ListSubmitted is admin only", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		deals := queriesmock.NewMockDealReadStore(ctrl)
		q := queries.NewDealQueries(deals, queriesmock.NewMockProfileReadStore(ctrl), queriesmock.NewMockPublishedDealCache(ctrl), az)

		_, err := q.ListSubmitted(ctx, user.NewActor(uuid.New(), user.RoleOwner))
		require.ErrorIs(t, err, authz.ErrForbidden)

		deals.EXPECT().FindByStatusOldestFirst(gomock.Any(), "SUBMITTED").Return([]*queries.DealView{}, nil)
		_, err = q.ListSubmitted(ctx, user.NewActor(uuid.New(), user.RoleAdmin))
		require.NoError(t, err)
	})
}

func TestOrderQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	az := newAuthorizer(t)

	t.Run("GetMine hides other customers' orders", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderReadStore(ctrl)
		q := queries.NewOrderQueries(orders, queriesmock.NewMockProfileReadStore(ctrl), az)

		view := builder.NewOrderBuilder().BuildView()
		orders.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(2)

		got, err := q.GetMine(ctx, user.NewActor(view.UserID, user.RoleCustomer), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)

		_, err = q.GetMine(ctx, user.NewActor(uuid.New(), user.RoleCustomer), view.ID)
		require.ErrorIs(t, err, queries.ErrOrderNotFound)
	})

	t.Run("GetMine maps a missing row to not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderReadStore(ctrl)
		q := queries.NewOrderQueries(orders, queriesmock.NewMockProfileReadStore(ctrl), az)

		orders.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := q.GetMine(ctx, user.NewActor(uuid.New(), user.RoleCustomer), uuid.New())
		require.ErrorIs(t, err, queries.ErrOrderNotFound)
	})

	t.Run("ListRestaurantOrders needs an owner", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderReadStore(ctrl)
		profiles := queriesmock.NewMockProfileReadStore(ctrl)
		q := queries.NewOrderQueries(orders, profiles, az)

		_, err := q.ListRestaurantOrders(ctx, user.NewActor(uuid.New(), user.RoleCustomer))
		require.ErrorIs(t, err, authz.ErrForbidden)

		owner := user.NewActor(uuid.New(), user.RoleOwner)
		profiles.EXPECT().FindProfile(gomock.Any(), owner.ID).Return(ownerProfile(owner.ID, "pho-21"), nil)
		orders.EXPECT().FindByRestaurant(gomock.Any(), "pho-21").Return([]*queries.OrderView{}, nil)
		_, err = q.ListRestaurantOrders(ctx, owner)
		require.NoError(t, err)
	})
}

func TestNotificationQueries_ListMineIsCapped(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockNotificationReadStore(ctrl)
	q := queries.NewNotificationQueries(store, newAuthorizer(t))

	actor := user.NewActor(uuid.New(), user.RoleCustomer)
	store.EXPECT().FindByUser(gomock.Any(), actor.ID, int32(queries.NotificationListLimit)).Return([]*queries.NotificationView{}, nil)

	_, err := q.ListMine(context.Background(), actor)
	require.NoError(t, err)
}

func TestRestaurantQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	az := newAuthorizer(t)

	t.Run("Get maps a missing row to not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRestaurantReadStore(ctrl)
		q := queries.NewRestaurantQueries(store, queriesmock.NewMockProfileReadStore(ctrl), az)

		store.EXPECT().FindByRestaurantID(gomock.Any(), "nope").Return(nil, notFound())

		_, err := q.Get(ctx, "nope")
		require.ErrorIs(t, err, queries.ErrRestaurantNotFound)
	})

	t.Run("GetMine resolves through the owner profile", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRestaurantReadStore(ctrl)
		profiles := queriesmock.NewMockProfileReadStore(ctrl)
		q := queries.NewRestaurantQueries(store, profiles, az)

		rb := builder.NewRestaurantBuilder()
		view := rb.BuildView()
		owner := rb.Owner()
		profiles.EXPECT().FindProfile(gomock.Any(), owner.ID).Return(ownerProfile(owner.ID, view.RestaurantID), nil)
		store.EXPECT().FindByRestaurantID(gomock.Any(), view.RestaurantID).Return(view, nil)

		got, err := q.GetMine(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})
}
