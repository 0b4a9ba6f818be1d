package queries

import (
	"context"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/errs"
)

var ErrRestaurantNotFound = errs.NewNotFound("restaurant not found")

type RestaurantQueries interface {
	Get(ctx context.Context, restaurantID string) (*RestaurantView, error)
	GetMine(ctx context.Context, actor user.Actor) (*RestaurantView, error)
}

type restaurantQueriesImpl struct {
	restaurants RestaurantReadStore
	profiles    ProfileReadStore
	authz       *authz.Authorizer
}

func NewRestaurantQueries(restaurants RestaurantReadStore, profiles ProfileReadStore, az *authz.Authorizer) RestaurantQueries {
	return &restaurantQueriesImpl{restaurants: restaurants, profiles: profiles, authz: az}
}

func (q *restaurantQueriesImpl) Get(ctx context.Context, restaurantID string) (*RestaurantView, error) {
	view, err := q.restaurants.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *restaurantQueriesImpl) GetMine(ctx context.Context, actor user.Actor) (*RestaurantView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceRestaurant, authz.ActionRead); err != nil {
		return nil, err
	}
	rid, err := ownerRestaurant(ctx, q.profiles, actor)
	if err != nil {
		return nil, err
	}
	return q.Get(ctx, rid)
}
