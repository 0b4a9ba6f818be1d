package queries

import (
	"context"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.NewNotFound("order not found")

type OrderQueries interface {
	ListMine(ctx context.Context, actor user.Actor) ([]*OrderView, error)
	GetMine(ctx context.Context, actor user.Actor, id uuid.UUID) (*OrderView, error)
	ListRestaurantOrders(ctx context.Context, actor user.Actor) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	orders   OrderReadStore
	profiles ProfileReadStore
	authz    *authz.Authorizer
}

func NewOrderQueries(orders OrderReadStore, profiles ProfileReadStore, az *authz.Authorizer) OrderQueries {
	return &orderQueriesImpl{orders: orders, profiles: profiles, authz: az}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, actor user.Actor) ([]*OrderView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceOrder, authz.ActionRead); err != nil {
		return nil, err
	}
	return q.orders.FindByUser(ctx, actor.ID)
}

// GetMine hides orders of other users behind not-found.
func (q *orderQueriesImpl) GetMine(ctx context.Context, actor user.Actor, id uuid.UUID) (*OrderView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceOrder, authz.ActionRead); err != nil {
		return nil, err
	}
	view, err := q.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if view.UserID != actor.ID {
		return nil, ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) ListRestaurantOrders(ctx context.Context, actor user.Actor) ([]*OrderView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceFulfillment, authz.ActionRead); err != nil {
		return nil, err
	}
	rid, err := ownerRestaurant(ctx, q.profiles, actor)
	if err != nil {
		return nil, err
	}
	return q.orders.FindByRestaurant(ctx, rid)
}
