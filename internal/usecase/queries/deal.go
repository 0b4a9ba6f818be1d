package queries

import (
	"context"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrDealNotFound = errs.NewNotFound("deal not found")

type DealQueries interface {
	Browse(ctx context.Context, f DealFilter) (*DealPage, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*DealView, error)
	ListOwnerDeals(ctx context.Context, actor user.Actor) ([]*DealView, error)
	ListSubmitted(ctx context.Context, actor user.Actor) ([]*DealView, error)
}

type dealQueriesImpl struct {
	deals    DealReadStore
	profiles ProfileReadStore
	cache    PublishedDealCache
	authz    *authz.Authorizer
}

func NewDealQueries(deals DealReadStore, profiles ProfileReadStore, cache PublishedDealCache, az *authz.Authorizer) DealQueries {
	return &dealQueriesImpl{deals: deals, profiles: profiles, cache: cache, authz: az}
}

func (q *dealQueriesImpl) Browse(ctx context.Context, f DealFilter) (*DealPage, error) {
	f = f.Normalize()

	var (
		items []*DealView
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = q.deals.SearchPublished(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = q.deals.CountPublished(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "browse deals")
	}

	if items == nil {
		items = []*DealView{}
	}
	return &DealPage{
		Items:      items,
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
		TotalPages: TotalPages(total, f.Limit),
	}, nil
}

func (q *dealQueriesImpl) GetPublished(ctx context.Context, id uuid.UUID) (*DealView, error) {
	view, err := q.cache.GetOrLoad(ctx, id, func(ctx context.Context) (*DealView, error) {
		return q.deals.FindPublishedByID(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *dealQueriesImpl) ListOwnerDeals(ctx context.Context, actor user.Actor) ([]*DealView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceDeal, authz.ActionRead); err != nil {
		return nil, err
	}
	rid, err := ownerRestaurant(ctx, q.profiles, actor)
	if err != nil {
		return nil, err
	}
	return q.deals.FindByRestaurant(ctx, rid)
}

func (q *dealQueriesImpl) ListSubmitted(ctx context.Context, actor user.Actor) ([]*DealView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceModeration, authz.ActionRead); err != nil {
		return nil, err
	}
	return q.deals.FindByStatusOldestFirst(ctx, string(deal.StatusSubmitted))
}
