package queries

import (
	"context"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/pkg/authz"
)

type FavoriteQueries interface {
	ListMine(ctx context.Context, actor user.Actor) ([]*FavoriteView, error)
}

type favoriteQueriesImpl struct {
	favorites FavoriteReadStore
	authz     *authz.Authorizer
}

func NewFavoriteQueries(favorites FavoriteReadStore, az *authz.Authorizer) FavoriteQueries {
	return &favoriteQueriesImpl{favorites: favorites, authz: az}
}

func (q *favoriteQueriesImpl) ListMine(ctx context.Context, actor user.Actor) ([]*FavoriteView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceFavorite, authz.ActionRead); err != nil {
		return nil, err
	}
	return q.favorites.FindByUser(ctx, actor.ID)
}
