package readstore

import (
	"context"

	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/usecase/queries"
)

type RestaurantViewQueries interface {
	GetRestaurantByRestaurantID(ctx context.Context, db sqlc.DBTX, restaurantID string) (sqlc.Restaurants, error)
}

type RestaurantReadStore struct {
	queries RestaurantViewQueries
	db      sqlc.DBTX
}

func NewRestaurantReadStore(queries RestaurantViewQueries, db sqlc.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) FindByRestaurantID(ctx context.Context, restaurantID string) (*queries.RestaurantView, error) {
	row, err := r.queries.GetRestaurantByRestaurantID(ctx, r.db, restaurantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get restaurant", err)
	}
	return &queries.RestaurantView{
		ID:           row.ID,
		RestaurantID: row.RestaurantID,
		OwnerID:      row.OwnerID,
		Name:         row.Name,
		Description:  pgconv.StringPtrFromPgtype(row.Description),
		Address:      pgconv.StringPtrFromPgtype(row.Address),
		City:         pgconv.StringPtrFromPgtype(row.City),
		Phone:        pgconv.StringPtrFromPgtype(row.Phone),
		Website:      pgconv.StringPtrFromPgtype(row.Website),
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageUrl),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
