package repository

import (
	"context"

	"deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/pkg/pgconv"
)

var errRestaurantMissing = errs.New("restaurant row missing")

type RestaurantWriteQueries interface {
	CreateRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRestaurantParams) error
	UpdateRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRestaurantParams) (int64, error)
}

type RestaurantRepository struct {
	queries RestaurantWriteQueries
}

func NewRestaurantRepository(queries RestaurantWriteQueries) *RestaurantRepository {
	return &RestaurantRepository{queries: queries}
}

func (r *RestaurantRepository) Create(ctx context.Context, tx sqlc.DBTX, rest *restaurant.Restaurant) error {
	p := rest.Profile()
	err := r.queries.CreateRestaurant(ctx, tx, sqlc.CreateRestaurantParams{
		ID:           rest.ID(),
		RestaurantID: rest.RestaurantID(),
		OwnerID:      rest.OwnerID(),
		Name:         rest.Name(),
		Description:  pgconv.StringPtrToPgtype(p.Description),
		Address:      pgconv.StringPtrToPgtype(p.Address),
		City:         pgconv.StringPtrToPgtype(p.City),
		Phone:        pgconv.StringPtrToPgtype(p.Phone),
		Website:      pgconv.StringPtrToPgtype(p.Website),
		ImageUrl:     pgconv.StringPtrToPgtype(p.ImageURL),
		CreatedAt:    pgconv.TimeToPgtype(rest.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(rest.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create restaurant", err)
	}
	return nil
}

func (r *RestaurantRepository) Update(ctx context.Context, tx sqlc.DBTX, rest *restaurant.Restaurant) error {
	p := rest.Profile()
	n, err := r.queries.UpdateRestaurant(ctx, tx, sqlc.UpdateRestaurantParams{
		RestaurantID: rest.RestaurantID(),
		Name:         rest.Name(),
		Description:  pgconv.StringPtrToPgtype(p.Description),
		Address:      pgconv.StringPtrToPgtype(p.Address),
		City:         pgconv.StringPtrToPgtype(p.City),
		Phone:        pgconv.StringPtrToPgtype(p.Phone),
		Website:      pgconv.StringPtrToPgtype(p.Website),
		ImageUrl:     pgconv.StringPtrToPgtype(p.ImageURL),
		UpdatedAt:    pgconv.TimeToPgtype(rest.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("restaurant not found", errRestaurantMissing, infra.KindNotFound)
	}
	return nil
}
