package readstore

import (
	"context"

	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteViewQueries interface {
	ListFavoritesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListFavoritesByUserRow, error)
}

type FavoriteReadStore struct {
	queries FavoriteViewQueries
	db      sqlc.DBTX
}

func NewFavoriteReadStore(queries FavoriteViewQueries, db sqlc.DBTX) *FavoriteReadStore {
	return &FavoriteReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByUser joins each favorite with the deal's current data, most
// recently favorited first.
func (r *FavoriteReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.FavoriteView, error) {
	rows, err := r.queries.ListFavoritesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	out := make([]*queries.FavoriteView, 0, len(rows))
	for _, row := range rows {
		d, err := DealView(sqlc.Deals{
			ID:              row.ID,
			RestaurantID:    row.RestaurantID,
			RestaurantName:  row.RestaurantName,
			Title:           row.Title,
			Description:     row.Description,
			DealType:        row.DealType,
			DiscountType:    row.DiscountType,
			Value:           row.Value,
			Price:           row.Price,
			ImageUrl:        row.ImageUrl,
			Tags:            row.Tags,
			StartAt:         row.StartAt,
			EndAt:           row.EndAt,
			Status:          row.Status,
			RejectionReason: row.RejectionReason,
			CreatedBy:       row.CreatedBy,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, &queries.FavoriteView{
			FavoritedAt: pgconv.TimeFromPgtype(row.FavoritedAt),
			Deal:        *d,
		})
	}
	return out, nil
}
