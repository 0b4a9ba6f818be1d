package repository

import (
	"context"
	"time"

	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FavoriteWriteQueries interface {
	InsertFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertFavoriteParams) (int64, error)
	DeleteFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFavoriteParams) error
}

type FavoriteRepository struct {
	queries FavoriteWriteQueries
}

func NewFavoriteRepository(queries FavoriteWriteQueries) *FavoriteRepository {
	return &FavoriteRepository{queries: queries}
}

// Add reports false when the pair already existed.
func (r *FavoriteRepository) Add(ctx context.Context, tx sqlc.DBTX, userID, dealID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.InsertFavorite(ctx, tx, sqlc.InsertFavoriteParams{
		UserID:    userID,
		DealID:    dealID,
		CreatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to add favorite", err)
	}
	return n == 1, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, tx sqlc.DBTX, userID, dealID uuid.UUID) error {
	if err := r.queries.DeleteFavorite(ctx, tx, sqlc.DeleteFavoriteParams{UserID: userID, DealID: dealID}); err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err)
	}
	return nil
}
