package readstore

import (
	"context"

	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetUserProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserProfileRow, error)
}

type UserReadStore struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindProfile(ctx context.Context, userID uuid.UUID) (*queries.ProfileView, error) {
	row, err := r.queries.GetUserProfile(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user profile", err)
	}
	return &queries.ProfileView{
		ID:           row.ID,
		Role:         row.Role,
		RestaurantID: pgconv.StringPtrFromPgtype(row.RestaurantID),
	}, nil
}
