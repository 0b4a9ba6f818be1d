package readstore

import (
	"context"

	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationViewQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.Notifications, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsByUser(ctx, r.db, sqlc.ListNotificationsByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	out := make([]*queries.NotificationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.NotificationView{
			ID:        row.ID,
			UserID:    row.UserID,
			Kind:      row.Kind,
			Message:   row.Message,
			Read:      row.Read,
			DealID:    pgconv.UUIDPtrFromPgtype(row.DealID),
			OrderID:   pgconv.UUIDPtrFromPgtype(row.OrderID),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
