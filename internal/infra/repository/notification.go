package repository

import (
	"context"

	"deal-marketplace/internal/domain/notification"
	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error {
	err := r.queries.CreateNotification(ctx, tx, sqlc.CreateNotificationParams{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Kind:      string(n.Kind()),
		Message:   n.Message(),
		Read:      n.Read(),
		DealID:    pgconv.UUIDPtrToPgtype(n.DealID()),
		OrderID:   pgconv.UUIDPtrToPgtype(n.OrderID()),
		CreatedAt: pgconv.TimeToPgtype(n.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

// MarkRead matches on owner as well as id.
func (r *NotificationRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, userID, id uuid.UUID) (bool, error) {
	n, err := r.queries.MarkNotificationRead(ctx, tx, sqlc.MarkNotificationReadParams{ID: id, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return n == 1, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return n, nil
}
