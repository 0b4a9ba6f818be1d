package queries

import (
	"context"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/pkg/authz"
)

// NotificationListLimit caps the inbox listing.
const NotificationListLimit = 50

type NotificationQueries interface {
	ListMine(ctx context.Context, actor user.Actor) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	notifications NotificationReadStore
	authz         *authz.Authorizer
}

func NewNotificationQueries(notifications NotificationReadStore, az *authz.Authorizer) NotificationQueries {
	return &notificationQueriesImpl{notifications: notifications, authz: az}
}

// ListMine returns unread first, newest first within each group.
func (q *notificationQueriesImpl) ListMine(ctx context.Context, actor user.Actor) ([]*NotificationView, error) {
	if err := q.authz.Authorize(actor.Role, authz.ResourceNotification, authz.ActionRead); err != nil {
		return nil, err
	}
	return q.notifications.FindByUser(ctx, actor.ID, NotificationListLimit)
}
