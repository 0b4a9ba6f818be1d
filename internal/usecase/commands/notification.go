package commands

import (
	"context"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.NewNotFound("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor user.Actor, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, actor user.Actor) (int64, error)
}

type notificationUseCaseImpl struct {
	uow   shared.UnitOfWork
	authz *authz.Authorizer
}

func NewNotificationUseCase(uow shared.UnitOfWork, az *authz.Authorizer) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow, authz: az}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, actor user.Actor, notificationID uuid.UUID) error {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceNotification, authz.ActionWrite); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Notifications().MarkRead(ctx, tx.DB(), actor.ID, notificationID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, actor user.Actor) (int64, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceNotification, authz.ActionWrite); err != nil {
		return 0, err
	}
	var updated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.ID)
		updated = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
