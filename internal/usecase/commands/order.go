package commands

import (
	"context"

	"deal-marketplace/internal/domain/notification"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/pkg/metrics"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.NewNotFound("order not found")

type OrderStatusResult struct {
	ID     uuid.UUID
	Status order.Status
}

type OrderCommands interface {
	AdvanceOrderStatus(ctx context.Context, actor user.Actor, orderID uuid.UUID, status string) (*OrderStatusResult, error)
}

type orderUseCaseImpl struct {
	uow   shared.UnitOfWork
	authz *authz.Authorizer
	clock clock.Clock
}

func NewOrderUseCase(uow shared.UnitOfWork, az *authz.Authorizer, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{uow: uow, authz: az, clock: clk}
}

func (uc *orderUseCaseImpl) AdvanceOrderStatus(ctx context.Context, actor user.Actor, orderID uuid.UUID, status string) (*OrderStatusResult, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceFulfillment, authz.ActionAdvance); err != nil {
		return nil, err
	}
	target, err := order.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rid, err := ownerRestaurant(ctx, tx.Reads(), actor)
		if err != nil {
			return err
		}
		snap, err := tx.Reads().OrderByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		// Orders of other restaurants are not visible to this owner.
		if !snap.SuppliedBy(rid) {
			return ErrOrderNotFound
		}
		if err := snap.CurrentStatus().CanAdvanceTo(target); err != nil {
			return err
		}

		now := uc.clock.Now()
		ok, err := tx.Orders().AdvanceStatus(ctx, tx.DB(), orderID, target, now)
		if err != nil {
			return err
		}
		if !ok {
			return order.ErrIllegalTransition
		}

		n, err := notification.OrderStatusChanged(snap.UserID, orderID, target.String(), now)
		if err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, tx.DB(), n)
	})
	metrics.OrderTransitions.WithLabelValues(target.String(), metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	return &OrderStatusResult{ID: orderID, Status: target}, nil
}
