package commands

import (
	"context"
	"log/slog"

	domdeal "deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/notification"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/pkg/metrics"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound             = errs.NewNotFound("deal not found")
	ErrDealNotOwned             = errs.NewAuthorization("deal belongs to another restaurant")
	ErrRestaurantProfileMissing = errs.NewNotFound("restaurant profile not found")
)

type DealCommands interface {
	CreateDeal(ctx context.Context, actor user.Actor, fields domdeal.Fields) (*domdeal.Deal, error)
	UpdateDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID, patch domdeal.Patch) (*domdeal.Deal, error)
	DeleteDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID) error
	SubmitDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID) (*domdeal.Deal, error)
	ApproveDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID) (*domdeal.Deal, error)
	RejectDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID, reason string) (*domdeal.Deal, error)
}

type dealUseCaseImpl struct {
	uow   shared.UnitOfWork
	authz *authz.Authorizer
	clock clock.Clock
}

func NewDealUseCase(uow shared.UnitOfWork, az *authz.Authorizer, clk clock.Clock) DealCommands {
	return &dealUseCaseImpl{uow: uow, authz: az, clock: clk}
}

func (uc *dealUseCaseImpl) CreateDeal(ctx context.Context, actor user.Actor, fields domdeal.Fields) (*domdeal.Deal, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceDeal, authz.ActionWrite); err != nil {
		return nil, err
	}

	var created *domdeal.Deal
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rid, err := ownerRestaurant(ctx, tx.Reads(), actor)
		if err != nil {
			return err
		}
		rest, err := tx.Reads().RestaurantByRestaurantID(ctx, rid)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRestaurantProfileMissing
			}
			return err
		}

		d, err := domdeal.NewDeal(uuid.New(), rid, rest.Name, actor.ID, fields, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Deals().Create(ctx, tx.DB(), d); err != nil {
			return err
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *dealUseCaseImpl) UpdateDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID, patch domdeal.Patch) (*domdeal.Deal, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceDeal, authz.ActionWrite); err != nil {
		return nil, err
	}

	var updated *domdeal.Deal
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := loadOwnedDeal(ctx, tx.Reads(), actor, dealID)
		if err != nil {
			return err
		}
		if err := d.Edit(patch, uc.clock.Now()); err != nil {
			return err
		}
		ok, err := tx.Deals().UpdateContent(ctx, tx.DB(), d)
		if err != nil {
			return err
		}
		if !ok {
			return domdeal.ErrNotEditable
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *dealUseCaseImpl) DeleteDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID) error {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceDeal, authz.ActionWrite); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := loadOwnedDeal(ctx, tx.Reads(), actor, dealID)
		if err != nil {
			return err
		}
		if err := d.CheckDeletable(); err != nil {
			return err
		}
		ok, err := tx.Deals().DeleteDraft(ctx, tx.DB(), dealID)
		if err != nil {
			return err
		}
		if !ok {
			return domdeal.ErrNotDeletable
		}
		return nil
	})
}

func (uc *dealUseCaseImpl) SubmitDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID) (*domdeal.Deal, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceDeal, authz.ActionSubmit); err != nil {
		return nil, err
	}

	var submitted *domdeal.Deal
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := loadOwnedDeal(ctx, tx.Reads(), actor, dealID)
		if err != nil {
			return err
		}
		if err := uc.apply(ctx, tx, d, domdeal.Submit, ""); err != nil {
			return err
		}
		submitted = d
		return nil
	})
	metrics.DealTransitions.WithLabelValues(domdeal.Submit.Name, metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	return submitted, nil
}

func (uc *dealUseCaseImpl) ApproveDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID) (*domdeal.Deal, error) {
	return uc.moderate(ctx, actor, dealID, domdeal.Approve, authz.ActionApprove, "")
}

func (uc *dealUseCaseImpl) RejectDeal(ctx context.Context, actor user.Actor, dealID uuid.UUID, reason string) (*domdeal.Deal, error) {
	return uc.moderate(ctx, actor, dealID, domdeal.Reject, authz.ActionReject, reason)
}

// moderate applies an admin decision and records the creator's notification
// in the same transaction as the status write.
func (uc *dealUseCaseImpl) moderate(ctx context.Context, actor user.Actor, dealID uuid.UUID, t domdeal.Transition, action, reason string) (*domdeal.Deal, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceModeration, action); err != nil {
		return nil, err
	}
	if t.To == domdeal.StatusRejected {
		r, err := domdeal.NewRejectionReason(reason)
		if err != nil {
			return nil, err
		}
		reason = r
	}

	var moderated *domdeal.Deal
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := loadDeal(ctx, tx.Reads(), dealID)
		if err != nil {
			return err
		}
		if err := uc.apply(ctx, tx, d, t, reason); err != nil {
			return err
		}

		n, err := moderationNotice(d)
		if err != nil {
			return err
		}
		if err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
			return err
		}
		moderated = d
		return nil
	})
	metrics.DealTransitions.WithLabelValues(t.Name, metrics.Outcome(err)).Inc()
	if err != nil {
		if errs.Is(err, errs.ErrConflict) {
			slog.Info("moderation lost to a concurrent decision", "deal_id", dealID, "transition", t.Name)
		}
		return nil, err
	}
	return moderated, nil
}

// apply checks the edge in memory, then lets the store re-check it
// atomically so a concurrent transition surfaces as a conflict.
func (uc *dealUseCaseImpl) apply(ctx context.Context, tx shared.Tx, d *domdeal.Deal, t domdeal.Transition, reason string) error {
	now := uc.clock.Now()
	if err := d.Apply(t, reason, now); err != nil {
		return err
	}
	ok, err := tx.Deals().Transition(ctx, tx.DB(), d.ID(), t, d.RejectionReason(), now)
	if err != nil {
		return err
	}
	if !ok {
		return domdeal.ErrIllegalTransition
	}
	return nil
}

func moderationNotice(d *domdeal.Deal) (*notification.Notification, error) {
	if d.Status() == domdeal.StatusRejected {
		return notification.DealRejected(d.CreatedBy(), d.ID(), d.Title().String(), *d.RejectionReason(), d.UpdatedAt())
	}
	return notification.DealApproved(d.CreatedBy(), d.ID(), d.Title().String(), d.UpdatedAt())
}

func loadDeal(ctx context.Context, reads shared.CommandReads, dealID uuid.UUID) (*domdeal.Deal, error) {
	snap, err := reads.DealByID(ctx, dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return snap.ToDomain(), nil
}

func loadOwnedDeal(ctx context.Context, reads shared.CommandReads, actor user.Actor, dealID uuid.UUID) (*domdeal.Deal, error) {
	rid, err := ownerRestaurant(ctx, reads, actor)
	if err != nil {
		return nil, err
	}
	d, err := loadDeal(ctx, reads, dealID)
	if err != nil {
		return nil, err
	}
	if !d.OwnedBy(rid) {
		return nil, ErrDealNotOwned
	}
	return d, nil
}
