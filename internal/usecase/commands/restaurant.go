package commands

import (
	"context"

	domrest "deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/shared"
)

var (
	ErrRestaurantExists   = errs.NewConflict("restaurant already exists")
	ErrRestaurantNotFound = errs.NewNotFound("restaurant not found")
)

type RestaurantInput struct {
	Name    string
	Profile domrest.Profile
}

type RestaurantCommands interface {
	CreateMyRestaurant(ctx context.Context, actor user.Actor, in RestaurantInput) (*domrest.Restaurant, error)
	UpdateMyRestaurant(ctx context.Context, actor user.Actor, patch domrest.Patch) (*domrest.Restaurant, error)
}

type restaurantUseCaseImpl struct {
	uow   shared.UnitOfWork
	authz *authz.Authorizer
	clock clock.Clock
}

func NewRestaurantUseCase(uow shared.UnitOfWork, az *authz.Authorizer, clk clock.Clock) RestaurantCommands {
	return &restaurantUseCaseImpl{uow: uow, authz: az, clock: clk}
}

func (uc *restaurantUseCaseImpl) CreateMyRestaurant(ctx context.Context, actor user.Actor, in RestaurantInput) (*domrest.Restaurant, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceRestaurant, authz.ActionWrite); err != nil {
		return nil, err
	}

	var created *domrest.Restaurant
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rid, err := ownerRestaurant(ctx, tx.Reads(), actor)
		if err != nil {
			return err
		}
		_, err = tx.Reads().RestaurantByRestaurantID(ctx, rid)
		switch {
		case err == nil:
			return ErrRestaurantExists
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		r, err := domrest.NewRestaurant(rid, actor.ID, in.Name, in.Profile, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Restaurants().Create(ctx, tx.DB(), r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrRestaurantExists
			}
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *restaurantUseCaseImpl) UpdateMyRestaurant(ctx context.Context, actor user.Actor, patch domrest.Patch) (*domrest.Restaurant, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceRestaurant, authz.ActionWrite); err != nil {
		return nil, err
	}

	var updated *domrest.Restaurant
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rid, err := ownerRestaurant(ctx, tx.Reads(), actor)
		if err != nil {
			return err
		}
		snap, err := tx.Reads().RestaurantByRestaurantID(ctx, rid)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}
		r := snap.ToDomain()
		if err := r.Update(patch, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Restaurants().Update(ctx, tx.DB(), r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
