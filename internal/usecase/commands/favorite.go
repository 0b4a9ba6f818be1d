package commands

import (
	"context"

	domdeal "deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavoriteResult struct {
	DealID           uuid.UUID
	AlreadyFavorited bool
}

type FavoriteCommands interface {
	Favorite(ctx context.Context, actor user.Actor, dealID uuid.UUID) (*FavoriteResult, error)
	Unfavorite(ctx context.Context, actor user.Actor, dealID uuid.UUID) error
}

type favoriteUseCaseImpl struct {
	uow   shared.UnitOfWork
	authz *authz.Authorizer
	clock clock.Clock
}

func NewFavoriteUseCase(uow shared.UnitOfWork, az *authz.Authorizer, clk clock.Clock) FavoriteCommands {
	return &favoriteUseCaseImpl{uow: uow, authz: az, clock: clk}
}

func (uc *favoriteUseCaseImpl) Favorite(ctx context.Context, actor user.Actor, dealID uuid.UUID) (*FavoriteResult, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceFavorite, authz.ActionWrite); err != nil {
		return nil, err
	}

	res := &FavoriteResult{DealID: dealID}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().DealByID(ctx, dealID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDealNotFound
			}
			return err
		}
		if snap.Status != string(domdeal.StatusPublished) {
			return ErrDealNotFound
		}

		created, err := tx.Favorites().Add(ctx, tx.DB(), actor.ID, dealID, uc.clock.Now())
		if err != nil {
			return err
		}
		res.AlreadyFavorited = !created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *favoriteUseCaseImpl) Unfavorite(ctx context.Context, actor user.Actor, dealID uuid.UUID) error {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceFavorite, authz.ActionWrite); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favorites().Remove(ctx, tx.DB(), actor.ID, dealID)
	})
}
