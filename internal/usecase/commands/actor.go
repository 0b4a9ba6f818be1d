package commands

import (
	"context"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/usecase/shared"
)

// ownerRestaurant resolves the restaurant the calling owner is bound to.
func ownerRestaurant(ctx context.Context, reads shared.CommandReads, actor user.Actor) (string, error) {
	snap, err := reads.ProfileByUserID(ctx, actor.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", user.ErrOwnerRestaurantRequired
		}
		return "", err
	}
	profile, err := snap.ToDomain()
	if err != nil {
		return "", err
	}
	rid, ok := profile.RestaurantID()
	if !ok || profile.Role() != user.RoleOwner {
		return "", user.ErrOwnerRestaurantRequired
	}
	return rid, nil
}
