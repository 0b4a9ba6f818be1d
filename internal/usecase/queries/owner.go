package queries

import (
	"context"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
)

func ownerRestaurant(ctx context.Context, profiles ProfileReadStore, actor user.Actor) (string, error) {
	view, err := profiles.FindProfile(ctx, actor.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", user.ErrOwnerRestaurantRequired
		}
		return "", err
	}
	if view.Role != string(user.RoleOwner) || view.RestaurantID == nil || *view.RestaurantID == "" {
		return "", user.ErrOwnerRestaurantRequired
	}
	return *view.RestaurantID, nil
}
