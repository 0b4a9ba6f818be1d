//go:build unit || e2e

package builder

import (
	"time"

	"deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/usecase/queries"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID           uuid.UUID
	RestaurantID string
	OwnerID      uuid.UUID
	Name         string
	City         *string
	Address      *string
	CreatedAt    time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	city := "Austin"
	addr := "701 E 6th St"
	return &RestaurantBuilder{
		ID:           uuid.New(),
		RestaurantID: "taqueria-7",
		OwnerID:      uuid.New(),
		Name:         "Taqueria Siete",
		City:         &city,
		Address:      &addr,
		CreatedAt:    time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(b)
	return b
}

func (b *RestaurantBuilder) Profile() restaurant.Profile {
	return restaurant.Profile{City: b.City, Address: b.Address}
}

// OwnerProfile binds OwnerID to this restaurant.
func (b *RestaurantBuilder) OwnerProfile() shared.ProfileSnapshot {
	rid := b.RestaurantID
	return shared.ProfileSnapshot{ID: b.OwnerID, Role: string(user.RoleOwner), RestaurantID: &rid}
}

func (b *RestaurantBuilder) Owner() user.Actor {
	return user.NewActor(b.OwnerID, user.RoleOwner)
}

func (b *RestaurantBuilder) BuildSnapshot() shared.RestaurantSnapshot {
	return shared.RestaurantSnapshot{
		ID:           b.ID,
		RestaurantID: b.RestaurantID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		City:         b.City,
		Address:      b.Address,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *RestaurantBuilder) BuildView() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:           b.ID,
		RestaurantID: b.RestaurantID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		City:         b.City,
		Address:      b.Address,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}
