package queries

import (
	"context"

	"github.com/google/uuid"
)

type DealReadStore interface {
	SearchPublished(ctx context.Context, f DealFilter) ([]*DealView, error)
	CountPublished(ctx context.Context, f DealFilter) (int64, error)
	FindPublishedByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	FindByRestaurant(ctx context.Context, restaurantID string) ([]*DealView, error)
	FindByStatusOldestFirst(ctx context.Context, status string) ([]*DealView, error)
}

// PublishedDealCache fronts single published-deal lookups.
type PublishedDealCache interface {
	GetOrLoad(ctx context.Context, id uuid.UUID, load func(context.Context) (*DealView, error)) (*DealView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	FindByRestaurant(ctx context.Context, restaurantID string) ([]*OrderView, error)
}

type FavoriteReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error)
}

type NotificationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
}

type RestaurantReadStore interface {
	FindByRestaurantID(ctx context.Context, restaurantID string) (*RestaurantView, error)
}

type ProfileReadStore interface {
	FindProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}
