package shared

import (
	"context"
	"time"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/notification"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/restaurant"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Deals() DealRepository
	Orders() OrderRepository
	Favorites() FavoriteRepository
	Notifications() NotificationRepository
	Restaurants() RestaurantRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ProfileByUserID(ctx context.Context, id uuid.UUID) (*ProfileSnapshot, error)
	RestaurantByRestaurantID(ctx context.Context, restaurantID string) (*RestaurantSnapshot, error)
	DealByID(ctx context.Context, id uuid.UUID) (*DealSnapshot, error)
	// DealsForCheckout share-locks the rows until the transaction ends.
	DealsForCheckout(ctx context.Context, ids []uuid.UUID) ([]*DealSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
}

// Conditional writes report false when the guard did not match; callers
// decide whether that is a conflict or a no-op.

type DealRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error
	UpdateContent(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (bool, error)
	Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, t deal.Transition, reason *string, at time.Time) (bool, error)
	DeleteDraft(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	AdvanceStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, target order.Status, at time.Time) (bool, error)
	MarkPaidByReference(ctx context.Context, tx sqlc.DBTX, paymentRef string, at time.Time) (bool, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, tx sqlc.DBTX, userID, dealID uuid.UUID, at time.Time) (bool, error)
	Remove(ctx context.Context, tx sqlc.DBTX, userID, dealID uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error
	MarkRead(ctx context.Context, tx sqlc.DBTX, userID, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *restaurant.Restaurant) error
	Update(ctx context.Context, tx sqlc.DBTX, r *restaurant.Restaurant) error
}
