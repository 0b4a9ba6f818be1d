package queries

import (
	"time"

	"deal-marketplace/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealView is read-optimized deal data; it is also the cached form.
type DealView struct {
	ID              uuid.UUID        `json:"id"`
	RestaurantID    string           `json:"restaurant_id"`
	RestaurantName  string           `json:"restaurant_name"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DealType        string           `json:"deal_type"`
	DiscountType    string           `json:"discount_type"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty"`
	Tags            []string         `json:"tags"`
	StartAt         *time.Time       `json:"start_at,omitempty"`
	EndAt           *time.Time       `json:"end_at,omitempty"`
	Status          string           `json:"status"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	CreatedByUserID uuid.UUID        `json:"created_by_user_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type DealPage struct {
	Items      []*DealView `json:"items"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
}

type OrderItemView struct {
	DealID         uuid.UUID          `json:"deal_id"`
	Title          string             `json:"title"`
	RestaurantID   string             `json:"restaurant_id"`
	RestaurantName string             `json:"restaurant_name"`
	UnitPrice      decimal.Decimal    `json:"unit_price"`
	Qty            int                `json:"qty"`
	DealSnapshot   order.DealSnapshot `json:"deal_snapshot"`
}

type OrderView struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	Items            []OrderItemView `json:"items"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	PaymentReference *string         `json:"payment_reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type FavoriteView struct {
	FavoritedAt time.Time `json:"favorited_at"`
	Deal        DealView  `json:"deal"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	DealID    *uuid.UUID `json:"deal_id,omitempty"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type RestaurantView struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Address      *string   `json:"address,omitempty"`
	City         *string   `json:"city,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Website      *string   `json:"website,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileView is the marketplace binding of a user account.
type ProfileView struct {
	ID           uuid.UUID `json:"id"`
	Role         string    `json:"role"`
	RestaurantID *string   `json:"restaurant_id,omitempty"`
}
