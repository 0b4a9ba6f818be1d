package shared

import (
	"slices"
	"time"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands independent of read-side view types.

type ProfileSnapshot struct {
	ID           uuid.UUID
	Role         string
	RestaurantID *string
}

func (s *ProfileSnapshot) ToDomain() (*user.Profile, error) {
	return user.NewProfile(s.ID, s.Role, s.RestaurantID)
}

type RestaurantSnapshot struct {
	ID           uuid.UUID
	RestaurantID string
	OwnerID      uuid.UUID
	Name         string
	Description  *string
	Address      *string
	City         *string
	Phone        *string
	Website      *string
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *RestaurantSnapshot) ToDomain() *restaurant.Restaurant {
	return restaurant.ReconstructRestaurant(s.ID, s.RestaurantID, s.OwnerID, s.Name, restaurant.Profile{
		Description: s.Description,
		Address:     s.Address,
		City:        s.City,
		Phone:       s.Phone,
		Website:     s.Website,
		ImageURL:    s.ImageURL,
	}, s.CreatedAt, s.UpdatedAt)
}

// DealSnapshot is the full persisted field set of a deal.
type DealSnapshot struct {
	ID              uuid.UUID
	RestaurantID    string
	RestaurantName  string
	Title           string
	Description     string
	DealType        string
	DiscountType    string
	Value           *decimal.Decimal
	Price           *decimal.Decimal
	ImageURL        *string
	Tags            []string
	StartAt         *time.Time
	EndAt           *time.Time
	Status          string
	RejectionReason *string
	CreatedByUserID uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *DealSnapshot) ToDomain() *deal.Deal {
	return deal.ReconstructDeal(s.ID, s.RestaurantID, s.RestaurantName,
		s.Title, s.Description, s.DealType, s.DiscountType,
		s.Value, s.Price, s.ImageURL, s.Tags, s.StartAt, s.EndAt,
		s.Status, s.RejectionReason, s.CreatedByUserID, s.CreatedAt, s.UpdatedAt)
}

// OrderSnapshot carries what the fulfillment path needs to authorize and
// notify; line items are reduced to their supplying restaurants.
type OrderSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        string
	RestaurantIDs []string
}

func (s *OrderSnapshot) SuppliedBy(restaurantID string) bool {
	return slices.Contains(s.RestaurantIDs, restaurantID)
}

func (s *OrderSnapshot) CurrentStatus() order.Status {
	return order.Status(s.Status)
}
