//go:build unit || e2e

package builder

import (
	"time"

	domdeal "deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/usecase/queries"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DealBuilder struct {
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
	Status          domdeal.Status
	RejectionReason *string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
}

func NewDealBuilder() *DealBuilder {
	value := decimal.NewFromInt(20)
	price := decimal.RequireFromString("10.00")
	return &DealBuilder{
		ID:             uuid.New(),
		RestaurantID:   "taqueria-7",
		RestaurantName: "Taqueria Siete",
		Title:          "Two tacos lunch",
		Description:    "Two street tacos with a drink",
		DealType:       string(domdeal.TypeLunch),
		DiscountType:   string(domdeal.DiscountPercent),
		Value:          &value,
		Price:          &price,
		Tags:           []string{"tacos", "lunch"},
		Status:         domdeal.StatusDraft,
		CreatedBy:      uuid.New(),
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) WithStatus(s domdeal.Status) *DealBuilder {
	b.Status = s
	return b
}

func (b *DealBuilder) WithPrice(s string) *DealBuilder {
	if s == "" {
		b.Price = nil
		return b
	}
	p := decimal.RequireFromString(s)
	b.Price = &p
	return b
}

func (b *DealBuilder) WithRestaurant(id, name string) *DealBuilder {
	b.RestaurantID = id
	b.RestaurantName = name
	return b
}

func (b *DealBuilder) Fields() domdeal.Fields {
	return domdeal.Fields{
		Title:        b.Title,
		Description:  b.Description,
		DealType:     b.DealType,
		DiscountType: b.DiscountType,
		Value:        b.Value,
		Price:        b.Price,
		ImageURL:     b.ImageURL,
		Tags:         b.Tags,
		StartAt:      b.StartAt,
		EndAt:        b.EndAt,
	}
}

// BuildDomain runs creation rules and returns a DRAFT deal.
func (b *DealBuilder) BuildDomain() (*domdeal.Deal, error) {
	return domdeal.NewDeal(b.ID, b.RestaurantID, b.RestaurantName, b.CreatedBy, b.Fields(), b.CreatedAt)
}

// BuildReconstructed skips validation and honours Status.
func (b *DealBuilder) BuildReconstructed() *domdeal.Deal {
	return domdeal.ReconstructDeal(b.ID, b.RestaurantID, b.RestaurantName,
		b.Title, b.Description, b.DealType, b.DiscountType,
		b.Value, b.Price, b.ImageURL, b.Tags, b.StartAt, b.EndAt,
		string(b.Status), b.RejectionReason, b.CreatedBy, b.CreatedAt, b.CreatedAt)
}

func (b *DealBuilder) BuildSnapshot() *shared.DealSnapshot {
	return &shared.DealSnapshot{
		ID:              b.ID,
		RestaurantID:    b.RestaurantID,
		RestaurantName:  b.RestaurantName,
		Title:           b.Title,
		Description:     b.Description,
		DealType:        b.DealType,
		DiscountType:    b.DiscountType,
		Value:           b.Value,
		Price:           b.Price,
		ImageURL:        b.ImageURL,
		Tags:            b.Tags,
		StartAt:         b.StartAt,
		EndAt:           b.EndAt,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		CreatedByUserID: b.CreatedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *DealBuilder) BuildView() *queries.DealView {
	return &queries.DealView{
		ID:              b.ID,
		RestaurantID:    b.RestaurantID,
		RestaurantName:  b.RestaurantName,
		Title:           b.Title,
		Description:     b.Description,
		DealType:        b.DealType,
		DiscountType:    b.DiscountType,
		Value:           b.Value,
		Price:           b.Price,
		ImageURL:        b.ImageURL,
		Tags:            b.Tags,
		StartAt:         b.StartAt,
		EndAt:           b.EndAt,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		CreatedByUserID: b.CreatedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}
