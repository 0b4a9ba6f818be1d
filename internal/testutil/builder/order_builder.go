//go:build unit || e2e

package builder

import (
	"time"

	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Deals      []*DealBuilder
	Qty        []int
	Status     order.Status
	PaidAt     *time.Time
	PaymentRef *string
	CreatedAt  time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Deals:     []*DealBuilder{NewDealBuilder()},
		Qty:       []int{1},
		Status:    order.StatusPlaced,
		CreatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.Status = s
	return b
}

// WithPendingPayment sets a reference that has not been settled yet.
func (b *OrderBuilder) WithPendingPayment(ref string) *OrderBuilder {
	b.PaymentRef = &ref
	b.PaidAt = nil
	return b
}

func (b *OrderBuilder) items() ([]order.LineItem, decimal.Decimal) {
	items := make([]order.LineItem, 0, len(b.Deals))
	total := decimal.Zero
	for i, d := range b.Deals {
		snap := d.BuildSnapshot()
		frozen := order.DealSnapshot{
			ID:              snap.ID,
			RestaurantID:    snap.RestaurantID,
			RestaurantName:  snap.RestaurantName,
			Title:           snap.Title,
			Description:     snap.Description,
			DealType:        snap.DealType,
			DiscountType:    snap.DiscountType,
			Value:           snap.Value,
			Price:           snap.Price,
			ImageURL:        snap.ImageURL,
			Tags:            snap.Tags,
			StartAt:         snap.StartAt,
			EndAt:           snap.EndAt,
			Status:          snap.Status,
			CreatedByUserID: snap.CreatedByUserID,
			CreatedAt:       snap.CreatedAt,
			UpdatedAt:       snap.UpdatedAt,
		}
		price := decimal.Zero
		if snap.Price != nil {
			price = *snap.Price
		}
		li := order.ReconstructLineItem(snap.ID, snap.Title, snap.RestaurantID, snap.RestaurantName, price, b.Qty[i], frozen)
		items = append(items, li)
		total = total.Add(li.Subtotal())
	}
	return items, total
}

func (b *OrderBuilder) BuildDomain() *order.Order {
	items, total := b.items()
	return order.ReconstructOrder(b.ID, b.UserID, items, total, string(b.Status), b.PaidAt, b.PaymentRef, b.CreatedAt, b.CreatedAt)
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	items, total := b.items()
	view := &queries.OrderView{
		ID:               b.ID,
		UserID:           b.UserID,
		Total:            total,
		Status:           string(b.Status),
		PaidAt:           b.PaidAt,
		PaymentReference: b.PaymentRef,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
	for _, li := range items {
		view.Items = append(view.Items, queries.OrderItemView{
			DealID:         li.DealID(),
			Title:          li.Title(),
			RestaurantID:   li.RestaurantID(),
			RestaurantName: li.RestaurantName(),
			UnitPrice:      li.UnitPrice(),
			Qty:            li.Qty(),
			DealSnapshot:   li.Snapshot(),
		})
	}
	return view
}
