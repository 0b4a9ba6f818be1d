package response

import (
	"time"

	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	DealID         uuid.UUID          `json:"deal_id"`
	Title          string             `json:"title"`
	RestaurantID   string             `json:"restaurant_id"`
	RestaurantName string             `json:"restaurant_name"`
	UnitPrice      decimal.Decimal    `json:"unit_price"`
	Qty            int                `json:"qty"`
	DealSnapshot   order.DealSnapshot `json:"deal_snapshot"`
}

type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	UserID           uuid.UUID           `json:"user_id"`
	Items            []OrderItemResponse `json:"items"`
	Total            decimal.Decimal     `json:"total"`
	Status           string              `json:"status"`
	PaidAt           *time.Time          `json:"paid_at,omitempty"`
	PaymentReference *string             `json:"payment_reference,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromOrder(o *order.Order) *OrderResponse {
	items := o.Items()
	res := &OrderResponse{
		ID:               o.ID(),
		UserID:           o.UserID(),
		Items:            make([]OrderItemResponse, len(items)),
		Total:            o.Total(),
		Status:           o.Status().String(),
		PaidAt:           o.PaidAt(),
		PaymentReference: o.PaymentRef(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
	for i, li := range items {
		res.Items[i] = OrderItemResponse{
			DealID:         li.DealID(),
			Title:          li.Title(),
			RestaurantID:   li.RestaurantID(),
			RestaurantName: li.RestaurantName(),
			UnitPrice:      li.UnitPrice(),
			Qty:            li.Qty(),
			DealSnapshot:   li.Snapshot(),
		}
	}
	return res
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	res := &OrderResponse{
		ID:               v.ID,
		UserID:           v.UserID,
		Items:            make([]OrderItemResponse, len(v.Items)),
		Total:            v.Total,
		Status:           v.Status,
		PaidAt:           v.PaidAt,
		PaymentReference: v.PaymentReference,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	for i, it := range v.Items {
		res.Items[i] = OrderItemResponse(it)
	}
	return res
}

func FromOrderViews(vs []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(vs))
	for i, v := range vs {
		res[i] = FromOrderView(v)
	}
	return res
}

type OrderStatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func FromOrderStatus(r *commands.OrderStatusResult) *OrderStatusResponse {
	return &OrderStatusResponse{ID: r.ID, Status: r.Status.String()}
}
