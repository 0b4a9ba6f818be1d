package request

import (
	"deal-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutItemRequest struct {
	DealID uuid.UUID `json:"deal_id" binding:"required"`
	Qty    int       `json:"qty"`
}

type CheckoutRequest struct {
	Items      []CheckoutItemRequest `json:"items"`
	PaymentRef *string               `json:"payment_ref"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	items := make([]commands.CheckoutItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.CheckoutItem{DealID: it.DealID, Qty: it.Qty}
	}
	return commands.CheckoutRequest{Items: items, PaymentRef: r.PaymentRef}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
