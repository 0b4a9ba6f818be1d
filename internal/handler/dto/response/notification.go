package response

import (
	"time"

	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	DealID    *uuid.UUID `json:"deal_id,omitempty"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromNotificationViews(vs []*queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		res[i] = &NotificationResponse{
			ID:        v.ID,
			Kind:      v.Kind,
			Message:   v.Message,
			Read:      v.Read,
			DealID:    v.DealID,
			OrderID:   v.OrderID,
			CreatedAt: v.CreatedAt,
		}
	}
	return res
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
