package response

import "deal-marketplace/internal/usecase/commands"

type WebhookAckResponse struct {
	Received bool   `json:"received"`
	EventID  string `json:"event_id"`
	Applied  bool   `json:"applied"`
}

func FromReconcileResult(r *commands.ReconcileResult) *WebhookAckResponse {
	return &WebhookAckResponse{Received: true, EventID: r.EventID, Applied: r.Applied}
}
