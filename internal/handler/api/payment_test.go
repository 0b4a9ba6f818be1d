//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"deal-marketplace/internal/domain/payment"
	"deal-marketplace/internal/handler/api"
	resdto "deal-marketplace/internal/handler/dto/response"
	commandsmock "deal-marketplace/internal/mock/commands"
	"deal-marketplace/internal/testutil/httptest"
	"deal-marketplace/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_Webhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
	const sig = "t=1700000000,v1=abc"

	tests := []struct {
		name       string
		result     *commands.ReconcileResult
		err        error
		expectCode int
		expectMsg  string
		expectBody *resdto.WebhookAckResponse
	}{
		{
			name:       "applied event is acknowledged",
			result:     &commands.ReconcileResult{EventID: "evt_1", Type: "payment_intent.succeeded", Applied: true},
			expectCode: http.StatusOK,
			expectBody: &resdto.WebhookAckResponse{Received: true, EventID: "evt_1", Applied: true},
		},
		{
			name:       "replayed event is acknowledged without effect",
			result:     &commands.ReconcileResult{EventID: "evt_1", Type: "payment_intent.succeeded"},
			expectCode: http.StatusOK,
			expectBody: &resdto.WebhookAckResponse{Received: true, EventID: "evt_1"},
		},
		{
			name:       "bad signature returns 400",
			err:        payment.ErrInvalidSignature,
			expectCode: http.StatusBadRequest,
			expectMsg:  "signature invalid",
		},
		{
			name:       "malformed event returns 400",
			err:        payment.ErrMalformedEvent,
			expectCode: http.StatusBadRequest,
			expectMsg:  "malformed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCommands := commandsmock.NewMockPaymentCommands(ctrl)
			router := newTestEngine()
			router.POST("/webhooks/payments", api.NewPaymentHandler(mockCommands).Webhook)

			mockCommands.EXPECT().Reconcile(gomock.Any(), payload, sig).Return(tt.result, tt.err)

			rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/webhooks/payments", payload,
				map[string]string{"Payment-Signature": sig})

			if tt.expectBody != nil {
				var got resdto.WebhookAckResponse
				httptest.AssertSuccessResponse(t, rec, tt.expectCode, &got)
				assert.Equal(t, *tt.expectBody, got)
				return
			}
			httptest.AssertErrorResponse(t, rec, tt.expectCode, tt.expectMsg)
		})
	}
}
