package api

import (
	"io"
	"net/http"

	resdto "deal-marketplace/internal/handler/dto/response"
	"deal-marketplace/internal/handler/httperr"
	"deal-marketplace/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Payment-Signature"
	maxWebhookBody  = 1 << 20
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Payment provider webhook
// @Description Signed with Payment-Signature: t=<unix>,v1=<hex hmac>; redelivery is acknowledged
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Payment-Signature header string true "Provider signature"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Router /webhooks/payments [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	// The signature covers the exact bytes, so the body is read raw.
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Reconcile(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(res))
}
