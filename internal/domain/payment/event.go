package payment

import (
	"encoding/json"

	"deal-marketplace/internal/pkg/errs"
)

const EventPaymentSucceeded = "payment_intent.succeeded"

var ErrMalformedEvent = errs.NewValidation("malformed payment event")

type Event struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

// ParseEvent must only be called on a verified payload.
func ParseEvent(payload []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, errs.Wrap(ErrMalformedEvent, err.Error())
	}
	if ev.Type == "" {
		return nil, ErrMalformedEvent
	}
	return &ev, nil
}

func (e *Event) PaymentReference() string { return e.Data.Object.ID }

func (e *Event) Succeeded() bool { return e.Type == EventPaymentSucceeded }
