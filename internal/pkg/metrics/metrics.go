// Package metrics registers the marketplace's domain counters.
package metrics

import (
	"deal-marketplace/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeIgnored  = "ignored"
	OutcomeError    = "error"
)

var (
	DealTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_deal_transitions_total",
			Help: "Deal moderation transitions by name and outcome",
		},
		[]string{"transition", "outcome"},
	)

	Checkouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_checkouts_total",
			Help: "Checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	OrderTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_order_transitions_total",
			Help: "Order fulfillment transitions by target status and outcome",
		},
		[]string{"status", "outcome"},
	)

	PaymentEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_payment_events_total",
			Help: "Payment provider events by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	DealCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_deal_cache_lookups_total",
			Help: "Published deal cache lookups by result",
		},
		[]string{"result"},
	)
)

// Outcome buckets an operation result into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errs.Is(err, errs.ErrConflict):
		return OutcomeConflict
	case errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrAuthorization),
		errs.Is(err, errs.ErrNotFound),
		errs.Is(err, errs.ErrAuthentication):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}
