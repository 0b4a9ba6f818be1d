package commands

import (
	"context"
	"log/slog"

	"deal-marketplace/internal/domain/payment"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/pkg/metrics"
	"deal-marketplace/internal/usecase/shared"
)

type ReconcileResult struct {
	EventID string
	Type    string
	// Applied is false for replays, unknown references and ignored kinds.
	Applied bool
}

type PaymentCommands interface {
	Reconcile(ctx context.Context, payload []byte, signature string) (*ReconcileResult, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	verifier *payment.Verifier
	clock    clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, verifier *payment.Verifier, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, verifier: verifier, clock: clk}
}

// Reconcile verifies the raw payload before decoding it. Settlement is a
// conditional write on paidAt, so redelivery is harmless.
func (uc *paymentUseCaseImpl) Reconcile(ctx context.Context, payload []byte, signature string) (*ReconcileResult, error) {
	now := uc.clock.Now()
	if err := uc.verifier.Verify(payload, signature, now); err != nil {
		metrics.PaymentEvents.WithLabelValues("unverified", metrics.OutcomeRejected).Inc()
		return nil, err
	}

	ev, err := payment.ParseEvent(payload)
	if err != nil {
		metrics.PaymentEvents.WithLabelValues("malformed", metrics.OutcomeRejected).Inc()
		return nil, err
	}
	res := &ReconcileResult{EventID: ev.ID, Type: ev.Type}

	ref := ev.PaymentReference()
	if !ev.Succeeded() || ref == "" {
		metrics.PaymentEvents.WithLabelValues(ev.Type, metrics.OutcomeIgnored).Inc()
		return res, nil
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied, err := tx.Orders().MarkPaidByReference(ctx, tx.DB(), ref, now)
		if err != nil {
			return err
		}
		res.Applied = applied
		return nil
	})
	if err != nil {
		metrics.PaymentEvents.WithLabelValues(ev.Type, metrics.OutcomeError).Inc()
		return nil, err
	}

	outcome := metrics.OutcomeOK
	if !res.Applied {
		outcome = metrics.OutcomeIgnored
		slog.Info("payment event acknowledged without effect", "event_id", ev.ID, "payment_reference", ref)
	}
	metrics.PaymentEvents.WithLabelValues(ev.Type, outcome).Inc()
	return res, nil
}
