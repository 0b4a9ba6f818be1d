package commands

import (
	"context"
	"time"

	domdeal "deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/pkg/metrics"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var (
	ErrDealUnavailable = errs.NewValidation("not available")
	ErrPaymentRefUsed  = errs.NewConflict("payment reference already used")
)

type CheckoutItem struct {
	DealID uuid.UUID
	Qty    int
}

type CheckoutRequest struct {
	Items      []CheckoutItem
	PaymentRef *string
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, actor user.Actor, req CheckoutRequest) (*order.Order, error)
}

type checkoutUseCaseImpl struct {
	uow   shared.UnitOfWork
	authz *authz.Authorizer
	clock clock.Clock
}

func NewCheckoutUseCase(uow shared.UnitOfWork, az *authz.Authorizer, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, authz: az, clock: clk}
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, actor user.Actor, req CheckoutRequest) (*order.Order, error) {
	o, err := uc.checkout(ctx, actor, req)
	metrics.Checkouts.WithLabelValues(metrics.Outcome(err)).Inc()
	return o, err
}

func (uc *checkoutUseCaseImpl) checkout(ctx context.Context, actor user.Actor, req CheckoutRequest) (*order.Order, error) {
	if err := uc.authz.Authorize(actor.Role, authz.ResourceOrder, authz.ActionCheckout); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, order.ErrItemsRequired
	}
	ids := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]struct{}, len(req.Items))
	for _, it := range req.Items {
		if it.DealID == uuid.Nil || it.Qty < 1 {
			return nil, order.ErrInvalidQuantity
		}
		if _, dup := seen[it.DealID]; !dup {
			seen[it.DealID] = struct{}{}
			ids = append(ids, it.DealID)
		}
	}

	var placed *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snaps, err := tx.Reads().DealsForCheckout(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*shared.DealSnapshot, len(snaps))
		for _, s := range snaps {
			byID[s.ID] = s
		}

		items := make([]order.LineItem, 0, len(req.Items))
		for _, it := range req.Items {
			s, ok := byID[it.DealID]
			if !ok || s.Status != string(domdeal.StatusPublished) {
				return errs.Wrapf(ErrDealUnavailable, "deal %s", it.DealID)
			}
			frozen, err := freezeDeal(s)
			if err != nil {
				return err
			}
			li, err := order.NewLineItem(frozen, it.Qty)
			if err != nil {
				return err
			}
			items = append(items, li)
		}

		o, err := order.NewOrder(uuid.New(), actor.ID, items, req.PaymentRef, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			if req.PaymentRef != nil && infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPaymentRefUsed
			}
			return err
		}
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// decimal.Decimal and time.Time keep their state in unexported fields, which
// a field-wise deep copy would drop.
var freezeOpts = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: &decimal.Decimal{},
			DstType: &decimal.Decimal{},
			Fn: func(src interface{}) (interface{}, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return (*decimal.Decimal)(nil), nil
				}
				v := *d
				return &v, nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: &time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				t, _ := src.(*time.Time)
				if t == nil {
					return (*time.Time)(nil), nil
				}
				v := *t
				return &v, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return src, nil
			},
		},
	},
}

// freezeDeal copies the live deal into a snapshot that shares no memory
// with it.
func freezeDeal(s *shared.DealSnapshot) (order.DealSnapshot, error) {
	var frozen order.DealSnapshot
	if err := copier.CopyWithOption(&frozen, s, freezeOpts); err != nil {
		return order.DealSnapshot{}, errs.Wrap(err, "failed to snapshot deal")
	}
	return frozen, nil
}
