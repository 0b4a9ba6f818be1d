package repository

import (
	"context"
	"time"

	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/infra/repository/converter"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	AdvanceOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.AdvanceOrderStatusParams) (int64, error)
	MarkOrderPaidByReference(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOrderPaidByReferenceParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	for i, li := range o.Items() {
		params, err := converter.LineItemToCreateParams(o.ID(), i, li)
		if err != nil {
			return infra.WrapRepoErr("failed to encode order item", err, infra.KindDBFailure)
		}
		if err := r.queries.CreateOrderItem(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

// AdvanceStatus compares positions in order.Sequence inside the UPDATE, so
// only strictly forward moves match.
func (r *OrderRepository) AdvanceStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, target order.Status, at time.Time) (bool, error) {
	n, err := r.queries.AdvanceOrderStatus(ctx, tx, sqlc.AdvanceOrderStatusParams{
		Target:    target.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
		ID:        id,
		Sequence:  order.StatusNames(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to advance order status", err)
	}
	return n == 1, nil
}

func (r *OrderRepository) MarkPaidByReference(ctx context.Context, tx sqlc.DBTX, paymentRef string, at time.Time) (bool, error) {
	n, err := r.queries.MarkOrderPaidByReference(ctx, tx, sqlc.MarkOrderPaidByReferenceParams{
		PaidAt:           pgconv.TimeToPgtype(at),
		PaymentReference: pgconv.StringToPgtype(paymentRef),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order paid", err)
	}
	return n > 0, nil
}
