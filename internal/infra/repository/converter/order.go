package converter

import (
	"encoding/json"

	"deal-marketplace/internal/domain/order"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:               o.ID(),
		UserID:           o.UserID(),
		Total:            pgconv.DecimalToNumeric(o.Total()),
		Status:           o.Status().String(),
		PaidAt:           pgconv.TimePtrToPgtype(o.PaidAt()),
		PaymentReference: pgconv.StringPtrToPgtype(o.PaymentRef()),
		CreatedAt:        pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

// LineItemToCreateParams stores the frozen deal as JSONB next to the
// denormalized columns.
func LineItemToCreateParams(orderID uuid.UUID, position int, li order.LineItem) (sqlc.CreateOrderItemParams, error) {
	snap, err := json.Marshal(li.Snapshot())
	if err != nil {
		return sqlc.CreateOrderItemParams{}, errs.Wrap(err, "failed to encode deal snapshot")
	}
	return sqlc.CreateOrderItemParams{
		OrderID:        orderID,
		Position:       int32(position), // #nosec G115 -- bounded by request size
		DealID:         li.DealID(),
		Title:          li.Title(),
		RestaurantID:   li.RestaurantID(),
		RestaurantName: li.RestaurantName(),
		UnitPrice:      pgconv.DecimalToNumeric(li.UnitPrice()),
		Qty:            int32(li.Qty()), // #nosec G115 -- validated positive, request-sized
		DealSnapshot:   snap,
	}, nil
}

func OrderItemRowToLineItem(row sqlc.OrderItems) (order.LineItem, error) {
	var snap order.DealSnapshot
	if err := json.Unmarshal(row.DealSnapshot, &snap); err != nil {
		return order.LineItem{}, errs.Wrap(err, "failed to decode deal snapshot")
	}
	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.ReconstructLineItem(row.DealID, row.Title, row.RestaurantID, row.RestaurantName, price, int(row.Qty), snap), nil
}
