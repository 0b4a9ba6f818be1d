package readstore

import (
	"context"

	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/infra/repository/converter"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Orders, error)
	ListOrdersByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID string) ([]sqlc.Orders, error)
	ListOrderItemsByOrderIDs(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.OrderReadStore = (*OrderReadStore)(nil)

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	views, err := r.withItems(ctx, []sqlc.Orders{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *OrderReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user orders", err)
	}
	return r.withItems(ctx, rows)
}

func (r *OrderReadStore) FindByRestaurant(ctx context.Context, restaurantID string) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant orders", err)
	}
	return r.withItems(ctx, rows)
}

// withItems loads every order's lines in one query.
func (r *OrderReadStore) withItems(ctx context.Context, rows []sqlc.Orders) ([]*queries.OrderView, error) {
	out := make([]*queries.OrderView, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*queries.OrderView, len(rows))
	for i, row := range rows {
		total, err := pgconv.DecimalFromNumeric(row.Total)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order total", err, infra.KindDBFailure)
		}
		v := &queries.OrderView{
			ID:               row.ID,
			UserID:           row.UserID,
			Items:            []queries.OrderItemView{},
			Total:            total,
			Status:           row.Status,
			PaidAt:           pgconv.TimePtrFromPgtype(row.PaidAt),
			PaymentReference: pgconv.StringPtrFromPgtype(row.PaymentReference),
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		}
		ids[i] = row.ID
		byID[row.ID] = v
		out = append(out, v)
	}

	items, err := r.queries.ListOrderItemsByOrderIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	for _, it := range items {
		li, err := converter.OrderItemRowToLineItem(it)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order item", err, infra.KindDBFailure)
		}
		v := byID[it.OrderID]
		if v == nil {
			continue
		}
		v.Items = append(v.Items, queries.OrderItemView{
			DealID:         li.DealID(),
			Title:          li.Title(),
			RestaurantID:   li.RestaurantID(),
			RestaurantName: li.RestaurantName(),
			UnitPrice:      li.UnitPrice(),
			Qty:            li.Qty(),
			DealSnapshot:   li.Snapshot(),
		})
	}
	return out, nil
}
