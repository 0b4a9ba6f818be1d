//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/infra/readstore"
	"deal-marketplace/internal/infra/repository/converter"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	readstoremock "deal-marketplace/internal/mock/readstore"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func orderRows(t *testing.T, o *order.Order) (sqlc.Orders, []sqlc.OrderItems) {
	t.Helper()
	row := sqlc.Orders{
		ID:               o.ID(),
		UserID:           o.UserID(),
		Total:            pgconv.DecimalToNumeric(o.Total()),
		Status:           o.Status().String(),
		PaidAt:           pgconv.TimePtrToPgtype(o.PaidAt()),
		PaymentReference: pgconv.StringPtrToPgtype(o.PaymentRef()),
		CreatedAt:        pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}
	var items []sqlc.OrderItems
	for i, li := range o.Items() {
		p, err := converter.LineItemToCreateParams(o.ID(), i, li)
		require.NoError(t, err)
		items = append(items, sqlc.OrderItems(p))
	}
	return row, items
}

func TestOrderReadStore_FindByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	first := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.UserID = userID
		b.Deals = []*builder.DealBuilder{builder.NewDealBuilder(), builder.NewDealBuilder().WithPrice("3.25")}
		b.Qty = []int{2, 1}
	}).BuildDomain()
	second := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.UserID = userID }).
		WithStatus(order.StatusCompleted).BuildDomain()
	firstRow, firstItems := orderRows(t, first)
	secondRow, secondItems := orderRows(t, second)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
	db := &mockDBTX{}
	mockQueries.EXPECT().ListOrdersByUser(ctx, db, userID).Return([]sqlc.Orders{firstRow, secondRow}, nil)
	mockQueries.EXPECT().ListOrderItemsByOrderIDs(ctx, db, []uuid.UUID{first.ID(), second.ID()}).
		Return(append(firstItems, secondItems...), nil)

	views, err := readstore.NewOrderReadStore(mockQueries, db).FindByUser(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID(), views[0].ID)
	require.Len(t, views[0].Items, 2)
	assert.Equal(t, 2, views[0].Items[0].Qty)
	assert.True(t, first.Total().Equal(views[0].Total))
	assert.Equal(t, first.Items()[1].Snapshot().Title, views[0].Items[1].DealSnapshot.Title)
	assert.Equal(t, "Completed", views[1].Status)
	assert.Len(t, views[1].Items, 1)
}

func TestOrderReadStore_NoOrdersSkipsItemQuery(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
	db := &mockDBTX{}
	mockQueries.EXPECT().ListOrdersByRestaurant(ctx, db, "taqueria-7").Return(nil, nil)

	views, err := readstore.NewOrderReadStore(mockQueries, db).FindByRestaurant(ctx, "taqueria-7")

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestOrderReadStore_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
	db := &mockDBTX{}
	id := uuid.New()
	mockQueries.EXPECT().GetOrderByID(ctx, db, id).Return(sqlc.Orders{}, pgx.ErrNoRows)

	view, err := readstore.NewOrderReadStore(mockQueries, db).FindByID(ctx, id)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
