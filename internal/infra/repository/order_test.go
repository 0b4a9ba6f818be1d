//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/infra/repository"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	repositorymock "deal-marketplace/internal/mock/repository"
	"deal-marketplace/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()
	o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.Deals = []*builder.DealBuilder{builder.NewDealBuilder(), builder.NewDealBuilder().WithPrice("2.00")}
		b.Qty = []int{1, 3}
	}).BuildDomain()

	t.Run("success: header then every line in position order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		gomock.InOrder(
			mockQueries.EXPECT().CreateOrder(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderParams) error {
					assert.Equal(t, o.ID(), arg.ID)
					assert.Equal(t, "Placed", arg.Status)
					return nil
				}),
			mockQueries.EXPECT().CreateOrderItem(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
					assert.Equal(t, int32(0), arg.Position)
					assert.Equal(t, int32(1), arg.Qty)
					assert.NotEmpty(t, arg.DealSnapshot)
					return nil
				}),
			mockQueries.EXPECT().CreateOrderItem(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
					assert.Equal(t, int32(1), arg.Position)
					assert.Equal(t, int32(3), arg.Qty)
					return nil
				}),
		)

		require.NoError(t, repository.NewOrderRepository(mockQueries).Create(ctx, mockDB, o))
	})

	t.Run("error: failed line stops the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		check := &pgconn.PgError{Code: "23514", Message: "violates check constraint"}

		mockQueries.EXPECT().CreateOrder(ctx, mockDB, gomock.Any()).Return(nil)
		mockQueries.EXPECT().CreateOrderItem(ctx, mockDB, gomock.Any()).Return(check)

		err := repository.NewOrderRepository(mockQueries).Create(ctx, mockDB, o)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})
}

func TestOrderRepository_AdvanceStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	id := uuid.New()

	mockQueries.EXPECT().AdvanceOrderStatus(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.AdvanceOrderStatusParams) (int64, error) {
			assert.Equal(t, "Ready", arg.Target)
			assert.Equal(t, []string{"Placed", "Preparing", "Ready", "Completed"}, arg.Sequence)
			return 0, nil
		})

	ok, err := repository.NewOrderRepository(mockQueries).AdvanceStatus(ctx, mockDB, id, order.StatusReady, time.Now())

	require.NoError(t, err)
	assert.False(t, ok, "a row already at or past the target is not updated")
}

func TestOrderRepository_MarkPaidByReference(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		affected int64
		want     bool
	}{{0, false}, {1, true}, {2, true}} {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().MarkOrderPaidByReference(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkOrderPaidByReferenceParams) (int64, error) {
				assert.Equal(t, "pi_1", arg.PaymentReference.String)
				return tc.affected, nil
			})

		ok, err := repository.NewOrderRepository(mockQueries).MarkPaidByReference(ctx, mockDB, "pi_1", time.Now())

		require.NoError(t, err)
		assert.Equal(t, tc.want, ok)
	}
}
