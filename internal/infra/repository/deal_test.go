//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/infra/repository"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	repositorymock "deal-marketplace/internal/mock/repository"
	"deal-marketplace/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Deal Tests
// =============================================================================

func TestDealRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockDealWriteQueries, *deal.Deal, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: deal created",
			setupMock: func(mock *repositorymock.MockDealWriteQueries, d *deal.Deal, tx sqlc.DBTX) {
				mock.EXPECT().CreateDeal(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateDealParams) error {
						assert.Equal(t, d.ID(), arg.ID)
						assert.Equal(t, "DRAFT", arg.Status)
						assert.Equal(t, d.RestaurantID(), arg.RestaurantID)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockDealWriteQueries, d *deal.Deal, tx sqlc.DBTX) {
				mock.EXPECT().CreateDeal(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: duplicate id",
			setupMock: func(mock *repositorymock.MockDealWriteQueries, d *deal.Deal, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateDeal(ctx, tx, gomock.Any()).Return(dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: restaurant row missing",
			setupMock: func(mock *repositorymock.MockDealWriteQueries, d *deal.Deal, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateDeal(ctx, tx, gomock.Any()).Return(fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDealWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDealRepository(mockQueries)

			d, err := builder.NewDealBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, d, mockDB)

			actualError := repo.Create(ctx, mockDB, d)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Conditional Writes
// =============================================================================

func TestDealRepository_Transition(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	at := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	reason := "Blurry photo"

	testCases := []struct {
		name     string
		affected int64
		err      error
		want     bool
	}{
		{name: "row still in a source state", affected: 1, want: true},
		{name: "lost race", affected: 0, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockDealWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			mockQueries.EXPECT().TransitionDeal(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TransitionDealParams) (int64, error) {
					assert.Equal(t, id, arg.ID)
					assert.Equal(t, "REJECTED", arg.ToStatus)
					assert.Equal(t, []string{"SUBMITTED"}, arg.FromStatuses)
					assert.Equal(t, reason, arg.RejectionReason.String)
					assert.True(t, arg.UpdatedAt.Time.Equal(at))
					return tc.affected, tc.err
				})

			ok, err := repository.NewDealRepository(mockQueries).Transition(ctx, mockDB, id, deal.Reject, &reason, at)

			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestDealRepository_DeleteDraft(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("non-draft row is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDealWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteDraftDeal(ctx, mockDB, id).Return(int64(0), nil)

		ok, err := repository.NewDealRepository(mockQueries).DeleteDraft(ctx, mockDB, id)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no rows error is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDealWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteDraftDeal(ctx, mockDB, id).Return(int64(0), pgx.ErrNoRows)

		_, err := repository.NewDealRepository(mockQueries).DeleteDraft(ctx, mockDB, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
