//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/infra/repository"
	repositorymock "deal-marketplace/internal/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFavoriteRepository_Add(t *testing.T) {
	ctx := context.Background()
	userID, dealID := uuid.New(), uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		want       bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "new pair", affected: 1, want: true},
		{name: "existing pair does nothing", affected: 0, want: false},
		{name: "database failure", err: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockFavoriteWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().InsertFavorite(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.err)

			added, err := repository.NewFavoriteRepository(mockQueries).Add(ctx, mockDB, userID, dealID, time.Now())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, added)
		})
	}
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	userID, id := uuid.New(), uuid.New()

	mockQueries.EXPECT().MarkNotificationRead(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
	mockQueries.EXPECT().MarkAllNotificationsRead(ctx, mockDB, userID).Return(int64(4), nil)

	repo := repository.NewNotificationRepository(mockQueries)
	ok, err := repo.MarkRead(ctx, mockDB, userID, id)
	require.NoError(t, err)
	assert.False(t, ok, "someone else's notification does not match")

	n, err := repo.MarkAllRead(ctx, mockDB, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
