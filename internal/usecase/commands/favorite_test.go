//go:build unit

package commands_test

import (
	"context"
	"testing"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("success: second favorite reports already favorited", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewFavoriteUseCase(f.store, f.authz, f.clock)
		d := f.seedDeal(deal.StatusPublished)

		first, err := uc.Favorite(ctx, f.customer, d.ID)
		require.NoError(t, err)
		assert.False(t, first.AlreadyFavorited)

		second, err := uc.Favorite(ctx, f.customer, d.ID)
		require.NoError(t, err)
		assert.True(t, second.AlreadyFavorited)

		assert.Equal(t, 1, f.store.FavoriteCount(f.customer.ID))
	})

	t.Run("not found: deal is not published", func(t *testing.T) {
		for _, status := range []deal.Status{deal.StatusDraft, deal.StatusSubmitted, deal.StatusRejected} {
			f := newFixture(t)
			uc := commands.NewFavoriteUseCase(f.store, f.authz, f.clock)
			d := f.seedDeal(status)

			_, err := uc.Favorite(ctx, f.customer, d.ID)
			require.ErrorIs(t, err, commands.ErrDealNotFound, status)
			assert.Zero(t, f.store.FavoriteCount(f.customer.ID))
		}
	})

	t.Run("not found: unknown deal", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewFavoriteUseCase(f.store, f.authz, f.clock)

		_, err := uc.Favorite(ctx, f.customer, uuid.New())
		require.ErrorIs(t, err, commands.ErrDealNotFound)
	})

	t.Run("unfavorite is idempotent", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewFavoriteUseCase(f.store, f.authz, f.clock)
		d := f.seedDeal(deal.StatusPublished)

		_, err := uc.Favorite(ctx, f.owner, d.ID)
		require.NoError(t, err)
		require.True(t, f.store.IsFavorite(f.owner.ID, d.ID))

		require.NoError(t, uc.Unfavorite(ctx, f.owner, d.ID))
		require.NoError(t, uc.Unfavorite(ctx, f.owner, d.ID))
		require.NoError(t, uc.Unfavorite(ctx, f.owner, uuid.New()))
		assert.False(t, f.store.IsFavorite(f.owner.ID, d.ID))
	})
}
