//go:build unit

package commands_test

import (
	"context"
	"testing"

	domrest "deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantCommands(t *testing.T) {
	ctx := context.Background()

	newOwner := func(f *fixture, rid string) user.Actor {
		a := user.NewActor(uuid.New(), user.RoleOwner)
		f.store.PutProfile(shared.ProfileSnapshot{ID: a.ID, Role: string(user.RoleOwner), RestaurantID: &rid})
		return a
	}

	t.Run("create: first restaurant for the owner", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRestaurantUseCase(f.store, f.authz, f.clock)
		owner := newOwner(f, "noodle-bar")

		r, err := uc.CreateMyRestaurant(ctx, owner, commands.RestaurantInput{Name: "  Noodle Bar "})
		require.NoError(t, err)
		assert.Equal(t, "Noodle Bar", r.Name())
		assert.Equal(t, "noodle-bar", r.RestaurantID())
		assert.Equal(t, owner.ID, r.OwnerID())

		snap, err := f.store.CommandReads().RestaurantByRestaurantID(ctx, "noodle-bar")
		require.NoError(t, err)
		assert.Equal(t, "Noodle Bar", snap.Name)
	})

	t.Run("create: second restaurant is a conflict", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRestaurantUseCase(f.store, f.authz, f.clock)

		_, err := uc.CreateMyRestaurant(ctx, f.owner, commands.RestaurantInput{Name: "Again"})
		require.ErrorIs(t, err, commands.ErrRestaurantExists)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("create: name is required", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRestaurantUseCase(f.store, f.authz, f.clock)
		owner := newOwner(f, "blank")

		_, err := uc.CreateMyRestaurant(ctx, owner, commands.RestaurantInput{Name: " "})
		require.ErrorIs(t, err, domrest.ErrNameRequired)
	})

	t.Run("update: partial patch", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRestaurantUseCase(f.store, f.authz, f.clock)
		phone := "+1 512 555 0100"

		r, err := uc.UpdateMyRestaurant(ctx, f.owner, domrest.Patch{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, f.restaurant.Name, r.Name())
		require.NotNil(t, r.Profile().Phone)
		assert.Equal(t, phone, *r.Profile().Phone)
		assert.Equal(t, *f.restaurant.City, *r.Profile().City)
	})

	t.Run("update: missing restaurant row", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRestaurantUseCase(f.store, f.authz, f.clock)
		owner := newOwner(f, "not-yet")
		name := "Whatever"

		_, err := uc.UpdateMyRestaurant(ctx, owner, domrest.Patch{Name: &name})
		require.ErrorIs(t, err, commands.ErrRestaurantNotFound)
	})

	t.Run("forbidden: customers cannot manage restaurants", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRestaurantUseCase(f.store, f.authz, f.clock)

		_, err := uc.CreateMyRestaurant(ctx, f.customer, commands.RestaurantInput{Name: "Mine"})
		require.ErrorIs(t, err, authz.ErrForbidden)
	})
}
