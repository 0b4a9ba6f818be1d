//go:build unit

package restaurant_test

import (
	"strings"
	"testing"
	"time"

	"deal-marketplace/internal/domain/restaurant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestRestaurant(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	owner := uuid.New()

	t.Run("new trims name and profile", func(t *testing.T) {
		r, err := restaurant.NewRestaurant("pho-9", owner, "  Pho Nine ", restaurant.Profile{City: ptr(" Austin ")}, now)
		require.NoError(t, err)
		assert.Equal(t, "Pho Nine", r.Name())
		assert.Equal(t, "Austin", *r.Profile().City)
		assert.Nil(t, r.Profile().Phone)
		assert.Equal(t, owner, r.OwnerID())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("name rules", func(t *testing.T) {
		_, err := restaurant.NewRestaurant("x", owner, " ", restaurant.Profile{}, now)
		require.ErrorIs(t, err, restaurant.ErrNameRequired)

		_, err = restaurant.NewRestaurant("x", owner, strings.Repeat("n", restaurant.MaxNameLength), restaurant.Profile{}, now)
		require.NoError(t, err)

		_, err = restaurant.NewRestaurant("x", owner, strings.Repeat("n", restaurant.MaxNameLength+1), restaurant.Profile{}, now)
		require.ErrorIs(t, err, restaurant.ErrNameTooLong)
	})

	t.Run("description limit", func(t *testing.T) {
		long := strings.Repeat("d", restaurant.MaxDescriptionLength+1)
		_, err := restaurant.NewRestaurant("x", owner, "Name", restaurant.Profile{Description: &long}, now)
		require.ErrorIs(t, err, restaurant.ErrDescriptionTooLong)
	})

	t.Run("update keeps unspecified fields", func(t *testing.T) {
		r, err := restaurant.NewRestaurant("pho-9", owner, "Pho Nine", restaurant.Profile{City: ptr("Austin"), Phone: ptr("1")}, now)
		require.NoError(t, err)

		later := now.Add(time.Hour)
		require.NoError(t, r.Update(restaurant.Patch{Phone: ptr("2")}, later))
		assert.Equal(t, "Pho Nine", r.Name())
		assert.Equal(t, "Austin", *r.Profile().City)
		assert.Equal(t, "2", *r.Profile().Phone)
		assert.Equal(t, later, r.UpdatedAt())

		err = r.Update(restaurant.Patch{Name: ptr("")}, later)
		require.ErrorIs(t, err, restaurant.ErrNameRequired)
		assert.Equal(t, "Pho Nine", r.Name())
	})
}
