package user

import (
	"strings"

	"deal-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole              = errs.NewValidation("invalid role")
	ErrOwnerRestaurantRequired  = errs.NewAuthorization("owner profile incomplete")
	ErrInvalidRestaurantRefText = errs.NewValidation("restaurant id must not contain whitespace")
)

// Actor is the already-authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// RestaurantRef is the external string identifier of a restaurant.
type RestaurantRef struct {
	value string
}

func NewRestaurantRef(s string) (RestaurantRef, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return RestaurantRef{}, ErrOwnerRestaurantRequired
	}
	if strings.ContainsAny(t, " \t\n") {
		return RestaurantRef{}, ErrInvalidRestaurantRefText
	}
	return RestaurantRef{value: t}, nil
}

func (r RestaurantRef) String() string { return r.value }
