package user

import (
	"github.com/google/uuid"
)

// Profile is the marketplace view of a user. Identity and credentials are
// managed elsewhere; only role and restaurant binding matter here.
type Profile struct {
	id         uuid.UUID
	role       Role
	restaurant *RestaurantRef
}

// NewProfile enforces that owners are always bound to a restaurant.
func NewProfile(id uuid.UUID, roleText string, restaurantID *string) (*Profile, error) {
	role, err := NewRole(roleText)
	if err != nil {
		return nil, err
	}

	p := &Profile{id: id, role: role}
	if restaurantID != nil && *restaurantID != "" {
		ref, err := NewRestaurantRef(*restaurantID)
		if err != nil {
			return nil, err
		}
		p.restaurant = &ref
	}

	if role == RoleOwner && p.restaurant == nil {
		return nil, ErrOwnerRestaurantRequired
	}
	return p, nil
}

func (p *Profile) ID() uuid.UUID { return p.id }
func (p *Profile) Role() Role    { return p.role }

func (p *Profile) RestaurantID() (string, bool) {
	if p.restaurant == nil {
		return "", false
	}
	return p.restaurant.String(), true
}
