package restaurant

import (
	"strings"
	"time"
	"unicode/utf8"

	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 120
	MaxDescriptionLength = 500
)

var (
	ErrNameRequired       = errs.NewValidation("name is required")
	ErrNameTooLong        = errs.NewValidation("name exceeds maximum length")
	ErrDescriptionTooLong = errs.NewValidation("description exceeds maximum length")
)

type Restaurant struct {
	id           uuid.UUID
	restaurantID string
	ownerID      uuid.UUID
	name         string
	profile      Profile
	createdAt    time.Time
	updatedAt    time.Time
}

// Profile holds the optional descriptive fields.
type Profile struct {
	Description *string
	Address     *string
	City        *string
	Phone       *string
	Website     *string
	ImageURL    *string
}

type Patch struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Phone       *string
	Website     *string
	ImageURL    *string
}

func NewRestaurant(restaurantID string, ownerID uuid.UUID, name string, p Profile, now time.Time) (*Restaurant, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	p, err = normalizeProfile(p)
	if err != nil {
		return nil, err
	}
	return &Restaurant{
		id:           uuid.New(),
		restaurantID: restaurantID,
		ownerID:      ownerID,
		name:         n,
		profile:      p,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRestaurant(id uuid.UUID, restaurantID string, ownerID uuid.UUID, name string, p Profile, createdAt, updatedAt time.Time) *Restaurant {
	return &Restaurant{
		id:           id,
		restaurantID: restaurantID,
		ownerID:      ownerID,
		name:         name,
		profile:      p,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Restaurant) Update(p Patch, now time.Time) error {
	name := patch.Coalesce(p.Name, r.name)
	n, err := normalizeName(name)
	if err != nil {
		return err
	}
	prof, err := normalizeProfile(Profile{
		Description: patch.CoalescePtr(p.Description, r.profile.Description),
		Address:     patch.CoalescePtr(p.Address, r.profile.Address),
		City:        patch.CoalescePtr(p.City, r.profile.City),
		Phone:       patch.CoalescePtr(p.Phone, r.profile.Phone),
		Website:     patch.CoalescePtr(p.Website, r.profile.Website),
		ImageURL:    patch.CoalescePtr(p.ImageURL, r.profile.ImageURL),
	})
	if err != nil {
		return err
	}
	r.name = n
	r.profile = prof
	r.updatedAt = now
	return nil
}

func normalizeName(s string) (string, error) {
	n := strings.TrimSpace(s)
	if n == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return n, nil
}

func normalizeProfile(p Profile) (Profile, error) {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	out := Profile{
		Description: trim(p.Description),
		Address:     trim(p.Address),
		City:        trim(p.City),
		Phone:       trim(p.Phone),
		Website:     trim(p.Website),
		ImageURL:    trim(p.ImageURL),
	}
	if out.Description != nil && utf8.RuneCountInString(*out.Description) > MaxDescriptionLength {
		return Profile{}, ErrDescriptionTooLong
	}
	return out, nil
}

func (r *Restaurant) ID() uuid.UUID        { return r.id }
func (r *Restaurant) RestaurantID() string { return r.restaurantID }
func (r *Restaurant) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Profile() Profile     { return r.profile }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }
