package response

import (
	"time"

	domrest "deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Address      *string   `json:"address,omitempty"`
	City         *string   `json:"city,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Website      *string   `json:"website,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	r := RestaurantResponse(*v)
	return &r
}

func FromRestaurant(r *domrest.Restaurant) *RestaurantResponse {
	p := r.Profile()
	return &RestaurantResponse{
		ID:           r.ID(),
		RestaurantID: r.RestaurantID(),
		OwnerID:      r.OwnerID(),
		Name:         r.Name(),
		Description:  p.Description,
		Address:      p.Address,
		City:         p.City,
		Phone:        p.Phone,
		Website:      p.Website,
		ImageURL:     p.ImageURL,
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}
