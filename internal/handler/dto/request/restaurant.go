package request

import (
	domrest "deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/usecase/commands"
)

type CreateRestaurantRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	ImageURL    *string `json:"image_url"`
}

func (r *CreateRestaurantRequest) ToCommand() commands.RestaurantInput {
	return commands.RestaurantInput{
		Name: r.Name,
		Profile: domrest.Profile{
			Description: r.Description,
			Address:     r.Address,
			City:        r.City,
			Phone:       r.Phone,
			Website:     r.Website,
			ImageURL:    r.ImageURL,
		},
	}
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	ImageURL    *string `json:"image_url"`
}

func (r *UpdateRestaurantRequest) ToDomain() domrest.Patch {
	return domrest.Patch{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		City:        r.City,
		Phone:       r.Phone,
		Website:     r.Website,
		ImageURL:    r.ImageURL,
	}
}
