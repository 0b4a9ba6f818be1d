package request

import (
	"time"

	domdeal "deal-marketplace/internal/domain/deal"

	"github.com/shopspring/decimal"
)

type CreateDealRequest struct {
	Title        string           `json:"title" binding:"required"`
	Description  string           `json:"description" binding:"required"`
	DealType     string           `json:"deal_type" binding:"required"`
	DiscountType string           `json:"discount_type" binding:"required"`
	Value        *decimal.Decimal `json:"value"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url"`
	Tags         []string         `json:"tags"`
	StartAt      *time.Time       `json:"start_at"`
	EndAt        *time.Time       `json:"end_at"`
}

func (r *CreateDealRequest) ToDomain() domdeal.Fields {
	return domdeal.Fields{
		Title:        r.Title,
		Description:  r.Description,
		DealType:     r.DealType,
		DiscountType: r.DiscountType,
		Value:        r.Value,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
		Tags:         r.Tags,
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
	}
}

// UpdateDealRequest: absent fields stay unchanged.
type UpdateDealRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	DealType     *string          `json:"deal_type"`
	DiscountType *string          `json:"discount_type"`
	Value        *decimal.Decimal `json:"value"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url"`
	Tags         *[]string        `json:"tags"`
	StartAt      *time.Time       `json:"start_at"`
	EndAt        *time.Time       `json:"end_at"`
}

func (r *UpdateDealRequest) ToDomain() domdeal.Patch {
	return domdeal.Patch{
		Title:        r.Title,
		Description:  r.Description,
		DealType:     r.DealType,
		DiscountType: r.DiscountType,
		Value:        r.Value,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
		Tags:         r.Tags,
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
	}
}

type RejectDealRequest struct {
	Reason string `json:"reason"`
}

// BrowseDealsQuery binds the public browse query string.
type BrowseDealsQuery struct {
	DealType string `form:"deal_type"`
	City     string `form:"city"`
	Q        string `form:"q"`
	MinPrice string `form:"min_price"`
	MaxPrice string `form:"max_price"`
	MinValue string `form:"min_value"`
	MaxValue string `form:"max_value"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
