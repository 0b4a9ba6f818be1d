package response

import (
	"time"

	domdeal "deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DealResponse struct {
	ID              uuid.UUID        `json:"id"`
	RestaurantID    string           `json:"restaurant_id"`
	RestaurantName  string           `json:"restaurant_name"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DealType        string           `json:"deal_type"`
	DiscountType    string           `json:"discount_type"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty"`
	Tags            []string         `json:"tags"`
	StartAt         *time.Time       `json:"start_at,omitempty"`
	EndAt           *time.Time       `json:"end_at,omitempty"`
	Status          string           `json:"status"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	CreatedByUserID uuid.UUID        `json:"created_by_user_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func FromDealView(v *queries.DealView) *DealResponse {
	return &DealResponse{
		ID:              v.ID,
		RestaurantID:    v.RestaurantID,
		RestaurantName:  v.RestaurantName,
		Title:           v.Title,
		Description:     v.Description,
		DealType:        v.DealType,
		DiscountType:    v.DiscountType,
		Value:           v.Value,
		Price:           v.Price,
		ImageURL:        v.ImageURL,
		Tags:            nonNil(v.Tags),
		StartAt:         v.StartAt,
		EndAt:           v.EndAt,
		Status:          v.Status,
		RejectionReason: v.RejectionReason,
		CreatedByUserID: v.CreatedByUserID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromDeal(d *domdeal.Deal) *DealResponse {
	return &DealResponse{
		ID:              d.ID(),
		RestaurantID:    d.RestaurantID(),
		RestaurantName:  d.RestaurantName(),
		Title:           d.Title().String(),
		Description:     d.Description().String(),
		DealType:        string(d.DealType()),
		DiscountType:    string(d.Discount().Kind()),
		Value:           d.Discount().Value(),
		Price:           d.Price(),
		ImageURL:        d.ImageURL(),
		Tags:            nonNil(d.Tags()),
		StartAt:         d.StartAt(),
		EndAt:           d.EndAt(),
		Status:          d.Status().String(),
		RejectionReason: d.RejectionReason(),
		CreatedByUserID: d.CreatedBy(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func FromDealViews(vs []*queries.DealView) []*DealResponse {
	res := make([]*DealResponse, len(vs))
	for i, v := range vs {
		res[i] = FromDealView(v)
	}
	return res
}

type DealPageResponse struct {
	Items      []*DealResponse `json:"items"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"total_pages"`
}

func FromDealPage(p *queries.DealPage) *DealPageResponse {
	return &DealPageResponse{
		Items:      FromDealViews(p.Items),
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
