package converter

import (
	"deal-marketplace/internal/domain/deal"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/usecase/shared"
)

func DealToCreateParams(d *deal.Deal) sqlc.CreateDealParams {
	return sqlc.CreateDealParams{
		ID:              d.ID(),
		RestaurantID:    d.RestaurantID(),
		RestaurantName:  d.RestaurantName(),
		Title:           d.Title().String(),
		Description:     d.Description().String(),
		DealType:        string(d.DealType()),
		DiscountType:    string(d.Discount().Kind()),
		Value:           pgconv.DecimalPtrToNumeric(d.Discount().Value()),
		Price:           pgconv.DecimalPtrToNumeric(d.Price()),
		ImageUrl:        pgconv.StringPtrToPgtype(d.ImageURL()),
		Tags:            nonNilTags(d.Tags()),
		StartAt:         pgconv.TimePtrToPgtype(d.StartAt()),
		EndAt:           pgconv.TimePtrToPgtype(d.EndAt()),
		Status:          d.Status().String(),
		RejectionReason: pgconv.StringPtrToPgtype(d.RejectionReason()),
		CreatedBy:       d.CreatedBy(),
		CreatedAt:       pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

// DealToUpdateParams guards the write with the editable status set.
func DealToUpdateParams(d *deal.Deal) sqlc.UpdateDealContentParams {
	return sqlc.UpdateDealContentParams{
		Title:        d.Title().String(),
		Description:  d.Description().String(),
		DealType:     string(d.DealType()),
		DiscountType: string(d.Discount().Kind()),
		Value:        pgconv.DecimalPtrToNumeric(d.Discount().Value()),
		Price:        pgconv.DecimalPtrToNumeric(d.Price()),
		ImageUrl:     pgconv.StringPtrToPgtype(d.ImageURL()),
		Tags:         nonNilTags(d.Tags()),
		StartAt:      pgconv.TimePtrToPgtype(d.StartAt()),
		EndAt:        pgconv.TimePtrToPgtype(d.EndAt()),
		UpdatedAt:    pgconv.TimeToPgtype(d.UpdatedAt()),
		ID:           d.ID(),
		Editable:     []string{deal.StatusDraft.String(), deal.StatusRejected.String()},
	}
}

func DealRowToSnapshot(row sqlc.Deals) (*shared.DealSnapshot, error) {
	value, err := pgconv.DecimalPtrFromNumeric(row.Value)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalPtrFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &shared.DealSnapshot{
		ID:              row.ID,
		RestaurantID:    row.RestaurantID,
		RestaurantName:  row.RestaurantName,
		Title:           row.Title,
		Description:     row.Description,
		DealType:        row.DealType,
		DiscountType:    row.DiscountType,
		Value:           value,
		Price:           price,
		ImageURL:        pgconv.StringPtrFromPgtype(row.ImageUrl),
		Tags:            row.Tags,
		StartAt:         pgconv.TimePtrFromPgtype(row.StartAt),
		EndAt:           pgconv.TimePtrFromPgtype(row.EndAt),
		Status:          row.Status,
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
		CreatedByUserID: row.CreatedBy,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
