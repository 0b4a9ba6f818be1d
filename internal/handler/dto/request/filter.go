package request

import (
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmountFilter = errs.NewValidation("price and value filters must be decimal numbers")

func (q *BrowseDealsQuery) ToFilter() (queries.DealFilter, error) {
	f := queries.DealFilter{
		DealType: optional(q.DealType),
		City:     optional(q.City),
		Q:        optional(q.Q),
		Sort:     q.Sort,
		Page:     q.Page,
		Limit:    q.Limit,
	}
	var err error
	if f.MinPrice, err = optionalDecimal(q.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalDecimal(q.MaxPrice); err != nil {
		return f, err
	}
	if f.MinValue, err = optionalDecimal(q.MinValue); err != nil {
		return f, err
	}
	if f.MaxValue, err = optionalDecimal(q.MaxValue); err != nil {
		return f, err
	}
	return f.Normalize(), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidAmountFilter, "%q", s)
	}
	return &d, nil
}
