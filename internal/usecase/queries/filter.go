package queries

import (
	"strings"

	"deal-marketplace/internal/domain/deal"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50

	SortNewest = "newest"
	SortValue  = "value"
)

// DealFilter narrows the public browse. Nil fields do not filter.
type DealFilter struct {
	DealType *string
	City     *string
	Q        *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinValue *decimal.Decimal
	MaxValue *decimal.Decimal
	Sort     string
	Page     int
	Limit    int
}

// Normalize clamps paging and drops filters that cannot match anything
// meaningful, mirroring how lenient the public listing is.
func (f DealFilter) Normalize() DealFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit == 0:
		f.Limit = DefaultPageLimit
	case f.Limit < 1:
		f.Limit = 1
	case f.Limit > MaxPageLimit:
		f.Limit = MaxPageLimit
	}
	if f.Sort != SortValue {
		f.Sort = SortNewest
	}
	if f.DealType != nil {
		if _, err := deal.ParseType(*f.DealType); err != nil {
			f.DealType = nil
		}
	}
	f.City = trimmedOrNil(f.City)
	f.Q = trimmedOrNil(f.Q)
	return f
}

func (f DealFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
