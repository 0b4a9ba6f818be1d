package deal

import (
	"strings"
	"unicode/utf8"

	"deal-marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength       = 80
	MaxDescriptionLength = 400
	MaxReasonLength      = 500
	MaxTags              = 20
)

var (
	ErrTitleRequired       = errs.NewValidation("title is required")
	ErrTitleTooLong        = errs.NewValidation("title exceeds maximum length")
	ErrDescriptionRequired = errs.NewValidation("description is required")
	ErrDescriptionTooLong  = errs.NewValidation("description exceeds maximum length")
	ErrInvalidDealType     = errs.NewValidation("invalid deal type")
	ErrInvalidDiscountType = errs.NewValidation("invalid discount type")
	ErrValueRequired       = errs.NewValidation("value is required for percent and amount discount types")
	ErrInvalidValue        = errs.NewValidation("value must be positive and a percentage may not exceed 100")
	ErrNegativePrice       = errs.NewValidation("price must not be negative")
	ErrInvalidWindow       = errs.NewValidation("startAt must not be after endAt")
	ErrTooManyTags         = errs.NewValidation("too many tags")
	ErrReasonRequired      = errs.NewValidation("rejection reason is required")
	ErrReasonTooLong       = errs.NewValidation("rejection reason exceeds maximum length")
	ErrInvalidStatus       = errs.NewValidation("invalid deal status")
	ErrRestaurantRequired  = errs.NewValidation("restaurant is required")
)

type Title struct{ text string }

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrTitleRequired
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{text: t}, nil
}

func (t Title) String() string { return t.text }

type Description struct{ text string }

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrDescriptionRequired
	}
	if utf8.RuneCountInString(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{text: t}, nil
}

func (d Description) String() string { return d.text }

type Type string

const (
	TypeLunch    Type = "Lunch"
	TypeCarryout Type = "Carryout"
	TypeDelivery Type = "Delivery"
	TypeOther    Type = "Other"
)

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeLunch, TypeCarryout, TypeDelivery, TypeOther:
		return t, nil
	default:
		return "", ErrInvalidDealType
	}
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount"
	DiscountBOGO    DiscountType = "bogo"
	DiscountOther   DiscountType = "other"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch t := DiscountType(s); t {
	case DiscountPercent, DiscountAmount, DiscountBOGO, DiscountOther:
		return t, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (t DiscountType) RequiresValue() bool {
	return t == DiscountPercent || t == DiscountAmount
}

var hundred = decimal.NewFromInt(100)

// Discount pairs the discount kind with its magnitude.
type Discount struct {
	kind  DiscountType
	value *decimal.Decimal
}

func NewDiscount(kind string, value *decimal.Decimal) (Discount, error) {
	k, err := ParseDiscountType(kind)
	if err != nil {
		return Discount{}, err
	}
	if k.RequiresValue() && value == nil {
		return Discount{}, ErrValueRequired
	}
	if value != nil {
		if !value.IsPositive() {
			return Discount{}, ErrInvalidValue
		}
		if k == DiscountPercent && value.GreaterThan(hundred) {
			return Discount{}, ErrInvalidValue
		}
		v := *value
		value = &v
	}
	return Discount{kind: k, value: value}, nil
}

func (d Discount) Kind() DiscountType      { return d.kind }
func (d Discount) Value() *decimal.Decimal { return d.value }

func NewRejectionReason(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrReasonRequired
	}
	if utf8.RuneCountInString(t) > MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return t, nil
}

func normalizeTags(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, tag := range in {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	if len(out) > MaxTags {
		return nil, ErrTooManyTags
	}
	return out, nil
}
