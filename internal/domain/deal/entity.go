package deal

import (
	"slices"
	"time"

	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrIllegalTransition = errs.NewConflict("deal status does not admit this transition")
	ErrNotEditable       = errs.NewConflict("deal can only be edited in DRAFT or REJECTED")
	ErrNotDeletable      = errs.NewConflict("deal can only be deleted in DRAFT")
)

type Deal struct {
	id              uuid.UUID
	restaurantID    string
	restaurantName  string
	title           Title
	description     Description
	dealType        Type
	discount        Discount
	price           *decimal.Decimal
	imageURL        *string
	tags            []string
	startAt         *time.Time
	endAt           *time.Time
	status          Status
	rejectionReason *string
	createdBy       uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

// Fields carries the owner-editable attributes of a deal.
type Fields struct {
	Title        string
	Description  string
	DealType     string
	DiscountType string
	Value        *decimal.Decimal
	Price        *decimal.Decimal
	ImageURL     *string
	Tags         []string
	StartAt      *time.Time
	EndAt        *time.Time
}

// Patch is a partial update; nil leaves the field unchanged.
type Patch struct {
	Title        *string
	Description  *string
	DealType     *string
	DiscountType *string
	Value        *decimal.Decimal
	Price        *decimal.Decimal
	ImageURL     *string
	Tags         *[]string
	StartAt      *time.Time
	EndAt        *time.Time
}

func NewDeal(id uuid.UUID, restaurantID, restaurantName string, createdBy uuid.UUID, f Fields, now time.Time) (*Deal, error) {
	if restaurantID == "" || restaurantName == "" {
		return nil, ErrRestaurantRequired
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	d := &Deal{
		id:             id,
		restaurantID:   restaurantID,
		restaurantName: restaurantName,
		status:         StatusDraft,
		createdBy:      createdBy,
		createdAt:      now,
		updatedAt:      now,
	}
	if err := d.assign(f); err != nil {
		return nil, err
	}
	return d, nil
}

// ReconstructDeal rebuilds a persisted deal without re-running creation rules.
func ReconstructDeal(
	id uuid.UUID,
	restaurantID, restaurantName string,
	title, description, dealType, discountType string,
	value, price *decimal.Decimal,
	imageURL *string,
	tags []string,
	startAt, endAt *time.Time,
	status string,
	rejectionReason *string,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Deal {
	return &Deal{
		id:              id,
		restaurantID:    restaurantID,
		restaurantName:  restaurantName,
		title:           Title{text: title},
		description:     Description{text: description},
		dealType:        Type(dealType),
		discount:        Discount{kind: DiscountType(discountType), value: value},
		price:           price,
		imageURL:        imageURL,
		tags:            tags,
		startAt:         startAt,
		endAt:           endAt,
		status:          Status(status),
		rejectionReason: rejectionReason,
		createdBy:       createdBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (d *Deal) assign(f Fields) error {
	title, err := NewTitle(f.Title)
	if err != nil {
		return err
	}
	desc, err := NewDescription(f.Description)
	if err != nil {
		return err
	}
	dt, err := ParseType(f.DealType)
	if err != nil {
		return err
	}
	disc, err := NewDiscount(f.DiscountType, f.Value)
	if err != nil {
		return err
	}
	if f.Price != nil && f.Price.IsNegative() {
		return ErrNegativePrice
	}
	if f.StartAt != nil && f.EndAt != nil && f.StartAt.After(*f.EndAt) {
		return ErrInvalidWindow
	}
	tags, err := normalizeTags(f.Tags)
	if err != nil {
		return err
	}

	d.title = title
	d.description = desc
	d.dealType = dt
	d.discount = disc
	d.price = f.Price
	d.imageURL = f.ImageURL
	d.tags = tags
	d.startAt = f.StartAt
	d.endAt = f.EndAt
	return nil
}

func (d *Deal) fields() Fields {
	return Fields{
		Title:        d.title.String(),
		Description:  d.description.String(),
		DealType:     string(d.dealType),
		DiscountType: string(d.discount.kind),
		Value:        d.discount.value,
		Price:        d.price,
		ImageURL:     d.imageURL,
		Tags:         slices.Clone(d.tags),
		StartAt:      d.startAt,
		EndAt:        d.endAt,
	}
}

// Edit merges p into the current fields and re-validates the result.
func (d *Deal) Edit(p Patch, now time.Time) error {
	if !d.status.Editable() {
		return ErrNotEditable
	}
	cur := d.fields()
	merged := Fields{
		Title:        patch.Coalesce(p.Title, cur.Title),
		Description:  patch.Coalesce(p.Description, cur.Description),
		DealType:     patch.Coalesce(p.DealType, cur.DealType),
		DiscountType: patch.Coalesce(p.DiscountType, cur.DiscountType),
		Value:        patch.CoalescePtr(p.Value, cur.Value),
		Price:        patch.CoalescePtr(p.Price, cur.Price),
		ImageURL:     patch.CoalescePtr(p.ImageURL, cur.ImageURL),
		Tags:         patch.Coalesce(p.Tags, cur.Tags),
		StartAt:      patch.CoalescePtr(p.StartAt, cur.StartAt),
		EndAt:        patch.CoalescePtr(p.EndAt, cur.EndAt),
	}
	if err := d.assign(merged); err != nil {
		return err
	}
	d.updatedAt = now
	return nil
}

// Apply moves the deal along t. The rejection reason is kept only on REJECTED.
func (d *Deal) Apply(t Transition, reason string, now time.Time) error {
	if !t.Allows(d.status) {
		return ErrIllegalTransition
	}
	if t.To == StatusRejected {
		r, err := NewRejectionReason(reason)
		if err != nil {
			return err
		}
		d.rejectionReason = &r
	} else {
		d.rejectionReason = nil
	}
	d.status = t.To
	d.updatedAt = now
	return nil
}

func (d *Deal) CheckDeletable() error {
	if !d.status.Deletable() {
		return ErrNotDeletable
	}
	return nil
}

func (d *Deal) ID() uuid.UUID                    { return d.id }
func (d *Deal) RestaurantID() string             { return d.restaurantID }
func (d *Deal) RestaurantName() string           { return d.restaurantName }
func (d *Deal) Title() Title                     { return d.title }
func (d *Deal) Description() Description         { return d.description }
func (d *Deal) DealType() Type                   { return d.dealType }
func (d *Deal) Discount() Discount               { return d.discount }
func (d *Deal) Price() *decimal.Decimal          { return d.price }
func (d *Deal) ImageURL() *string                { return d.imageURL }
func (d *Deal) Tags() []string                   { return slices.Clone(d.tags) }
func (d *Deal) StartAt() *time.Time              { return d.startAt }
func (d *Deal) EndAt() *time.Time                { return d.endAt }
func (d *Deal) Status() Status                   { return d.status }
func (d *Deal) RejectionReason() *string         { return d.rejectionReason }
func (d *Deal) CreatedBy() uuid.UUID             { return d.createdBy }
func (d *Deal) CreatedAt() time.Time             { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time             { return d.updatedAt }
func (d *Deal) OwnedBy(restaurantID string) bool { return d.restaurantID == restaurantID }
