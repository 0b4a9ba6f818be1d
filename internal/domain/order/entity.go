package order

import (
	"slices"
	"time"

	"deal-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemsRequired   = errs.NewValidation("items required")
	ErrInvalidQuantity = errs.NewValidation("invalid item")
)

// DealSnapshot is the frozen state of a deal at purchase time.
type DealSnapshot struct {
	ID              uuid.UUID        `json:"id"`
	RestaurantID    string           `json:"restaurantId"`
	RestaurantName  string           `json:"restaurantName"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DealType        string           `json:"dealType"`
	DiscountType    string           `json:"discountType"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	ImageURL        *string          `json:"imageUrl,omitempty"`
	Tags            []string         `json:"tags"`
	StartAt         *time.Time       `json:"startAt,omitempty"`
	EndAt           *time.Time       `json:"endAt,omitempty"`
	Status          string           `json:"status"`
	CreatedByUserID uuid.UUID        `json:"createdByUserId"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type LineItem struct {
	dealID         uuid.UUID
	title          string
	restaurantID   string
	restaurantName string
	unitPrice      decimal.Decimal
	qty            int
	snapshot       DealSnapshot
}

func NewLineItem(snap DealSnapshot, qty int) (LineItem, error) {
	if qty < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	price := decimal.Zero
	if snap.Price != nil {
		price = *snap.Price
	}
	return LineItem{
		dealID:         snap.ID,
		title:          snap.Title,
		restaurantID:   snap.RestaurantID,
		restaurantName: snap.RestaurantName,
		unitPrice:      price,
		qty:            qty,
		snapshot:       snap,
	}, nil
}

func ReconstructLineItem(dealID uuid.UUID, title, restaurantID, restaurantName string, unitPrice decimal.Decimal, qty int, snap DealSnapshot) LineItem {
	return LineItem{
		dealID:         dealID,
		title:          title,
		restaurantID:   restaurantID,
		restaurantName: restaurantName,
		unitPrice:      unitPrice,
		qty:            qty,
		snapshot:       snap,
	}
}

func (li LineItem) DealID() uuid.UUID          { return li.dealID }
func (li LineItem) Title() string              { return li.title }
func (li LineItem) RestaurantID() string       { return li.restaurantID }
func (li LineItem) RestaurantName() string     { return li.restaurantName }
func (li LineItem) UnitPrice() decimal.Decimal { return li.unitPrice }
func (li LineItem) Qty() int                   { return li.qty }
func (li LineItem) Snapshot() DealSnapshot     { return li.snapshot }

func (li LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.qty)))
}

type Order struct {
	id         uuid.UUID
	userID     uuid.UUID
	items      []LineItem
	total      decimal.Decimal
	status     Status
	paidAt     *time.Time
	paymentRef *string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOrder creates a Placed order. A payment reference acquired up front
// marks the order paid at creation.
func NewOrder(id, userID uuid.UUID, items []LineItem, paymentRef *string, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}

	o := &Order{
		id:        id,
		userID:    userID,
		items:     slices.Clone(items),
		total:     total,
		status:    StatusPlaced,
		createdAt: now,
		updatedAt: now,
	}
	if paymentRef != nil && *paymentRef != "" {
		ref := *paymentRef
		paid := now
		o.paymentRef = &ref
		o.paidAt = &paid
	}
	return o, nil
}

func ReconstructOrder(id, userID uuid.UUID, items []LineItem, total decimal.Decimal, status string, paidAt *time.Time, paymentRef *string, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:         id,
		userID:     userID,
		items:      items,
		total:      total,
		status:     Status(status),
		paidAt:     paidAt,
		paymentRef: paymentRef,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) UserID() uuid.UUID      { return o.userID }
func (o *Order) Items() []LineItem      { return slices.Clone(o.items) }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Status() Status         { return o.status }
func (o *Order) PaidAt() *time.Time     { return o.paidAt }
func (o *Order) PaymentRef() *string    { return o.paymentRef }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
