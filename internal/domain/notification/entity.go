package notification

import (
	"fmt"
	"strings"
	"time"

	"deal-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind     = errs.NewValidation("invalid notification kind")
	ErrMessageRequired = errs.NewValidation("notification message is required")
)

type Kind string

const (
	KindDealApproved Kind = "deal_approved"
	KindDealRejected Kind = "deal_rejected"
	KindOrderStatus  Kind = "order_status"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDealApproved, KindDealRejected, KindOrderStatus:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	kind      Kind
	message   string
	read      bool
	dealID    *uuid.UUID
	orderID   *uuid.UUID
	createdAt time.Time
}

// NewNotification creates an unread inbox entry.
func NewNotification(recipient uuid.UUID, kind Kind, message string, dealID, orderID *uuid.UUID, now time.Time) (*Notification, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, ErrMessageRequired
	}
	return &Notification{
		id:        uuid.New(),
		userID:    recipient,
		kind:      kind,
		message:   msg,
		dealID:    dealID,
		orderID:   orderID,
		createdAt: now,
	}, nil
}

func DealApproved(recipient, dealID uuid.UUID, title string, now time.Time) (*Notification, error) {
	return NewNotification(recipient, KindDealApproved,
		fmt.Sprintf("Your deal %q was approved and is now live.", title), &dealID, nil, now)
}

func DealRejected(recipient, dealID uuid.UUID, title, reason string, now time.Time) (*Notification, error) {
	return NewNotification(recipient, KindDealRejected,
		fmt.Sprintf("Your deal %q was rejected: %s", title, reason), &dealID, nil, now)
}

func OrderStatusChanged(recipient, orderID uuid.UUID, status string, now time.Time) (*Notification, error) {
	return NewNotification(recipient, KindOrderStatus,
		fmt.Sprintf("Your order is now %s.", status), nil, &orderID, now)
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) Kind() Kind           { return n.kind }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) DealID() *uuid.UUID   { return n.dealID }
func (n *Notification) OrderID() *uuid.UUID  { return n.orderID }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
