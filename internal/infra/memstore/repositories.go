package memstore

import (
	"context"
	"slices"
	"time"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/notification"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/restaurant"
	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var errDuplicate = errs.New("duplicate key value violates unique constraint")

type dealRepo struct{ st *state }

func dealRow(d *deal.Deal) shared.DealSnapshot {
	return shared.DealSnapshot{
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
		Tags:            d.Tags(),
		StartAt:         d.StartAt(),
		EndAt:           d.EndAt(),
		Status:          d.Status().String(),
		RejectionReason: d.RejectionReason(),
		CreatedByUserID: d.CreatedBy(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func (r *dealRepo) Create(_ context.Context, _ sqlc.DBTX, d *deal.Deal) error {
	if _, ok := r.st.deals[d.ID()]; ok {
		return infra.WrapRepoErr("failed to create deal", errDuplicate, infra.KindDuplicateKey)
	}
	r.st.deals[d.ID()] = dealRow(d)
	return nil
}

func (r *dealRepo) UpdateContent(_ context.Context, _ sqlc.DBTX, d *deal.Deal) (bool, error) {
	cur, ok := r.st.deals[d.ID()]
	if !ok || !deal.Status(cur.Status).Editable() {
		return false, nil
	}
	next := dealRow(d)
	next.Status = cur.Status
	next.RejectionReason = cur.RejectionReason
	next.CreatedAt = cur.CreatedAt
	r.st.deals[d.ID()] = next
	return true, nil
}

func (r *dealRepo) Transition(_ context.Context, _ sqlc.DBTX, id uuid.UUID, t deal.Transition, reason *string, at time.Time) (bool, error) {
	cur, ok := r.st.deals[id]
	if !ok || !slices.Contains(t.FromStrings(), cur.Status) {
		return false, nil
	}
	cur.Status = t.To.String()
	cur.RejectionReason = reason
	cur.UpdatedAt = at
	r.st.deals[id] = cur
	return true, nil
}

func (r *dealRepo) DeleteDraft(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	cur, ok := r.st.deals[id]
	if !ok || cur.Status != deal.StatusDraft.String() {
		return false, nil
	}
	delete(r.st.deals, id)
	for k := range r.st.favorites {
		if k.dealID == id {
			delete(r.st.favorites, k)
		}
	}
	return true, nil
}

type orderRepo struct{ st *state }

func (r *orderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	if _, ok := r.st.orders[o.ID()]; ok {
		return infra.WrapRepoErr("failed to create order", errDuplicate, infra.KindDuplicateKey)
	}
	if ref := o.PaymentRef(); ref != nil {
		for _, other := range r.st.orders {
			if p := other.PaymentRef(); p != nil && *p == *ref {
				return infra.WrapRepoErr("failed to create order", errDuplicate, infra.KindDuplicateKey)
			}
		}
	}
	r.st.orders[o.ID()] = o
	return nil
}

func (r *orderRepo) AdvanceStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, target order.Status, at time.Time) (bool, error) {
	cur, ok := r.st.orders[id]
	if !ok || cur.Status().CanAdvanceTo(target) != nil {
		return false, nil
	}
	r.st.orders[id] = order.ReconstructOrder(cur.ID(), cur.UserID(), cur.Items(), cur.Total(),
		target.String(), cur.PaidAt(), cur.PaymentRef(), cur.CreatedAt(), at)
	return true, nil
}

func (r *orderRepo) MarkPaidByReference(_ context.Context, _ sqlc.DBTX, ref string, at time.Time) (bool, error) {
	for id, cur := range r.st.orders {
		p := cur.PaymentRef()
		if p == nil || *p != ref || cur.PaidAt() != nil {
			continue
		}
		paid := at
		r.st.orders[id] = order.ReconstructOrder(cur.ID(), cur.UserID(), cur.Items(), cur.Total(),
			cur.Status().String(), &paid, cur.PaymentRef(), cur.CreatedAt(), at)
		return true, nil
	}
	return false, nil
}

type favoriteRepo struct{ st *state }

func (r *favoriteRepo) Add(_ context.Context, _ sqlc.DBTX, userID, dealID uuid.UUID, at time.Time) (bool, error) {
	if _, ok := r.st.deals[dealID]; !ok {
		return false, infra.WrapRepoErr("failed to add favorite", errs.New("deal missing"), infra.KindForeignKeyViolated)
	}
	k := favoriteKey{userID, dealID}
	if _, ok := r.st.favorites[k]; ok {
		return false, nil
	}
	r.st.favorites[k] = at
	return true, nil
}

func (r *favoriteRepo) Remove(_ context.Context, _ sqlc.DBTX, userID, dealID uuid.UUID) error {
	delete(r.st.favorites, favoriteKey{userID, dealID})
	return nil
}

type notificationRepo struct{ st *state }

func (r *notificationRepo) Create(_ context.Context, _ sqlc.DBTX, n *notification.Notification) error {
	r.st.notifications[n.ID()] = notificationRow{n: n, read: n.Read()}
	return nil
}

func (r *notificationRepo) MarkRead(_ context.Context, _ sqlc.DBTX, userID, id uuid.UUID) (bool, error) {
	row, ok := r.st.notifications[id]
	if !ok || row.n.UserID() != userID {
		return false, nil
	}
	row.read = true
	r.st.notifications[id] = row
	return true, nil
}

func (r *notificationRepo) MarkAllRead(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (int64, error) {
	var n int64
	for id, row := range r.st.notifications {
		if row.n.UserID() != userID || row.read {
			continue
		}
		row.read = true
		r.st.notifications[id] = row
		n++
	}
	return n, nil
}

type restaurantRepo struct{ st *state }

func restaurantRow(rest *restaurant.Restaurant) shared.RestaurantSnapshot {
	p := rest.Profile()
	return shared.RestaurantSnapshot{
		ID:           rest.ID(),
		RestaurantID: rest.RestaurantID(),
		OwnerID:      rest.OwnerID(),
		Name:         rest.Name(),
		Description:  p.Description,
		Address:      p.Address,
		City:         p.City,
		Phone:        p.Phone,
		Website:      p.Website,
		ImageURL:     p.ImageURL,
		CreatedAt:    rest.CreatedAt(),
		UpdatedAt:    rest.UpdatedAt(),
	}
}

func (r *restaurantRepo) Create(_ context.Context, _ sqlc.DBTX, rest *restaurant.Restaurant) error {
	if _, ok := r.st.restaurants[rest.RestaurantID()]; ok {
		return infra.WrapRepoErr("failed to create restaurant", errDuplicate, infra.KindDuplicateKey)
	}
	r.st.restaurants[rest.RestaurantID()] = restaurantRow(rest)
	return nil
}

func (r *restaurantRepo) Update(_ context.Context, _ sqlc.DBTX, rest *restaurant.Restaurant) error {
	if _, ok := r.st.restaurants[rest.RestaurantID()]; !ok {
		return notFound("failed to update restaurant")
	}
	r.st.restaurants[rest.RestaurantID()] = restaurantRow(rest)
	return nil
}
