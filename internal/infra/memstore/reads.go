package memstore

import (
	"context"
	"slices"

	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type reads struct {
	st *state
}

func (r *reads) ProfileByUserID(_ context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	p, ok := r.st.profiles[id]
	if !ok {
		return nil, notFound("failed to get user profile")
	}
	return &p, nil
}

func (r *reads) RestaurantByRestaurantID(_ context.Context, rid string) (*shared.RestaurantSnapshot, error) {
	rest, ok := r.st.restaurants[rid]
	if !ok {
		return nil, notFound("failed to get restaurant")
	}
	return &rest, nil
}

func (r *reads) DealByID(_ context.Context, id uuid.UUID) (*shared.DealSnapshot, error) {
	d, ok := r.st.deals[id]
	if !ok {
		return nil, notFound("failed to get deal")
	}
	d.Tags = slices.Clone(d.Tags)
	return &d, nil
}

// DealsForCheckout skips unknown ids like the SQL ANY() lookup does.
func (r *reads) DealsForCheckout(_ context.Context, ids []uuid.UUID) ([]*shared.DealSnapshot, error) {
	out := make([]*shared.DealSnapshot, 0, len(ids))
	for _, id := range ids {
		d, ok := r.st.deals[id]
		if !ok {
			continue
		}
		d.Tags = slices.Clone(d.Tags)
		out = append(out, &d)
	}
	return out, nil
}

func (r *reads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	o, ok := r.st.orders[id]
	if !ok {
		return nil, notFound("failed to get order")
	}
	snap := &shared.OrderSnapshot{
		ID:     o.ID(),
		UserID: o.UserID(),
		Status: o.Status().String(),
	}
	for _, li := range o.Items() {
		if !slices.Contains(snap.RestaurantIDs, li.RestaurantID()) {
			snap.RestaurantIDs = append(snap.RestaurantIDs, li.RestaurantID())
		}
	}
	return snap, nil
}
