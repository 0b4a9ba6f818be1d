// Package memstore keeps marketplace state in process memory behind the
// same unit-of-work ports as the Postgres adapter. Transactions are fully
// serialized and applied atomically on success.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"deal-marketplace/internal/domain/notification"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errs.New("no rows in result set")

type favoriteKey struct {
	userID uuid.UUID
	dealID uuid.UUID
}

type notificationRow struct {
	n    *notification.Notification
	read bool
}

type state struct {
	profiles      map[uuid.UUID]shared.ProfileSnapshot
	restaurants   map[string]shared.RestaurantSnapshot
	deals         map[uuid.UUID]shared.DealSnapshot
	orders        map[uuid.UUID]*order.Order
	favorites     map[favoriteKey]time.Time
	notifications map[uuid.UUID]notificationRow
}

func newState() *state {
	return &state{
		profiles:      map[uuid.UUID]shared.ProfileSnapshot{},
		restaurants:   map[string]shared.RestaurantSnapshot{},
		deals:         map[uuid.UUID]shared.DealSnapshot{},
		orders:        map[uuid.UUID]*order.Order{},
		favorites:     map[favoriteKey]time.Time{},
		notifications: map[uuid.UUID]notificationRow{},
	}
}

// clone copies the maps; stored values are replaced, never mutated in place.
func (s *state) clone() *state {
	return &state{
		profiles:      maps.Clone(s.profiles),
		restaurants:   maps.Clone(s.restaurants),
		deals:         maps.Clone(s.deals),
		orders:        maps.Clone(s.orders),
		favorites:     maps.Clone(s.favorites),
		notifications: maps.Clone(s.notifications),
	}
}

type Store struct {
	mu sync.Mutex
	st *state
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{st: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	if err := fn(ctx, &txImpl{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{s: s}
}

// Seeding and inspection helpers.

func (s *Store) PutProfile(p shared.ProfileSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.profiles[p.ID] = p
}

func (s *Store) PutRestaurant(r shared.RestaurantSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.restaurants[r.RestaurantID] = r
}

func (s *Store) PutDeal(d shared.DealSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.Tags = slices.Clone(d.Tags)
	s.st.deals[d.ID] = d
}

func (s *Store) PutOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.orders[o.ID()] = o
}

func (s *Store) Deal(id uuid.UUID) (shared.DealSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.st.deals[id]
	return d, ok
}

func (s *Store) Order(id uuid.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.st.orders[id]
	return o, ok
}

func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.orders)
}

func (s *Store) IsFavorite(userID, dealID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.st.favorites[favoriteKey{userID, dealID}]
	return ok
}

func (s *Store) FavoriteCount(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.st.favorites {
		if k.userID == userID {
			n++
		}
	}
	return n
}

// NotificationView is a committed notification with its read flag.
type NotificationView struct {
	Notification *notification.Notification
	Read         bool
}

// Notifications returns a recipient's notifications oldest first.
func (s *Store) Notifications(userID uuid.UUID) []NotificationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []NotificationView
	for _, row := range s.st.notifications {
		if row.n.UserID() == userID {
			out = append(out, NotificationView{Notification: row.n, Read: row.read})
		}
	}
	slices.SortFunc(out, func(a, b NotificationView) int {
		return a.Notification.CreatedAt().Compare(b.Notification.CreatedAt())
	})
	return out
}

type lockedReads struct {
	s *Store
}

func (r *lockedReads) snapshot() *reads {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return &reads{st: r.s.st}
}

func (r *lockedReads) ProfileByUserID(ctx context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	return r.snapshot().ProfileByUserID(ctx, id)
}

func (r *lockedReads) RestaurantByRestaurantID(ctx context.Context, rid string) (*shared.RestaurantSnapshot, error) {
	return r.snapshot().RestaurantByRestaurantID(ctx, rid)
}

func (r *lockedReads) DealByID(ctx context.Context, id uuid.UUID) (*shared.DealSnapshot, error) {
	return r.snapshot().DealByID(ctx, id)
}

func (r *lockedReads) DealsForCheckout(ctx context.Context, ids []uuid.UUID) ([]*shared.DealSnapshot, error) {
	return r.snapshot().DealsForCheckout(ctx, ids)
}

func (r *lockedReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	return r.snapshot().OrderByID(ctx, id)
}

type txImpl struct {
	st *state
}

func (t *txImpl) Deals() shared.DealRepository                 { return &dealRepo{st: t.st} }
func (t *txImpl) Orders() shared.OrderRepository               { return &orderRepo{st: t.st} }
func (t *txImpl) Favorites() shared.FavoriteRepository         { return &favoriteRepo{st: t.st} }
func (t *txImpl) Notifications() shared.NotificationRepository { return &notificationRepo{st: t.st} }
func (t *txImpl) Restaurants() shared.RestaurantRepository     { return &restaurantRepo{st: t.st} }
func (t *txImpl) Reads() shared.CommandReads                   { return &reads{st: t.st} }
func (t *txImpl) DB() sqlc.DBTX                                { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errNoRows, infra.KindNotFound)
}
