//go:build e2e

package uow_test

import (
	"context"
	"sync"
	"testing"
	"time"

	domdeal "deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/payment"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/infra/readstore"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/infra/uow"
	"deal-marketplace/internal/pkg/authz"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/testutil/builder"
	"deal-marketplace/internal/testutil/dbtest"
	"deal-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const webhookSecret = "whsec_e2e"

type UoWSuite struct {
	suite.Suite
	DB       *pgxpool.Pool
	clock    *clock.MockClock
	deals    commands.DealCommands
	checkout commands.CheckoutCommands
	orders   commands.OrderCommands
	favs     commands.FavoriteCommands
	payments commands.PaymentCommands
	verifier *payment.Verifier
	orderRS  *readstore.OrderReadStore
}

func TestUoWSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UoWSuite))
}

func (s *UoWSuite) SetupSuite() {
	t := s.T()
	pool, _ := dbtest.NewDatabase(t)
	s.DB = pool

	az, err := authz.NewAuthorizer()
	require.NoError(t, err)

	q := sqlc.New()
	u := uow.NewPostgresUoW(pool, q)
	s.clock = clock.NewMockClock(time.Now().UTC().Truncate(time.Microsecond))
	s.verifier = payment.NewVerifier(webhookSecret, 5*time.Minute)

	s.deals = commands.NewDealUseCase(u, az, s.clock)
	s.checkout = commands.NewCheckoutUseCase(u, az, s.clock)
	s.orders = commands.NewOrderUseCase(u, az, s.clock)
	s.favs = commands.NewFavoriteUseCase(u, az, s.clock)
	s.payments = commands.NewPaymentUseCase(u, s.verifier, s.clock)
	s.orderRS = readstore.NewOrderReadStore(q, pool)
}

func (s *UoWSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB))
}

func (s *UoWSuite) publishedDeal(restaurantID string) (uuid.UUID, uuid.UUID) {
	t := s.T()
	ownerID := dbtest.CreateOwner(t, s.DB, restaurantID, "Taqueria Siete")
	id := dbtest.InsertDeal(t, s.DB, builder.NewDealBuilder().
		WithRestaurant(restaurantID, "Taqueria Siete").
		WithStatus(domdeal.StatusPublished).
		With(func(b *builder.DealBuilder) { b.CreatedBy = ownerID }))
	return id, ownerID
}

func (s *UoWSuite) TestConcurrentApproval() {
	s.Run("exactly one of two concurrent approvals wins", func() {
		t := s.T()
		ownerID := dbtest.CreateOwner(t, s.DB, "taqueria-7", "Taqueria Siete")
		dealID := dbtest.InsertDeal(t, s.DB, builder.NewDealBuilder().
			WithStatus(domdeal.StatusSubmitted).
			With(func(b *builder.DealBuilder) { b.CreatedBy = ownerID }))
		admin := user.NewActor(dbtest.CreateUser(t, s.DB, user.RoleAdmin), user.RoleAdmin)

		const racers = 2
		var wg sync.WaitGroup
		results := make([]error, racers)
		start := make(chan struct{})
		for i := range racers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, results[i] = s.deals.ApproveDeal(context.Background(), admin, dealID)
			}(i)
		}
		close(start)
		wg.Wait()

		var wins, conflicts int
		for _, err := range results {
			switch {
			case err == nil:
				wins++
			case errs.Is(err, errs.ErrConflict):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, 1, conflicts)
		assert.Equal(t, string(domdeal.StatusPublished), dbtest.DealStatus(t, s.DB, dealID))
		assert.Equal(t, 1, dbtest.Count(t, s.DB, "notifications", "user_id = $1 AND kind = 'deal_approved'", ownerID))
	})
}

func (s *UoWSuite) TestCheckoutSnapshot() {
	s.Run("order lines keep the deal as it was at checkout", func() {
		t := s.T()
		ctx := context.Background()
		dealID, _ := s.publishedDeal("taqueria-7")
		customer := user.NewActor(dbtest.CreateUser(t, s.DB, user.RoleCustomer), user.RoleCustomer)

		o, err := s.checkout.Checkout(ctx, customer, commands.CheckoutRequest{
			Items: []commands.CheckoutItem{{DealID: dealID, Qty: 3}},
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("30.00").Equal(o.Total()))

		_, err = s.DB.Exec(ctx, "UPDATE deals SET title = 'Renamed', price = 99 WHERE id = $1", dealID)
		require.NoError(t, err)

		view, err := s.orderRS.FindByID(ctx, o.ID())
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "Two tacos lunch", view.Items[0].Title)
		assert.Equal(t, "Two tacos lunch", view.Items[0].DealSnapshot.Title)
		assert.True(t, decimal.RequireFromString("10.00").Equal(view.Items[0].UnitPrice))
		assert.Equal(t, string(order.StatusPlaced), view.Status)
	})

	s.Run("unpublished deal aborts the whole order", func() {
		t := s.T()
		published, ownerID := s.publishedDeal("taqueria-7")
		draft := dbtest.InsertDeal(t, s.DB, builder.NewDealBuilder().
			With(func(b *builder.DealBuilder) { b.CreatedBy = ownerID }))
		customer := user.NewActor(dbtest.CreateUser(t, s.DB, user.RoleCustomer), user.RoleCustomer)

		_, err := s.checkout.Checkout(context.Background(), customer, commands.CheckoutRequest{
			Items: []commands.CheckoutItem{{DealID: published, Qty: 1}, {DealID: draft, Qty: 1}},
		})
		require.ErrorIs(t, err, commands.ErrDealUnavailable)
		assert.Equal(t, 0, dbtest.Count(t, s.DB, "orders", ""))
		assert.Equal(t, 0, dbtest.Count(t, s.DB, "order_items", ""))
	})
}

func (s *UoWSuite) TestOrderLifecycle() {
	s.Run("owner advances forward and the customer is told", func() {
		t := s.T()
		ctx := context.Background()
		dealID, ownerID := s.publishedDeal("taqueria-7")
		customerID := dbtest.CreateUser(t, s.DB, user.RoleCustomer)
		o, err := s.checkout.Checkout(ctx, user.NewActor(customerID, user.RoleCustomer), commands.CheckoutRequest{
			Items: []commands.CheckoutItem{{DealID: dealID, Qty: 1}},
		})
		require.NoError(t, err)
		owner := user.NewActor(ownerID, user.RoleOwner)

		res, err := s.orders.AdvanceOrderStatus(ctx, owner, o.ID(), "Ready")
		require.NoError(t, err)
		assert.Equal(t, order.StatusReady, res.Status)

		_, err = s.orders.AdvanceOrderStatus(ctx, owner, o.ID(), "Preparing")
		require.ErrorIs(t, err, order.ErrIllegalTransition)

		assert.Equal(t, 1, dbtest.Count(t, s.DB, "notifications", "user_id = $1 AND kind = 'order_status'", customerID))
	})

	s.Run("owner of another restaurant sees not found", func() {
		t := s.T()
		ctx := context.Background()
		dealID, _ := s.publishedDeal("taqueria-7")
		otherOwner := dbtest.CreateOwner(t, s.DB, "pho-21", "Pho 21")
		o, err := s.checkout.Checkout(ctx, user.NewActor(dbtest.CreateUser(t, s.DB, user.RoleCustomer), user.RoleCustomer),
			commands.CheckoutRequest{Items: []commands.CheckoutItem{{DealID: dealID, Qty: 1}}})
		require.NoError(t, err)

		_, err = s.orders.AdvanceOrderStatus(ctx, user.NewActor(otherOwner, user.RoleOwner), o.ID(), "Preparing")
		require.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}

func (s *UoWSuite) TestPaymentReconcile() {
	s.Run("redelivered event settles the order once", func() {
		t := s.T()
		ctx := context.Background()
		customerID := dbtest.CreateUser(t, s.DB, user.RoleCustomer)
		orderID := uuid.New()
		createdAt := s.clock.Now().Add(-time.Minute)
		_, err := s.DB.Exec(ctx,
			`INSERT INTO orders (id, user_id, total, status, payment_reference, created_at, updated_at)
			 VALUES ($1, $2, 10, 'Placed', 'pi_123', $3, $3)`,
			orderID, customerID, createdAt)
		require.NoError(t, err)

		payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","created":1,"data":{"object":{"id":"pi_123"}}}`)
		sig := s.verifier.Sign(payload, s.clock.Now())

		first, err := s.payments.Reconcile(ctx, payload, sig)
		require.NoError(t, err)
		assert.True(t, first.Applied)

		var paidAt time.Time
		require.NoError(t, s.DB.QueryRow(ctx, "SELECT paid_at FROM orders WHERE id = $1", orderID).Scan(&paidAt))

		s.clock.Add(time.Second)
		replay, err := s.payments.Reconcile(ctx, payload, s.verifier.Sign(payload, s.clock.Now()))
		require.NoError(t, err)
		assert.False(t, replay.Applied)

		var after time.Time
		require.NoError(t, s.DB.QueryRow(ctx, "SELECT paid_at FROM orders WHERE id = $1", orderID).Scan(&after))
		assert.True(t, paidAt.Equal(after))
	})

	s.Run("tampered payload changes nothing", func() {
		t := s.T()
		payload := []byte(`{"id":"evt_2","type":"payment_intent.succeeded","data":{"object":{"id":"pi_x"}}}`)
		sig := s.verifier.Sign(payload, s.clock.Now())

		_, err := s.payments.Reconcile(context.Background(), append(payload, ' '), sig)
		require.ErrorIs(t, err, payment.ErrInvalidSignature)
	})
}

func (s *UoWSuite) TestFavorites() {
	s.Run("favoriting twice keeps one row", func() {
		t := s.T()
		ctx := context.Background()
		dealID, _ := s.publishedDeal("taqueria-7")
		customer := user.NewActor(dbtest.CreateUser(t, s.DB, user.RoleCustomer), user.RoleCustomer)

		first, err := s.favs.Favorite(ctx, customer, dealID)
		require.NoError(t, err)
		assert.False(t, first.AlreadyFavorited)

		second, err := s.favs.Favorite(ctx, customer, dealID)
		require.NoError(t, err)
		assert.True(t, second.AlreadyFavorited)
		assert.Equal(t, 1, dbtest.Count(t, s.DB, "favorites", "user_id = $1", customer.ID))

		require.NoError(t, s.favs.Unfavorite(ctx, customer, dealID))
		require.NoError(t, s.favs.Unfavorite(ctx, customer, dealID))
		assert.Equal(t, 0, dbtest.Count(t, s.DB, "favorites", "user_id = $1", customer.ID))
	})
}
