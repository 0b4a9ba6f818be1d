//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"deal-marketplace/internal/domain/order"
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/handler/api"
	resdto "deal-marketplace/internal/handler/dto/response"
	commandsmock "deal-marketplace/internal/mock/commands"
	queriesmock "deal-marketplace/internal/mock/queries"
	"deal-marketplace/internal/testutil/builder"
	"deal-marketplace/internal/testutil/httptest"
	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	actor        user.Actor
}

func (s *OrderHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.actor = newActor(user.RoleCustomer)
	h := api.NewOrderHandler(s.mockCheckout, s.mockCommands, s.mockQueries)

	auth := fakeAuth(&s.actor)
	s.router.POST("/orders", auth, h.Checkout)
	s.router.GET("/orders", auth, h.ListMine)
	s.router.GET("/orders/:id", auth, h.GetMine)
	s.router.GET("/owner/orders", auth, h.ListRestaurant)
	s.router.PUT("/owner/orders/:id/status", auth, h.AdvanceStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCheckout() {
	dealID := uuid.New()
	body := map[string]any{
		"items":       []map[string]any{{"deal_id": dealID, "qty": 2}},
		"payment_ref": "pi_123",
	}

	s.Run("success: returns 201 with the snapshotted order", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.UserID = s.actor.ID
			b.Qty = []int{2}
		}).BuildDomain()
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, req commands.CheckoutRequest) (*order.Order, error) {
				s.Require().Len(req.Items, 1)
				s.Equal(dealID, req.Items[0].DealID)
				s.Equal(2, req.Items[0].Qty)
				s.Require().NotNil(req.PaymentRef)
				s.Equal("pi_123", *req.PaymentRef)
				return o, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", body, "token")

		var got resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("Placed", got.Status)
		s.Require().Len(got.Items, 1)
		s.Equal(2, got.Items[0].Qty)
		s.True(o.Total().Equal(got.Total))
	})

	s.Run("error: unavailable deal returns 400", func() {
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, commands.ErrDealUnavailable)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not available")
	})

	s.Run("error: empty cart returns 400", func() {
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, order.ErrItemsRequired)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", map[string]any{"items": []any{}}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "items required")
	})

	s.Run("error: malformed deal id is rejected before the usecase", func() {
		bad := map[string]any{"items": []map[string]any{{"deal_id": "nope", "qty": 1}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", bad, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *OrderHandlerTestSuite) TestListMine() {
	views := []*queries.OrderView{
		builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.UserID = s.actor.ID }).BuildView(),
	}
	s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "token")

	var got []resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Require().Len(got, 1)
	s.Equal(views[0].ID, got[0].ID)
	s.Equal(views[0].Items[0].DealSnapshot.Title, got[0].Items[0].DealSnapshot.Title)
}

func (s *OrderHandlerTestSuite) TestGetMine() {
	s.Run("success: returns the order", func() {
		view := builder.NewOrderBuilder().BuildView()
		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.actor, view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: someone else's order returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.actor, id).Return(nil, queries.ErrOrderNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})
}

func (s *OrderHandlerTestSuite) TestListRestaurant() {
	s.actor = newActor(user.RoleOwner)
	s.mockQueries.EXPECT().ListRestaurantOrders(gomock.Any(), s.actor).Return([]*queries.OrderView{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/orders", nil, "token")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq("[]", rec.Body.String())
}

func (s *OrderHandlerTestSuite) TestAdvanceStatus() {
	s.actor = newActor(user.RoleOwner)
	id := uuid.New()
	url := "/owner/orders/" + id.String() + "/status"

	s.Run("success: returns the new status", func() {
		s.mockCommands.EXPECT().AdvanceOrderStatus(gomock.Any(), s.actor, id, "Ready").
			Return(&commands.OrderStatusResult{ID: id, Status: order.StatusReady}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "Ready"}, "token")

		var got resdto.OrderStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(resdto.OrderStatusResponse{ID: id, Status: "Ready"}, got)
	})

	s.Run("error: backward move returns 409", func() {
		s.mockCommands.EXPECT().AdvanceOrderStatus(gomock.Any(), s.actor, id, "Placed").
			Return(nil, order.ErrIllegalTransition)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "Placed"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "illegal transition")
	})

	s.Run("error: unknown status returns 400", func() {
		s.mockCommands.EXPECT().AdvanceOrderStatus(gomock.Any(), s.actor, id, "Shipped").
			Return(nil, order.ErrInvalidStatus)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "Shipped"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status")
	})

	s.Run("error: missing status is rejected before the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
