//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"deal-marketplace/internal/domain/restaurant"
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RestaurantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRestaurantCommands
	mockQueries  *queriesmock.MockRestaurantQueries
	actor        user.Actor
}

func (s *RestaurantHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRestaurantCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRestaurantQueries(s.mockCtrl)
	s.actor = newActor(user.RoleOwner)
	h := api.NewRestaurantHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(&s.actor)
	s.router.GET("/restaurants/:restaurantId", h.Get)
	s.router.GET("/owner/restaurant", auth, h.GetMine)
	s.router.POST("/owner/restaurant", auth, h.Create)
	s.router.PUT("/owner/restaurant", auth, h.Update)
}

func (s *RestaurantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRestaurantHandlerSuite(t *testing.T) {
	suite.Run(t, new(RestaurantHandlerTestSuite))
}

func (s *RestaurantHandlerTestSuite) TestGet() {
	s.Run("success: public profile by slug", func() {
		view := builder.NewRestaurantBuilder().BuildView()
		s.mockQueries.EXPECT().Get(gomock.Any(), view.RestaurantID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/"+view.RestaurantID, nil, "")

		var got resdto.RestaurantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.RestaurantID, got.RestaurantID)
		s.Equal(view.Name, got.Name)
		s.Equal(view.OwnerID, got.OwnerID)
	})

	s.Run("error: unknown slug returns 404", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "nowhere").Return(nil, queries.ErrRestaurantNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/nowhere", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "restaurant not found")
	})
}

func (s *RestaurantHandlerTestSuite) TestGetMine() {
	view := builder.NewRestaurantBuilder().BuildView()
	s.mockQueries.EXPECT().GetMine(gomock.Any(), s.actor).Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/restaurant", nil, "token")

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *RestaurantHandlerTestSuite) TestCreate() {
	body := map[string]any{"name": "Taqueria Siete", "city": "Austin"}

	s.Run("error: second restaurant returns 409", func() {
		s.mockCommands.EXPECT().CreateMyRestaurant(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, in commands.RestaurantInput) (*restaurant.Restaurant, error) {
				s.Equal("Taqueria Siete", in.Name)
				s.Require().NotNil(in.Profile.City)
				s.Equal("Austin", *in.Profile.City)
				return nil, commands.ErrRestaurantExists
			})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/restaurant", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: blank name returns 400", func() {
		s.mockCommands.EXPECT().CreateMyRestaurant(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, restaurant.ErrNameRequired)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/restaurant", map[string]any{"name": ""}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "name is required")
	})
}

func (s *RestaurantHandlerTestSuite) TestUpdate() {
	s.mockCommands.EXPECT().UpdateMyRestaurant(gomock.Any(), s.actor, gomock.Any()).
		DoAndReturn(func(_ any, _ user.Actor, p restaurant.Patch) (*restaurant.Restaurant, error) {
			s.Require().NotNil(p.Phone)
			s.Equal("555-0100", *p.Phone)
			s.Nil(p.Name)
			return nil, commands.ErrRestaurantNotFound
		})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/owner/restaurant", map[string]any{"phone": "555-0100"}, "token")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "restaurant not found")
}
