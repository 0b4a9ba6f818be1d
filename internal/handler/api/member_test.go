//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

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

type MemberHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockFavCmds   *commandsmock.MockFavoriteCommands
	mockFavQ      *queriesmock.MockFavoriteQueries
	mockNotifCmds *commandsmock.MockNotificationCommands
	mockNotifQ    *queriesmock.MockNotificationQueries
	actor         user.Actor
}

func (s *MemberHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFavCmds = commandsmock.NewMockFavoriteCommands(s.mockCtrl)
	s.mockFavQ = queriesmock.NewMockFavoriteQueries(s.mockCtrl)
	s.mockNotifCmds = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockNotifQ = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.actor = newActor(user.RoleCustomer)

	fav := api.NewFavoriteHandler(s.mockFavCmds, s.mockFavQ)
	notif := api.NewNotificationHandler(s.mockNotifCmds, s.mockNotifQ)
	auth := fakeAuth(&s.actor)
	s.router.GET("/favorites", auth, fav.List)
	s.router.POST("/favorites/:dealId", auth, fav.Add)
	s.router.DELETE("/favorites/:dealId", auth, fav.Remove)
	s.router.GET("/notifications", auth, notif.List)
	s.router.PATCH("/notifications/read-all", auth, notif.MarkAllRead)
	s.router.PATCH("/notifications/:id/read", auth, notif.MarkRead)
}

func (s *MemberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

// ================================================================================
// Favorites
// ================================================================================

func (s *MemberHandlerTestSuite) TestAddFavorite() {
	dealID := uuid.New()
	url := "/favorites/" + dealID.String()

	s.Run("first favorite returns 201", func() {
		s.mockFavCmds.EXPECT().Favorite(gomock.Any(), s.actor, dealID).
			Return(&commands.FavoriteResult{DealID: dealID}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var got resdto.FavoriteResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.False(got.AlreadyFavorited)
	})

	s.Run("repeat favorite returns 200", func() {
		s.mockFavCmds.EXPECT().Favorite(gomock.Any(), s.actor, dealID).
			Return(&commands.FavoriteResult{DealID: dealID, AlreadyFavorited: true}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var got resdto.FavoriteResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.AlreadyFavorited)
	})

	s.Run("unpublished deal returns 404", func() {
		s.mockFavCmds.EXPECT().Favorite(gomock.Any(), s.actor, dealID).Return(nil, commands.ErrDealNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "deal not found")
	})
}

func (s *MemberHandlerTestSuite) TestRemoveFavorite() {
	dealID := uuid.New()
	s.mockFavCmds.EXPECT().Unfavorite(gomock.Any(), s.actor, dealID).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/favorites/"+dealID.String(), nil, "token")

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *MemberHandlerTestSuite) TestListFavorites() {
	deal := builder.NewDealBuilder().BuildView()
	views := []*queries.FavoriteView{{FavoritedAt: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), Deal: *deal}}
	s.mockFavQ.EXPECT().ListMine(gomock.Any(), s.actor).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/favorites", nil, "token")

	var got []resdto.FavoriteResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Require().Len(got, 1)
	s.Equal(deal.ID, got[0].Deal.ID)
}

// ================================================================================
// Notifications
// ================================================================================

func (s *MemberHandlerTestSuite) TestListNotifications() {
	dealID := uuid.New()
	views := []*queries.NotificationView{{
		ID: uuid.New(), UserID: s.actor.ID, Kind: "deal_approved", Message: "approved", DealID: &dealID,
	}}
	s.mockNotifQ.EXPECT().ListMine(gomock.Any(), s.actor).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "token")

	var got []resdto.NotificationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Require().Len(got, 1)
	s.Equal(&dealID, got[0].DealID)
	s.Nil(got[0].OrderID)
}

func (s *MemberHandlerTestSuite) TestMarkRead() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockNotifCmds.EXPECT().MarkRead(gomock.Any(), s.actor, id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/"+id.String()+"/read", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: someone else's notification returns 404", func() {
		s.mockNotifCmds.EXPECT().MarkRead(gomock.Any(), s.actor, id).Return(commands.ErrNotificationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/"+id.String()+"/read", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "notification not found")
	})
}

func (s *MemberHandlerTestSuite) TestMarkAllRead() {
	s.mockNotifCmds.EXPECT().MarkAllRead(gomock.Any(), s.actor).Return(int64(3), nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/read-all", nil, "token")

	var got resdto.MarkAllReadResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Equal(int64(3), got.Updated)
}
