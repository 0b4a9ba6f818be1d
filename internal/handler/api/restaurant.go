package api

import (
	"net/http"

	reqdto "deal-marketplace/internal/handler/dto/request"
	resdto "deal-marketplace/internal/handler/dto/response"
	"deal-marketplace/internal/handler/httperr"
	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	cmds commands.RestaurantCommands
	q    queries.RestaurantQueries
}

func NewRestaurantHandler(cmds commands.RestaurantCommands, q queries.RestaurantQueries) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds, q: q}
}

// @Summary Get restaurant
// @Tags restaurants
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{restaurantId} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary Get my restaurant
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/restaurant [get]
func (h *RestaurantHandler) GetMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetMine(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary Create my restaurant
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRestaurantRequest true "Restaurant profile"
// @Success 201 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/restaurant [post]
func (h *RestaurantHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRestaurantRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.CreateMyRestaurant(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRestaurant(r))
}

// @Summary Update my restaurant
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateRestaurantRequest true "Changed fields"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/restaurant [put]
func (h *RestaurantHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRestaurantRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.UpdateMyRestaurant(c.Request.Context(), actor, req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurant(r))
}
