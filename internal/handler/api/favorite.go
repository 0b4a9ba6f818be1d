package api

import (
	"net/http"

	resdto "deal-marketplace/internal/handler/dto/response"
	"deal-marketplace/internal/handler/httperr"
	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FavoriteResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFavoriteViews(views))
}

// @Summary Favorite a deal
// @Description Idempotent; repeating reports already_favorited
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param dealId path string true "Deal ID"
// @Success 200 {object} resdto.FavoriteResultResponse
// @Success 201 {object} resdto.FavoriteResultResponse
// @Failure 404 {object} httperr.Response
// @Router /favorites/{dealId} [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	dealID, ok := uuidParam(c, "dealId")
	if !ok {
		return
	}
	res, err := h.cmds.Favorite(c.Request.Context(), actor, dealID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	status := http.StatusCreated
	if res.AlreadyFavorited {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromFavoriteResult(res))
}

// @Summary Unfavorite a deal
// @Tags favorites
// @Security BearerAuth
// @Param dealId path string true "Deal ID"
// @Success 204 "No Content"
// @Router /favorites/{dealId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	dealID, ok := uuidParam(c, "dealId")
	if !ok {
		return
	}
	if err := h.cmds.Unfavorite(c.Request.Context(), actor, dealID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
