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

type DealHandler struct {
	cmds commands.DealCommands
	q    queries.DealQueries
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries) *DealHandler {
	return &DealHandler{cmds: cmds, q: q}
}

// @Summary Browse deals
// @Description Published deals with filters, sorting and pagination
// @Tags deals
// @Produce json
// @Param deal_type query string false "Lunch, Carryout, Delivery or Other"
// @Param city query string false "Restaurant city"
// @Param q query string false "Text search"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Param min_value query string false "Minimum discount value"
// @Param max_value query string false "Maximum discount value"
// @Param sort query string false "newest or value"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (1-50)"
// @Success 200 {object} resdto.DealPageResponse
// @Failure 400 {object} httperr.Response
// @Router /deals [get]
func (h *DealHandler) Browse(c *gin.Context) {
	var qs reqdto.BrowseDealsQuery
	if err := c.ShouldBindQuery(&qs); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := qs.ToFilter()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	page, err := h.q.Browse(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealPage(page))
}

// @Summary Get deal
// @Description Get a published deal by ID
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /deals/{id} [get]
func (h *DealHandler) GetPublished(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetPublished(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary List own deals
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DealResponse
// @Failure 403 {object} httperr.Response
// @Router /owner/deals [get]
func (h *DealHandler) ListOwn(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwnerDeals(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealViews(views))
}

// @Summary Create deal
// @Description Create a DRAFT deal for the caller's restaurant
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDealRequest true "Deal fields"
// @Success 201 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owner/deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateDealRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.cmds.CreateDeal(c.Request.Context(), actor, req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDeal(d))
}

// @Summary Update deal
// @Description Partial update of a DRAFT or REJECTED deal
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.UpdateDealRequest true "Changed fields"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateDealRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.cmds.UpdateDeal(c.Request.Context(), actor, id, req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeal(d))
}

// @Summary Delete deal
// @Tags owner
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteDeal(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit deal for review
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/deals/{id}/submit [post]
func (h *DealHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	d, err := h.cmds.SubmitDeal(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeal(d))
}

// @Summary Moderation queue
// @Description SUBMITTED deals, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DealResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/deals/submitted [get]
func (h *DealHandler) ListSubmitted(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListSubmitted(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealViews(views))
}

// @Summary Approve deal
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/deals/{id}/approve [post]
func (h *DealHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	d, err := h.cmds.ApproveDeal(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeal(d))
}

// @Summary Reject deal
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.RejectDealRequest true "Rejection reason"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/deals/{id}/reject [post]
func (h *DealHandler) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RejectDealRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.cmds.RejectDeal(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeal(d))
}
