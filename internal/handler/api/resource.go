package api

import (
	"net/http"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	reqdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	resdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/response"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/httperr"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	cmds   commands.ResourceCommands
	q      queries.ResourceQueries
	policy reservation.Policy
	clock  clock.Clock
}

func NewResourceHandler(cmds commands.ResourceCommands, q queries.ResourceQueries, policy reservation.Policy, clk clock.Clock) *ResourceHandler {
	return &ResourceHandler{cmds: cmds, q: q, policy: policy, clock: clk}
}

// @Summary Create resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateResourceRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.Create(c.Request.Context(), actor, commands.CreateResourceInput{
		Name:       req.Name,
		Category:   req.Category,
		TotalStock: *req.TotalStock,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResource(r))
}

// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ResourceResponse]
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), queries.ResourceFilter{Category: c.Query("category")}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromResourceViews(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(res, next))
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} queries.ResourceView
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Resource availability
// @Description Remaining units over a window. Without date and times the whole current day is used.
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param date query string false "YYYY-MM-DD"
// @Param start_time query string false "HH:MM"
// @Param end_time query string false "HH:MM"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	window, err := h.queryWindow(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), id, window)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ResourceHandler) queryWindow(c *gin.Context) (availability.Interval, error) {
	date := c.Query("date")
	start, end := c.DefaultQuery("start_time", "00:00"), c.DefaultQuery("end_time", "24:00")
	if date == "" {
		return availability.DayWindow(h.clock.Now(), h.policy.Location), nil
	}
	_, w, err := reqdto.ParseWindow(date, start, end, h.policy.Location)
	return w, err
}

// @Summary Signal restock
// @Description Adds units and offers the freed capacity to the waiting list. Delta 0 only rescans the waiting list.
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.RestockRequest true "Restock"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/restock [post]
func (h *ResourceHandler) Restock(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RestockRequest
	if !bindJSON(c, &req) {
		return
	}
	window, err := req.Window.Interval(h.policy.Location)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	r, err := h.cmds.SignalRestock(c.Request.Context(), actor, id, *req.Delta, window)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResource(r))
}
