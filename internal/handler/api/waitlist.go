package api

import (
	"net/http"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	reqdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	resdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/response"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/httperr"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	cmds   commands.WaitlistCommands
	q      queries.WaitlistQueries
	policy reservation.Policy
}

func NewWaitlistHandler(cmds commands.WaitlistCommands, q queries.WaitlistQueries, policy reservation.Policy) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds, q: q, policy: policy}
}

// @Summary Join waiting list
// @Tags waitlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.JoinWaitlistRequest true "Waiting list entry"
// @Success 201 {object} resdto.WaitlistEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.JoinWaitlistRequest
	if !bindJSON(c, &req) {
		return
	}
	preferred, err := req.Preferred.Interval(h.policy.Location)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	e, err := h.cmds.Join(c.Request.Context(), actor, commands.JoinWaitlistInput{
		ResourceID: req.ResourceID,
		Quantity:   req.Quantity,
		Preferred:  preferred,
		Priority:   req.Priority,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromWaitlistEntry(e)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List waiting list entries
// @Description Non-admins only see their own entries.
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Param resource_id query string false "Resource"
// @Param status query string false "waiting, notified, fulfilled or cancelled"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.WaitlistEntryResponse]
// @Router /waitlist [get]
func (h *WaitlistHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	resourceID, ok := optionalUUID(c, "resource_id")
	if !ok {
		return
	}
	filter := queries.WaitlistFilter{ResourceID: resourceID, Status: c.Query("status")}
	if !actor.IsAdmin() {
		self := actor.ID
		filter.RequesterID = &self
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromWaitlistViews(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(res, next))
}

// @Summary Cancel waiting list entry
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} resdto.WaitlistEntryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /waitlist/{id} [delete]
func (h *WaitlistHandler) Cancel(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromWaitlistEntry(e)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Fulfill waiting list entry
// @Description Allocates an approved reservation to a notified entry. Admin only.
// @Tags waitlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body reqdto.FulfillWaitlistRequest false "Window override"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /waitlist/{id}/fulfill [post]
func (h *WaitlistHandler) Fulfill(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.FulfillWaitlistRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	window, err := req.Window.Interval(h.policy.Location)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	r, err := h.cmds.Fulfill(c.Request.Context(), actor, id, window)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservation(r)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
