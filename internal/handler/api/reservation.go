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

type ReservationHandler struct {
	cmds   commands.ReservationCommands
	q      queries.ReservationQueries
	policy reservation.Policy
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, policy reservation.Policy) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, policy: policy}
}

// @Summary Create reservation
// @Description Request units of a resource for a time window on one day. Times are wall clock in the engine time zone.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	date, window, err := req.Window(h.policy.Location)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	r, err := h.cmds.Create(c.Request.Context(), actor, commands.CreateReservationInput{
		ResourceID: req.ResourceID,
		Date:       date,
		Window:     window,
		Quantity:   req.Quantity,
		Purpose:    req.Purpose,
		Notes:      req.GetNotes(),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, r)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List reservations
// @Description Lists the caller's reservations. Admins may pass requester_id to list another user's.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param requester_id query string false "Requester (admin only)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ReservationListResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	requester := actor.ID
	other, ok := optionalUUID(c, "requester_id")
	if !ok {
		return
	}
	if other != nil && *other != actor.ID {
		if !actor.IsAdmin() {
			httperr.Abort(c, queries.ErrReservationAccess)
			return
		}
		requester = *other
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListByRequester(c.Request.Context(), requester, queries.ReservationFilter{Status: c.Query("status")}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(res, next))
}

// @Summary Change reservation status
// @Description Admins approve, reject or complete. Requesters may cancel their own reservation.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionReservationRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) Transition(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.TransitionReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.cmds.Transition(c.Request.Context(), actor, id, reservation.Status(req.Status), req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, r)
}

// @Summary Purge reservation
// @Description Deletes a reservation in a terminal status. Admin only.
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Purge(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Purge(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respond(c *gin.Context, status int, r *reservation.Reservation) {
	res, err := resdto.FromReservation(r)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
