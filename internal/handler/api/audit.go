package api

import (
	"net/http"

	resdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/response"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/httperr"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	maintenance queries.MaintenanceQueries
	activity    queries.ActivityLogQueries
}

func NewAuditHandler(maintenance queries.MaintenanceQueries, activity queries.ActivityLogQueries) *AuditHandler {
	return &AuditHandler{maintenance: maintenance, activity: activity}
}

// @Summary List maintenance tickets
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, in_progress or resolved"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.MaintenanceTicketResponse]
// @Failure 403 {object} httperr.Response
// @Router /maintenance/tickets [get]
func (h *AuditHandler) ListTickets(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.maintenance.List(c.Request.Context(), c.Query("status"), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}

// @Summary List activity log
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param entity_type query string false "resource, reservation, waiting_list_entry or borrow_record"
// @Param entity_id query string false "Entity ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ActivityLogResponse]
// @Failure 403 {object} httperr.Response
// @Router /activity-logs [get]
func (h *AuditHandler) ListActivity(c *gin.Context) {
	entityID, ok := optionalUUID(c, "entity_id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.activity.List(c.Request.Context(), queries.ActivityLogFilter{EntityType: c.Query("entity_type"), EntityID: entityID}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}
