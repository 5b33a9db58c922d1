package api

import (
	"net/http"
	"strconv"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/httperr"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/middleware"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("no authenticated actor on request")

func actorOf(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID reads a query parameter; a malformed value aborts the request.
func optionalUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	id, err := uuid.Parse(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return nil, false
	}
	return &id, true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return false
	}
	return true
}
