package httperr

import (
	"errors"
	"net/http"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type capacityDetail struct {
	ResourceID  string `json:"resource_id"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Requested   int    `json:"requested"`
	Remaining   int    `json:"remaining"`
}

// Abort maps an error kind onto its HTTP status. Unclassified errors are 500s
// and never leak their message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status != http.StatusInternalServerError {
		detail = err.Error()
	}

	var capErr *availability.CapacityConflictError
	if errors.As(err, &capErr) {
		detail = capacityDetail{
			ResourceID:  capErr.ResourceID.String(),
			WindowStart: capErr.Window.Start.Format(timeLayout),
			WindowEnd:   capErr.Window.End.Format(timeLayout),
			Requested:   capErr.Requested,
			Remaining:   capErr.Remaining,
		}
	}

	AbortWithError(c, status, err, msg, detail)
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrReturnProcessing):
		return http.StatusInternalServerError, "Return processing failed"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, "Conflict"
	case errs.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, "Invalid status transition"
	case errs.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, "Invalid state"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
