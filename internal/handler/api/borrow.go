package api

import (
	"net/http"

	reqdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	resdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/response"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/httperr"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BorrowHandler struct {
	cmds commands.BorrowCommands
	q    queries.BorrowQueries
}

func NewBorrowHandler(cmds commands.BorrowCommands, q queries.BorrowQueries) *BorrowHandler {
	return &BorrowHandler{cmds: cmds, q: q}
}

// @Summary Issue borrow
// @Description Hands units out of stock to a borrower. Admin only.
// @Tags borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueBorrowRequest true "Borrow"
// @Success 201 {object} resdto.BorrowResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /borrows [post]
func (h *BorrowHandler) Issue(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.IssueBorrowRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.cmds.Issue(c.Request.Context(), actor, commands.IssueBorrowInput{
		ResourceID:      req.ResourceID,
		BorrowerID:      req.BorrowerID,
		BorrowerContact: req.BorrowerContact,
		Quantity:        req.Quantity,
		ExpectedReturn:  req.ExpectedReturn,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, func() (*resdto.BorrowResponse, error) { return resdto.FromBorrow(rec) })
}

// @Summary Process return
// @Description Closes a borrow record. Good items go back to stock, others open a maintenance ticket. All effects apply together or not at all.
// @Tags borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Borrow record ID"
// @Param request body reqdto.ReturnBorrowRequest true "Return"
// @Success 200 {object} resdto.BorrowResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /borrows/{id}/return [post]
func (h *BorrowHandler) Return(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReturnBorrowRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.cmds.ProcessReturn(c.Request.Context(), actor, id, commands.ProcessReturnInput{
		Condition: req.Condition,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, func() (*resdto.BorrowResponse, error) { return resdto.FromBorrow(rec) })
}

// @Summary Get borrow record
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Borrow record ID"
// @Success 200 {object} resdto.BorrowResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /borrows/{id} [get]
func (h *BorrowHandler) Get(c *gin.Context) {
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
	h.respond(c, http.StatusOK, func() (*resdto.BorrowResponse, error) { return resdto.FromBorrowView(view) })
}

// @Summary List borrow records
// @Description Non-admins only see their own records.
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Param status query string false "borrowed or returned"
// @Param borrower_id query string false "Borrower (admin only)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.BorrowResponse]
// @Router /borrows [get]
func (h *BorrowHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	borrowerID, ok := optionalUUID(c, "borrower_id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), actor, queries.BorrowFilter{Status: c.Query("status"), BorrowerID: borrowerID}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBorrowViews(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(res, next))
}

func (h *BorrowHandler) respond(c *gin.Context, status int, build func() (*resdto.BorrowResponse, error)) {
	res, err := build()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
