//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/api"
	resdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/response"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/builder"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/httptest"
	commandsmock "github.com/benjietrozo-hub/labmate-guardian-sub000/tests/mock/commands"
	queriesmock "github.com/benjietrozo-hub/labmate-guardian-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BorrowHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBorrowCommands
	mockQueries  *queriesmock.MockBorrowQueries
	actorID      uuid.UUID
}

func (s *BorrowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBorrowCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBorrowQueries(s.mockCtrl)
	s.actorID = uuid.New()
	h := api.NewBorrowHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/borrows", asActor(s.actorID))
	g.POST("", h.Issue)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("/:id/return", h.Return)
}

func (s *BorrowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBorrowHandlerSuite(t *testing.T) {
	suite.Run(t, new(BorrowHandlerTestSuite))
}

var adminHeaders = map[string]string{"X-Test-Role": string(user.RoleAdmin)}

func (s *BorrowHandlerTestSuite) TestIssue() {
	b := builder.NewBorrowBuilder()
	body := map[string]any{
		"resource_id":          b.ResourceID,
		"borrower_id":          b.BorrowerID,
		"borrower_contact":     b.Contact,
		"quantity":             b.Quantity,
		"expected_return_date": b.ExpectedReturn.Format(time.RFC3339),
	}

	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), actorWith(s.actorID, user.RoleAdmin), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, in commands.IssueBorrowInput) (*borrow.Record, error) {
				s.Equal(b.ResourceID, in.ResourceID)
				s.Equal(b.Quantity, in.Quantity)
				s.True(b.ExpectedReturn.Equal(in.ExpectedReturn))
				return b.BuildDomain(), nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/borrows", body, adminHeaders)

		var response resdto.BorrowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("borrowed", response.Status)
		s.Equal("Microscope A", response.ItemName)
		s.True(b.ExpectedReturn.Equal(response.ExpectedReturnDate))
		s.Nil(response.ReturnCondition)
	})

	s.Run("error: 409 when stock is short", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Conflictf("only 0 units in stock")).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/borrows", body, adminHeaders)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict")
	})
}

func (s *BorrowHandlerTestSuite) TestReturn() {
	b := builder.NewBorrowBuilder()
	url := "/borrows/" + b.ID.String() + "/return"

	s.Run("success: returned record carries the condition", func() {
		rec := b.BuildDomain()
		s.Require().NoError(rec.Return(borrow.ConditionDamaged, "cracked lens", s.actorID, b.BorrowDate.Add(48*time.Hour)))
		s.mockCommands.EXPECT().
			ProcessReturn(gomock.Any(), actorWith(s.actorID, user.RoleAdmin), b.ID, commands.ProcessReturnInput{Condition: "damaged", Notes: "cracked lens"}).
			Return(rec, nil).Times(1)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"condition": "damaged", "notes": "cracked lens"}, adminHeaders)

		var response resdto.BorrowResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("returned", response.Status)
		s.Require().NotNil(response.ReturnCondition)
		s.Equal("damaged", *response.ReturnCondition)
		s.NotNil(response.ActualReturnDate)
	})

	s.Run("error: 400 for an unknown condition", func() {
		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, map[string]any{"condition": "lost"}, adminHeaders)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps command errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"already returned", errs.InvalidStatef("borrow record already returned"), http.StatusConflict, "Invalid state"},
			{"missing record", errs.NotFoundf("borrow record not found"), http.StatusNotFound, "Not found"},
			{"side effect failed", &borrow.ReturnProcessingError{BorrowID: b.ID, Cause: errs.NotFoundf("resource vanished")}, http.StatusInternalServerError, "Return processing failed"},
			{"unclassified", errors.New("connection reset"), http.StatusInternalServerError, "Internal error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ProcessReturn(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).Return(nil, tc.err).Times(1)
				w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, map[string]any{"condition": "good"}, adminHeaders)
				httptest.AssertErrorResponse(s.T(), w, tc.status, tc.msg)
			})
		}
	})
}

func (s *BorrowHandlerTestSuite) TestGetAndList() {
	view := &queries.BorrowView{ID: uuid.New(), ItemName: "Microscope A", Status: "borrowed", Quantity: 1}

	s.Run("get: 200", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil).Times(1)
		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/borrows/"+view.ID.String(), nil, map[string]string{"X-Test-Role": "user"})

		var response resdto.BorrowResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("list: passes filters through", func() {
		borrower := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(), actorWith(s.actorID, user.RoleAdmin), queries.BorrowFilter{Status: "borrowed", BorrowerID: &borrower}, (*queries.Cursor)(nil), 20).
			Return([]*queries.BorrowView{view}, nil, nil).Times(1)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/borrows?status=borrowed&borrower_id="+borrower.String(), nil, adminHeaders)

		var response resdto.Page[resdto.BorrowResponse]
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})

	s.Run("list: 400 for a malformed borrower id", func() {
		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/borrows?borrower_id=abc", nil, adminHeaders)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid borrower_id")
	})
}
