//go:build e2e

package reservation_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	resdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/response"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/authtest"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/dbtest"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/httptest"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const day = "2030-01-10"

type flowSuite struct {
	e2e.SharedSuite

	resourceID uuid.UUID
	aliceID    uuid.UUID
	admin      string
	alice      string
	bob        string
}

func TestFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(flowSuite))
}

func (s *flowSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.resourceID = dbtest.CreateTestResource(t, s.DB, "Centrifuge", 2)
	_, s.admin = authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
	s.aliceID, s.alice = authtest.CreateAndLogin(t, s.DB, s.Router, "alice@example.com", string(user.RoleUser))
	_, s.bob = authtest.CreateAndLogin(t, s.DB, s.Router, "bob@example.com", string(user.RoleUser))
}

type result struct {
	code int
	body []byte
}

func (r *result) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), string(r.body))
}

func (s *flowSuite) reserve(token, start, end string, qty int) *result {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", request.CreateReservationRequest{
		ResourceID: s.resourceID,
		Date:       day,
		StartTime:  start,
		EndTime:    end,
		Quantity:   qty,
		Purpose:    "cell culture",
	}, token)
	return &result{code: w.Code, body: w.Body.Bytes()}
}

func (s *flowSuite) transition(token string, id uuid.UUID, status string) resdto.ReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/reservations/"+id.String()+"/status",
		request.TransitionReservationRequest{Status: status}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.ReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *flowSuite) availability(start, end string) queries.AvailabilityView {
	t := s.T()
	path := "/api/resources/" + s.resourceID.String() + "/availability?date=" + day + "&start_time=" + start + "&end_time=" + end
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, s.alice)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view queries.AvailabilityView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return view
}

func (s *flowSuite) TestCapacity() {
	s.Run("approved reservations consume capacity and touching windows do not overlap", func() {
		t := s.T()

		created := s.reserve(s.alice, "09:00", "11:00", 2)
		require.Equal(t, http.StatusCreated, created.code, string(created.body))
		var first resdto.ReservationResponse
		created.decode(t, &first)
		require.Equal(t, "pending", first.Status)
		require.Equal(t, day, first.Date)

		require.Equal(t, 2, s.availability("09:00", "11:00").Remaining, "pending reservations hold no capacity")

		approved := s.transition(s.admin, first.ID, "approved")
		require.Equal(t, "approved", approved.Status)
		require.NotNil(t, approved.ApprovedBy)

		view := s.availability("10:00", "10:30")
		require.Equal(t, 0, view.Remaining)
		require.False(t, view.Available)
		require.Len(t, view.Booked, 1)

		rejected := s.reserve(s.bob, "10:30", "12:00", 1)
		require.Equal(t, http.StatusConflict, rejected.code, string(rejected.body))
		var body struct {
			Detail struct {
				Requested int `json:"requested"`
				Remaining int `json:"remaining"`
			} `json:"detail"`
		}
		rejected.decode(t, &body)
		require.Equal(t, 1, body.Detail.Requested)
		require.Equal(t, 0, body.Detail.Remaining)

		touching := s.reserve(s.bob, "11:00", "12:00", 2)
		require.Equal(t, http.StatusCreated, touching.code, string(touching.body))
	})

	s.Run("approving past capacity is refused", func() {
		t := s.T()

		a := s.reserve(s.alice, "09:00", "10:00", 2)
		b := s.reserve(s.bob, "09:30", "10:30", 1)
		require.Equal(t, http.StatusCreated, a.code)
		require.Equal(t, http.StatusCreated, b.code)

		var ra, rb resdto.ReservationResponse
		a.decode(t, &ra)
		b.decode(t, &rb)
		s.transition(s.admin, ra.ID, "approved")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/reservations/"+rb.ID.String()+"/status",
			request.TransitionReservationRequest{Status: "approved"}, s.admin)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations", "status = 'approved'"))
	})

	s.Run("users cannot approve", func() {
		t := s.T()

		a := s.reserve(s.alice, "09:00", "10:00", 1)
		var ra resdto.ReservationResponse
		a.decode(t, &ra)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/reservations/"+ra.ID.String()+"/status",
			request.TransitionReservationRequest{Status: "approved"}, s.alice)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *flowSuite) TestWaitingList() {
	s.Run("cancellation notifies and fulfilment allocates", func() {
		t := s.T()

		held := s.reserve(s.alice, "09:00", "11:00", 2)
		require.Equal(t, http.StatusCreated, held.code)
		var r resdto.ReservationResponse
		held.decode(t, &r)
		s.transition(s.admin, r.ID, "approved")

		date, start, end := day, "09:00", "11:00"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/waitlist", request.JoinWaitlistRequest{
			ResourceID: s.resourceID,
			Quantity:   1,
			Priority:   "high",
			Preferred:  request.OptionalWindow{Date: &date, StartTime: &start, EndTime: &end},
		}, s.bob)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var entry resdto.WaitlistEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &entry))
		require.Equal(t, "waiting", entry.Status)

		dup := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/waitlist",
			request.JoinWaitlistRequest{ResourceID: s.resourceID, Quantity: 1}, s.bob)
		require.Equal(t, http.StatusConflict, dup.Code, dup.Body.String())

		cancelled := s.transition(s.alice, r.ID, "cancelled")
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "waiting_list_entries", "id = $1 AND status = 'notified'", entry.ID))

		f := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/waitlist/"+entry.ID.String()+"/fulfill", nil, s.admin)
		require.Equal(t, http.StatusCreated, f.Code, f.Body.String())
		var allocated resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, f.Body, &allocated))
		require.Equal(t, "approved", allocated.Status)
		require.Equal(t, 1, allocated.Quantity)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "waiting_list_entries", "id = $1 AND status = 'fulfilled' AND reservation_id = $2", entry.ID, allocated.ID))
		require.Equal(t, 1, s.availability("09:00", "11:00").Remaining)
	})
}

func (s *flowSuite) TestBorrowReturn() {
	issue := func(t *testing.T) resdto.BorrowResponse {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/borrows", request.IssueBorrowRequest{
			ResourceID:     s.resourceID,
			BorrowerID:     s.aliceID,
			Quantity:       1,
			ExpectedReturn: time.Now().Add(48 * time.Hour),
		}, s.admin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.BorrowResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		return res
	}
	stock := func(t *testing.T) int {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/resources/"+s.resourceID.String(), nil, s.admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res resdto.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		return res.TotalStock
	}
	ret := func(t *testing.T, id uuid.UUID, condition string) int {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/borrows/"+id.String()+"/return",
			request.ReturnBorrowRequest{Condition: condition, Notes: "checked"}, s.admin)
		return w.Code
	}

	s.Run("good return restores stock", func() {
		t := s.T()
		rec := issue(t)
		require.Equal(t, 1, stock(t))

		require.Equal(t, http.StatusOK, ret(t, rec.ID, "good"))
		require.Equal(t, 2, stock(t))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "maintenance_tickets", ""))

		require.Equal(t, http.StatusConflict, ret(t, rec.ID, "good"), "second return must be refused")
		require.Equal(t, 2, stock(t))
	})

	s.Run("units held by approved reservations cannot be issued", func() {
		t := s.T()
		held := s.reserve(s.alice, "09:00", "11:00", 2)
		require.Equal(t, http.StatusCreated, held.code)
		var r resdto.ReservationResponse
		held.decode(t, &r)
		s.transition(s.admin, r.ID, "approved")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/borrows", request.IssueBorrowRequest{
			ResourceID:     s.resourceID,
			BorrowerID:     s.aliceID,
			Quantity:       1,
			ExpectedReturn: time.Now().Add(48 * time.Hour),
		}, s.admin)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 2, stock(t))
	})

	s.Run("damaged return opens a ticket and keeps stock out", func() {
		t := s.T()
		rec := issue(t)

		require.Equal(t, http.StatusOK, ret(t, rec.ID, "damaged"))
		require.Equal(t, 1, stock(t))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "maintenance_tickets", "borrow_record_id = $1 AND condition_status = 'damaged'", rec.ID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "activity_logs", "entity_id = $1 AND action = 'returned'", rec.ID))
	})
}
