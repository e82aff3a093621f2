//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walkies/internal/domain/booking"
	"walkies/internal/domain/user"
	"walkies/internal/handler/api"
	"walkies/internal/usecase/commands"
	"walkies/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Scripted stand-ins for the usecase layer: each call returns whatever the
// test primed, recording the arguments it saw.

type stubBookingCommands struct {
	view       *queries.BookingView
	err        error
	gotActor   booking.Actor
	gotParams  commands.CreateBookingParams
	gotTarget  booking.Status
	gotText    string
	gotBooking uuid.UUID
}

func (s *stubBookingCommands) Create(_ context.Context, actor booking.Actor, params commands.CreateBookingParams) (*queries.BookingView, error) {
	s.gotActor = actor
	s.gotParams = params
	return s.view, s.err
}

func (s *stubBookingCommands) Transition(_ context.Context, actor booking.Actor, id uuid.UUID, target booking.Status) (*queries.BookingView, error) {
	s.gotActor = actor
	s.gotBooking = id
	s.gotTarget = target
	return s.view, s.err
}

func (s *stubBookingCommands) UpdateInstructions(_ context.Context, actor booking.Actor, id uuid.UUID, instructions string) (*queries.BookingView, error) {
	s.gotActor = actor
	s.gotBooking = id
	s.gotText = instructions
	return s.view, s.err
}

type stubBookingQueries struct {
	view  *queries.BookingView
	items []*queries.BookingListItem
	err   error
}

func (s *stubBookingQueries) GetByID(context.Context, booking.Actor, uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingQueries) GetByIDSystem(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingQueries) ListByActor(context.Context, booking.Actor) ([]*queries.BookingListItem, error) {
	return s.items, s.err
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubBookingCommands
	queries  *stubBookingQueries
	actorID  uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubBookingCommands{}
	s.queries = &stubBookingQueries{}
	s.actorID = uuid.New()
	handler := api.NewBookingHandler(s.commands, s.queries)

	authAs := func(role user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.actorID)
			c.Set("user_role", role)
			c.Next()
		}
	}

	s.router.POST("/bookings", authAs(user.RoleOwner), handler.CreateBooking)
	s.router.GET("/bookings", authAs(user.RoleOwner), handler.ListBookings)
	s.router.GET("/bookings/:id", authAs(user.RoleOwner), handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", authAs(user.RoleWalker), handler.UpdateBookingStatus)
	s.router.PATCH("/bookings/:id/instructions", authAs(user.RoleOwner), handler.UpdateInstructions)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) sampleView() *queries.BookingView {
	start := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:         uuid.New(),
		PetID:      uuid.New(),
		PetName:    "Buddy",
		OwnerID:    s.actorID,
		OwnerName:  "Pat Harper",
		WalkerID:   uuid.New(),
		WalkerName: "Jane Smith",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     "pending",
		PriceCents: 2000,
	}
}

func (s *BookingHandlerTestSuite) validCreateBody() map[string]any {
	return map[string]any{
		"petId":               uuid.New().String(),
		"walkerId":            uuid.New().String(),
		"startTime":           "2024-01-10T10:00:00Z",
		"endTime":             "2024-01-10T11:00:00Z",
		"specialInstructions": "ring the bell",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("returns 201 for a valid request", func() {
		s.commands.view = s.sampleView()
		s.commands.err = nil

		rec := s.perform(http.MethodPost, "/bookings", s.validCreateBody())

		s.Equal(http.StatusCreated, rec.Code)
		s.Equal(s.actorID, s.commands.gotActor.ID)
		s.Equal(user.RoleOwner, s.commands.gotActor.Role)
		s.Contains(rec.Body.String(), "Buddy")
	})

	s.Run("returns 400 for malformed body", func() {
		rec := s.perform(http.MethodPost, "/bookings", map[string]any{"petId": "not-a-uuid"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 400 for an invalid time slot", func() {
		s.commands.view = nil
		s.commands.err = commands.ErrInvalidTimeSlot

		rec := s.perform(http.MethodPost, "/bookings", s.validCreateBody())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 404 when the walker does not exist", func() {
		s.commands.err = commands.ErrWalkerNotFound

		rec := s.perform(http.MethodPost, "/bookings", s.validCreateBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns 409 when the slot is taken", func() {
		s.commands.err = commands.ErrSlotUnavailable

		rec := s.perform(http.MethodPost, "/bookings", s.validCreateBody())
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("returns 200 with the view", func() {
		s.queries.view = s.sampleView()
		s.queries.err = nil

		rec := s.perform(http.MethodGet, "/bookings/"+uuid.New().String(), nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Jane Smith")
	})

	s.Run("returns 400 for a malformed id", func() {
		rec := s.perform(http.MethodGet, "/bookings/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 404 when missing", func() {
		s.queries.view = nil
		s.queries.err = queries.ErrBookingNotFound

		rec := s.perform(http.MethodGet, "/bookings/"+uuid.New().String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns 403 for non-participants", func() {
		s.queries.err = queries.ErrAccessDenied

		rec := s.perform(http.MethodGet, "/bookings/"+uuid.New().String(), nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	url := "/bookings/" + uuid.New().String() + "/status"

	s.Run("returns 200 on a legal transition", func() {
		view := s.sampleView()
		view.Status = "confirmed"
		s.commands.view = view
		s.commands.err = nil

		rec := s.perform(http.MethodPatch, url, map[string]any{"status": "confirmed"})
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(booking.StatusConfirmed, s.commands.gotTarget)
	})

	s.Run("returns 400 for an unknown status value", func() {
		rec := s.perform(http.MethodPatch, url, map[string]any{"status": "cancelled"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 403 when the wrong side acts", func() {
		s.commands.view = nil
		s.commands.err = commands.ErrForbidden

		rec := s.perform(http.MethodPatch, url, map[string]any{"status": "confirmed"})
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("returns 422 for an illegal transition", func() {
		s.commands.err = commands.ErrInvalidTransition

		rec := s.perform(http.MethodPatch, url, map[string]any{"status": "completed"})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("returns 409 when the booking changed concurrently", func() {
		s.commands.err = commands.ErrStatusConflict

		rec := s.perform(http.MethodPatch, url, map[string]any{"status": "confirmed"})
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateInstructions() {
	url := "/bookings/" + uuid.New().String() + "/instructions"

	s.Run("returns 200 and forwards the text", func() {
		s.commands.view = s.sampleView()
		s.commands.err = nil

		rec := s.perform(http.MethodPatch, url, map[string]any{"specialInstructions": "gate code 4821"})
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("gate code 4821", s.commands.gotText)
	})

	s.Run("returns 422 once the booking closed", func() {
		s.commands.view = nil
		s.commands.err = commands.ErrInvalidTransition

		rec := s.perform(http.MethodPatch, url, map[string]any{"specialInstructions": "too late"})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("returns the actor's bookings", func() {
		s.queries.items = []*queries.BookingListItem{
			{ID: uuid.New(), PetName: "Buddy", Status: "pending", PriceCents: 2000},
		}
		s.queries.err = nil

		rec := s.perform(http.MethodGet, "/bookings", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Buddy")
	})
}
