//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/handler/api"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/queries"
	queriesmock "meeting-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	handler := api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/rooms/availability", handler.RoomAvailabilityDetails)
	s.router.GET("/rooms/:id/availability", handler.CheckAvailability)
	s.router.GET("/rooms/:id/alternative-slots", handler.FindAlternativeSlots)
	s.router.GET("/rooms/:id/bookings", handler.ListRoomBookings)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	s.T().Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	roomID := uuid.New()

	s.Run("available room", func() {
		s.mockQueries.EXPECT().
			CheckRoomAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ any, gotRoomID *uuid.UUID, date time.Time, window booking.Window, _ *uuid.UUID) (bool, error) {
				s.Equal(roomID, *gotRoomID)
				s.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), date)
				s.Equal("09:00-10:00", window.String())
				return true, nil
			})

		rec := s.get(fmt.Sprintf("/rooms/%s/availability?date=2025-03-10&start=09:00&end=10:00", roomID))

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"available": true}`, rec.Body.String())
	})

	s.Run("exclude parameter is forwarded", func() {
		exclude := uuid.New()
		s.mockQueries.EXPECT().
			CheckRoomAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ *uuid.UUID, _ time.Time, _ booking.Window, gotExclude *uuid.UUID) (bool, error) {
				s.Require().NotNil(gotExclude)
				s.Equal(exclude, *gotExclude)
				return true, nil
			})

		rec := s.get(fmt.Sprintf("/rooms/%s/availability?date=2025-03-10&start=09:00&end=10:00&exclude=%s", roomID, exclude))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing query params", func() {
		rec := s.get(fmt.Sprintf("/rooms/%s/availability?date=2025-03-10", roomID))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed window", func() {
		rec := s.get(fmt.Sprintf("/rooms/%s/availability?date=2025-03-10&start=10:00&end=09:00", roomID))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("store unavailable", func() {
		s.mockQueries.EXPECT().
			CheckRoomAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errs.Mark(errs.New("store down"), errs.ErrStoreUnavailable))

		rec := s.get(fmt.Sprintf("/rooms/%s/availability?date=2025-03-10&start=09:00&end=10:00", roomID))

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}

func (s *AvailabilityHandlerTestSuite) TestFindAlternativeSlots() {
	roomID := uuid.New()

	s.Run("slots returned", func() {
		s.mockQueries.EXPECT().
			FindAlternativeSlots(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return([]queries.SlotView{
				{Start: "08:00", End: "09:00"},
				{Start: "10:00", End: "11:00"},
			}, nil)

		rec := s.get(fmt.Sprintf("/rooms/%s/alternative-slots?date=2025-03-10&start=09:00&end=10:00", roomID))

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "08:00")
		s.Contains(rec.Body.String(), "10:00")
	})

	s.Run("no slots yields empty list", func() {
		s.mockQueries.EXPECT().
			FindAlternativeSlots(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		rec := s.get(fmt.Sprintf("/rooms/%s/alternative-slots?date=2025-03-10&start=09:00&end=10:00", roomID))

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"slots": []}`, rec.Body.String())
	})
}

func (s *AvailabilityHandlerTestSuite) TestRoomAvailabilityDetails() {
	s.mockQueries.EXPECT().
		RoomAvailabilityDetails(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.RoomAvailabilityView{
			{RoomID: uuid.New(), RoomName: "Room A", Available: false, Conflicts: []queries.SlotView{{Start: "09:00", End: "10:00"}}},
			{RoomID: uuid.New(), RoomName: "Room B", Available: true},
		}, nil)

	rec := s.get("/rooms/availability?date=2025-03-10&start=09:00&end=10:00")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Room A")
	s.Contains(rec.Body.String(), "conflicts")
}

func (s *AvailabilityHandlerTestSuite) TestListRoomBookings() {
	roomID := uuid.New()

	s.mockQueries.EXPECT().
		ListRoomBookings(gomock.Any(), roomID, gomock.Any()).
		Return([]*queries.BookingView{
			{ID: uuid.New(), RoomID: roomID, Date: "2025-03-10", Start: "09:00", End: "10:00", Title: "Planning"},
		}, nil)

	rec := s.get(fmt.Sprintf("/rooms/%s/bookings?date=2025-03-10", roomID))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Planning")
}
