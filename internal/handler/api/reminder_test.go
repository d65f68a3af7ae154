//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meeting-scheduler/internal/handler/api"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"
	commandsmock "meeting-scheduler/tests/mock/commands"
	queriesmock "meeting-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

type ReminderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReminderCommands
	mockQueries  *queriesmock.MockReminderQueries
}

func (s *ReminderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReminderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReminderQueries(s.mockCtrl)
	handler := api.NewReminderHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(handlerNow))

	s.router.POST("/meetings/:id/reminders", handler.ScheduleMeetingReminders)
	s.router.DELETE("/meetings/:id/reminders", handler.CancelMeetingReminders)
	s.router.POST("/action-items/:id/reminders", handler.ScheduleActionItemReminders)
	s.router.POST("/reminders/process", handler.ProcessDueReminders)
	s.router.GET("/reminders/pending", handler.ListPendingReminders)
	s.router.GET("/reminders/dead", handler.ListDeadReminders)
}

func (s *ReminderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReminderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReminderHandlerTestSuite))
}

func (s *ReminderHandlerTestSuite) request(method, url string, body any) *httptest.ResponseRecorder {
	s.T().Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ReminderHandlerTestSuite) TestScheduleMeetingReminders() {
	meetingID := uuid.New()
	startsAt := handlerNow.Add(72 * time.Hour)

	s.Run("scheduled", func() {
		s.mockCommands.EXPECT().
			ScheduleMeetingReminders(gomock.Any(), meetingID, startsAt).
			Return(2, nil)

		rec := s.request(http.MethodPost, fmt.Sprintf("/meetings/%s/reminders", meetingID),
			map[string]any{"starts_at": startsAt.Format(time.RFC3339)})

		s.Equal(http.StatusCreated, rec.Code)
		s.JSONEq(`{"scheduled": 2}`, rec.Body.String())
	})

	s.Run("malformed meeting id", func() {
		rec := s.request(http.MethodPost, "/meetings/not-a-uuid/reminders",
			map[string]any{"starts_at": startsAt.Format(time.RFC3339)})

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing starts_at", func() {
		rec := s.request(http.MethodPost, fmt.Sprintf("/meetings/%s/reminders", meetingID), map[string]any{})

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("store unavailable", func() {
		s.mockCommands.EXPECT().
			ScheduleMeetingReminders(gomock.Any(), meetingID, startsAt).
			Return(0, errs.Mark(errs.New("store down"), errs.ErrStoreUnavailable))

		rec := s.request(http.MethodPost, fmt.Sprintf("/meetings/%s/reminders", meetingID),
			map[string]any{"starts_at": startsAt.Format(time.RFC3339)})

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}

func (s *ReminderHandlerTestSuite) TestScheduleActionItemReminders() {
	actionItemID := uuid.New()
	dueAt := handlerNow.Add(96 * time.Hour)

	s.mockCommands.EXPECT().
		ScheduleActionItemReminders(gomock.Any(), actionItemID, dueAt).
		Return(2, nil)

	rec := s.request(http.MethodPost, fmt.Sprintf("/action-items/%s/reminders", actionItemID),
		map[string]any{"due_at": dueAt.Format(time.RFC3339)})

	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"scheduled": 2}`, rec.Body.String())
}

func (s *ReminderHandlerTestSuite) TestCancelMeetingReminders() {
	meetingID := uuid.New()

	s.mockCommands.EXPECT().
		CancelMeetingReminders(gomock.Any(), meetingID).
		Return(nil)

	rec := s.request(http.MethodDelete, fmt.Sprintf("/meetings/%s/reminders", meetingID), nil)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ReminderHandlerTestSuite) TestProcessDueReminders() {
	s.mockCommands.EXPECT().
		ProcessDueReminders(gomock.Any(), handlerNow).
		Return(commands.ProcessResult{Selected: 3, Sent: 2, Failed: 1}, nil)

	rec := s.request(http.MethodPost, "/reminders/process", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"selected": 3, "sent": 2, "failed": 1, "orphaned": 0}`, rec.Body.String())
}

func (s *ReminderHandlerTestSuite) TestListReminders() {
	s.Run("pending", func() {
		s.mockQueries.EXPECT().ListPending(gomock.Any()).Return([]*queries.ReminderView{
			{ID: uuid.New(), Kind: "meeting-24h", ScheduledAt: handlerNow.Add(time.Hour)},
		}, nil)

		rec := s.request(http.MethodGet, "/reminders/pending", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "meeting-24h")
	})

	s.Run("dead", func() {
		reason := "target missing"
		s.mockQueries.EXPECT().ListDead(gomock.Any()).Return([]*queries.ReminderView{
			{ID: uuid.New(), Kind: "action-item-24h", RetryCount: 3, LastError: &reason},
		}, nil)

		rec := s.request(http.MethodGet, "/reminders/dead", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "target missing")
	})
}
