package api

import (
	"errors"
	"net/http"

	reqdto "meeting-scheduler/internal/handler/dto/request"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderHandler struct {
	reminderCommands commands.ReminderCommands
	reminderQueries  queries.ReminderQueries
	clock            clock.Clock
}

func NewReminderHandler(
	reminderCommands commands.ReminderCommands,
	reminderQueries queries.ReminderQueries,
	clk clock.Clock,
) *ReminderHandler {
	return &ReminderHandler{
		reminderCommands: reminderCommands,
		reminderQueries:  reminderQueries,
		clock:            clk,
	}
}

// @Summary Schedule meeting reminders
// @Description Schedule the 24h and 1h reminders for a meeting
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body reqdto.ScheduleMeetingRemindersRequest true "Meeting start time"
// @Success 201 {object} resdto.ScheduleRemindersResponse
// @Failure 400 {object} map[string]string
// @Router /meetings/{id}/reminders [post]
func (h *ReminderHandler) ScheduleMeetingReminders(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meeting ID format",
		})
		return
	}

	var req reqdto.ScheduleMeetingRemindersRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	scheduled, err := h.reminderCommands.ScheduleMeetingReminders(c.Request.Context(), meetingID, req.StartsAt)
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ScheduleRemindersResponse{Scheduled: scheduled})
}

// @Summary Schedule action item reminders
// @Description Schedule the 48h and 24h reminders for an action item
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Action item ID"
// @Param request body reqdto.ScheduleActionItemRemindersRequest true "Action item due time"
// @Success 201 {object} resdto.ScheduleRemindersResponse
// @Failure 400 {object} map[string]string
// @Router /action-items/{id}/reminders [post]
func (h *ReminderHandler) ScheduleActionItemReminders(c *gin.Context) {
	actionItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid action item ID format",
		})
		return
	}

	var req reqdto.ScheduleActionItemRemindersRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	scheduled, err := h.reminderCommands.ScheduleActionItemReminders(c.Request.Context(), actionItemID, req.DueAt)
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ScheduleRemindersResponse{Scheduled: scheduled})
}

// @Summary Cancel meeting reminders
// @Description Delete the unsent reminders of a meeting
// @Tags reminders
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /meetings/{id}/reminders [delete]
func (h *ReminderHandler) CancelMeetingReminders(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meeting ID format",
		})
		return
	}

	if err := h.reminderCommands.CancelMeetingReminders(c.Request.Context(), meetingID); err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Process due reminders
// @Description Run one processor pass immediately, outside the periodic schedule
// @Tags reminders
// @Produce json
// @Success 200 {object} resdto.ProcessRemindersResponse
// @Router /reminders/process [post]
func (h *ReminderHandler) ProcessDueReminders(c *gin.Context) {
	result, err := h.reminderCommands.ProcessDueReminders(c.Request.Context(), h.clock.Now())
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ProcessRemindersResponse{
		Selected: result.Selected,
		Sent:     result.Sent,
		Failed:   result.Failed,
		Orphaned: result.Orphaned,
	})
}

// @Summary List pending reminders
// @Description Unsent reminders still under the retry limit
// @Tags reminders
// @Produce json
// @Success 200 {array} resdto.ReminderResponse
// @Router /reminders/pending [get]
func (h *ReminderHandler) ListPendingReminders(c *gin.Context) {
	views, err := h.reminderQueries.ListPending(c.Request.Context())
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReminderViews(views))
}

// @Summary List dead reminders
// @Description Reminders that exhausted their retries
// @Tags reminders
// @Produce json
// @Success 200 {array} resdto.ReminderResponse
// @Router /reminders/dead [get]
func (h *ReminderHandler) ListDeadReminders(c *gin.Context) {
	views, err := h.reminderQueries.ListDead(c.Request.Context())
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReminderViews(views))
}

func (h *ReminderHandler) handleCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Storage temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
