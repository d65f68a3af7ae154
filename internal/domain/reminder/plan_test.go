//go:build unit

package reminder_test

import (
	"testing"
	"time"

	"meeting-scheduler/internal/domain/reminder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanMeetingReminders(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	meetingID := uuid.New()

	t.Run("meeting far in the future yields both drafts", func(t *testing.T) {
		startsAt := now.Add(72 * time.Hour)

		drafts := reminder.PlanMeetingReminders(meetingID, startsAt, now)

		require.Len(t, drafts, 2)
		assert.Equal(t, reminder.KindMeeting24h, drafts[0].Kind())
		assert.Equal(t, startsAt.Add(-24*time.Hour), drafts[0].ScheduledAt())
		assert.Equal(t, reminder.KindMeeting1h, drafts[1].Kind())
		assert.Equal(t, startsAt.Add(-time.Hour), drafts[1].ScheduledAt())

		for _, d := range drafts {
			assert.Equal(t, reminder.StatePending, d.State())
			require.NotNil(t, d.Target().MeetingID())
			assert.Equal(t, meetingID, *d.Target().MeetingID())
		}
	})

	t.Run("meeting within 24h drops the 24h draft", func(t *testing.T) {
		startsAt := now.Add(10 * time.Hour)

		drafts := reminder.PlanMeetingReminders(meetingID, startsAt, now)

		require.Len(t, drafts, 1)
		assert.Equal(t, reminder.KindMeeting1h, drafts[0].Kind())
		assert.Equal(t, startsAt.Add(-time.Hour), drafts[0].ScheduledAt())
	})

	t.Run("meeting within the hour yields nothing", func(t *testing.T) {
		drafts := reminder.PlanMeetingReminders(meetingID, now.Add(30*time.Minute), now)
		assert.Empty(t, drafts)
	})

	t.Run("fire time exactly now is not future", func(t *testing.T) {
		drafts := reminder.PlanMeetingReminders(meetingID, now.Add(time.Hour), now)
		assert.Empty(t, drafts)
	})

	t.Run("meeting in the past yields nothing", func(t *testing.T) {
		drafts := reminder.PlanMeetingReminders(meetingID, now.Add(-time.Hour), now)
		assert.Empty(t, drafts)
	})
}

func TestPlanActionItemReminders(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	actionItemID := uuid.New()

	t.Run("due far in the future yields both drafts", func(t *testing.T) {
		dueAt := now.Add(96 * time.Hour)

		drafts := reminder.PlanActionItemReminders(actionItemID, dueAt, now)

		require.Len(t, drafts, 2)
		assert.Equal(t, reminder.KindActionItem48h, drafts[0].Kind())
		assert.Equal(t, dueAt.Add(-48*time.Hour), drafts[0].ScheduledAt())
		assert.Equal(t, reminder.KindActionItem24h, drafts[1].Kind())
		assert.Equal(t, dueAt.Add(-24*time.Hour), drafts[1].ScheduledAt())

		for _, d := range drafts {
			assert.False(t, d.Target().IsMeeting())
			require.NotNil(t, d.Target().ActionItemID())
			assert.Equal(t, actionItemID, *d.Target().ActionItemID())
		}
	})

	t.Run("due within 48h drops the 48h draft", func(t *testing.T) {
		dueAt := now.Add(36 * time.Hour)

		drafts := reminder.PlanActionItemReminders(actionItemID, dueAt, now)

		require.Len(t, drafts, 1)
		assert.Equal(t, reminder.KindActionItem24h, drafts[0].Kind())
	})

	t.Run("due within 24h yields nothing", func(t *testing.T) {
		drafts := reminder.PlanActionItemReminders(actionItemID, now.Add(12*time.Hour), now)
		assert.Empty(t, drafts)
	})
}
