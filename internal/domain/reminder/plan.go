package reminder

import (
	"time"

	"github.com/google/uuid"
)

// PlanMeetingReminders computes the reminder drafts for a meeting start time:
// one at -24h and one at -1h. Drafts whose fire time is not strictly after
// now are dropped, so the result holds 0 to 2 reminders.
func PlanMeetingReminders(meetingID uuid.UUID, startsAt, now time.Time) []*Reminder {
	return plan(MeetingTarget(meetingID), startsAt, now, KindMeeting24h, KindMeeting1h)
}

// PlanActionItemReminders is the action-item analogue at -48h and -24h from
// the due date.
func PlanActionItemReminders(actionItemID uuid.UUID, dueAt, now time.Time) []*Reminder {
	return plan(ActionItemTarget(actionItemID), dueAt, now, KindActionItem48h, KindActionItem24h)
}

func plan(target Target, eventAt, now time.Time, kinds ...Kind) []*Reminder {
	var drafts []*Reminder
	for _, kind := range kinds {
		r, err := newReminder(target, kind, eventAt.Add(-kind.Offset()), now)
		if err != nil {
			continue
		}
		drafts = append(drafts, r)
	}
	return drafts
}
