package response

import (
	"time"

	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReminderResponse struct {
	ID           uuid.UUID  `json:"id"`
	MeetingID    *uuid.UUID `json:"meeting_id,omitempty"`
	ActionItemID *uuid.UUID `json:"action_item_id,omitempty"`
	Kind         string     `json:"kind"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Sent         bool       `json:"sent"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	RetryCount   int32      `json:"retry_count"`
	LastError    *string    `json:"last_error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ScheduleRemindersResponse struct {
	Scheduled int `json:"scheduled"`
}

type CancelRemindersResponse struct {
	Cancelled int64 `json:"cancelled"`
}

type ProcessRemindersResponse struct {
	Selected int `json:"selected"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
	Orphaned int `json:"orphaned"`
}

func FromReminderViews(views []*queries.ReminderView) []*ReminderResponse {
	result := make([]*ReminderResponse, len(views))
	for i, v := range views {
		result[i] = &ReminderResponse{
			ID:           v.ID,
			MeetingID:    v.MeetingID,
			ActionItemID: v.ActionItemID,
			Kind:         v.Kind,
			ScheduledAt:  v.ScheduledAt,
			Sent:         v.Sent,
			SentAt:       v.SentAt,
			RetryCount:   v.RetryCount,
			LastError:    v.LastError,
			CreatedAt:    v.CreatedAt,
		}
	}
	return result
}
