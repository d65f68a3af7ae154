package request

import "time"

type ScheduleMeetingRemindersRequest struct {
	StartsAt time.Time `json:"starts_at" binding:"required"`
}

type ScheduleActionItemRemindersRequest struct {
	DueAt time.Time `json:"due_at" binding:"required"`
}
