package queries

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID     uuid.UUID `json:"id"`
	RoomID uuid.UUID `json:"room_id"`
	Date   string    `json:"date"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Title  string    `json:"title"`
}

type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RoomAvailabilityView struct {
	RoomID    uuid.UUID  `json:"room_id"`
	RoomName  string     `json:"room_name"`
	Available bool       `json:"available"`
	Conflicts []SlotView `json:"conflicts,omitempty"`
}

type ReminderView struct {
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

// Rows handed up by the booking read store; windows stay in domain form so
// the overlap and gap logic runs on value objects, not strings.
type BookingWindowRow struct {
	ID     uuid.UUID
	Window booking.Window
	Title  string
}

type RoomRow struct {
	ID   uuid.UUID
	Name string
}

type BookingReadStore interface {
	ListActiveWindows(ctx context.Context, roomID uuid.UUID, date time.Time) ([]BookingWindowRow, error)
	ListActiveRooms(ctx context.Context) ([]RoomRow, error)
}

type ReminderReadStore interface {
	ListPending(ctx context.Context) ([]*ReminderView, error)
	ListDead(ctx context.Context) ([]*ReminderView, error)
}

func SlotViewFrom(w booking.Window) SlotView {
	return SlotView{
		Start: booking.FormatClock(w.Start()),
		End:   booking.FormatClock(w.End()),
	}
}
