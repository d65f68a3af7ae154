package commands

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/domain/reminder"
	"meeting-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

type ReminderRepository interface {
	InsertBatch(ctx context.Context, reminders []*reminder.Reminder) error
	FindDue(ctx context.Context, now time.Time, limit int32) ([]*reminder.Reminder, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	RecordFailure(ctx context.Context, id uuid.UUID, reason string) error
	MarkDead(ctx context.Context, id uuid.UUID, reason string) error
	DeleteUnsentByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error)
}

type BookingRepository interface {
	ListWindows(ctx context.Context, tx db.DBTX, roomID uuid.UUID, date time.Time) ([]booking.Window, error)
	Insert(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

// Read-only directory lookups. The meeting/action-item lifecycle is owned by
// the surrounding system; this core only resolves recipients at dispatch time.
type MeetingInfo struct {
	ID                uuid.UUID
	Title             string
	StartsAt          time.Time
	RoomName          *string
	OrganizerEmail    string
	ParticipantEmails []string
}

type ActionItemInfo struct {
	ID            uuid.UUID
	Description   string
	DueAt         time.Time
	AssigneeEmail string
}

type MeetingDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MeetingInfo, error)
}

type ActionItemDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ActionItemInfo, error)
}

// Notice is the rendered message handed to the notification collaborator.
type Notice struct {
	Kind       reminder.Kind
	Subject    string
	Body       string
	Recipients []string
}

type ReminderSender interface {
	SendReminder(ctx context.Context, notice Notice) error
}
