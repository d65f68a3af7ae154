package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("booking title must not be empty")
	ErrBookingCancelled = errors.New("booking is already cancelled")
)

// Booking is one occupancy of a room: a window on a single calendar date.
type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	date      time.Time
	window    Window
	title     string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(roomID uuid.UUID, date time.Time, window Window, title string) (*Booking, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Booking{
		id:     uuid.New(),
		roomID: roomID,
		date:   DateOf(date),
		window: window,
		title:  title,
		status: StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	date time.Time,
	window Window,
	title string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		date:      date,
		window:    window,
		title:     title,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel frees the room/time immediately; cancelled bookings never count
// toward conflicts.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) Window() Window       { return b.window }
func (b *Booking) Title() string        { return b.title }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
