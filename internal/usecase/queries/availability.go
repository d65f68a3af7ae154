package queries

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// CheckRoomAvailability reports whether the room is free for the proposed
	// window. A nil roomID means no room was requested, which can never
	// conflict. excludeBookingID skips one booking, for edit-in-place saves.
	CheckRoomAvailability(ctx context.Context, roomID *uuid.UUID, date time.Time, window booking.Window, excludeBookingID *uuid.UUID) (bool, error)
	FindAlternativeSlots(ctx context.Context, roomID uuid.UUID, date time.Time, desired booking.Window) ([]SlotView, error)
	RoomAvailabilityDetails(ctx context.Context, date time.Time, window booking.Window) ([]*RoomAvailabilityView, error)
	ListRoomBookings(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*BookingView, error)
}

type availabilityQueriesImpl struct {
	bookings BookingReadStore
	hours    booking.WorkingHours
}

func NewAvailabilityQueries(bookings BookingReadStore, hours booking.WorkingHours) AvailabilityQueries {
	return &availabilityQueriesImpl{
		bookings: bookings,
		hours:    hours,
	}
}

func (q *availabilityQueriesImpl) CheckRoomAvailability(
	ctx context.Context,
	roomID *uuid.UUID,
	date time.Time,
	window booking.Window,
	excludeBookingID *uuid.UUID,
) (bool, error) {
	if roomID == nil {
		return true, nil
	}

	windows, err := q.loadWindows(ctx, *roomID, date, excludeBookingID)
	if err != nil {
		return false, err
	}

	return !booking.HasConflict(windows, window), nil
}

func (q *availabilityQueriesImpl) FindAlternativeSlots(
	ctx context.Context,
	roomID uuid.UUID,
	date time.Time,
	desired booking.Window,
) ([]SlotView, error) {
	windows, err := q.loadWindows(ctx, roomID, date, nil)
	if err != nil {
		return nil, err
	}

	slots := booking.FindAlternativeSlots(windows, desired.Duration(), q.hours)

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotViewFrom(s)
	}
	return views, nil
}

func (q *availabilityQueriesImpl) RoomAvailabilityDetails(
	ctx context.Context,
	date time.Time,
	window booking.Window,
) ([]*RoomAvailabilityView, error) {
	rooms, err := q.bookings.ListActiveRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	views := make([]*RoomAvailabilityView, 0, len(rooms))
	for _, room := range rooms {
		rows, err := q.bookings.ListActiveWindows(ctx, room.ID, date)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}

		view := &RoomAvailabilityView{
			RoomID:    room.ID,
			RoomName:  room.Name,
			Available: true,
		}
		for _, row := range rows {
			if row.Window.Overlaps(window) {
				view.Available = false
				view.Conflicts = append(view.Conflicts, SlotViewFrom(row.Window))
			}
		}
		views = append(views, view)
	}

	return views, nil
}

func (q *availabilityQueriesImpl) ListRoomBookings(
	ctx context.Context,
	roomID uuid.UUID,
	date time.Time,
) ([]*BookingView, error) {
	rows, err := q.bookings.ListActiveWindows(ctx, roomID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	views := make([]*BookingView, len(rows))
	for i, row := range rows {
		views[i] = &BookingView{
			ID:     row.ID,
			RoomID: roomID,
			Date:   booking.DateOf(date).Format(time.DateOnly),
			Start:  booking.FormatClock(row.Window.Start()),
			End:    booking.FormatClock(row.Window.End()),
			Title:  row.Title,
		}
	}
	return views, nil
}

func (q *availabilityQueriesImpl) loadWindows(
	ctx context.Context,
	roomID uuid.UUID,
	date time.Time,
	excludeBookingID *uuid.UUID,
) ([]booking.Window, error) {
	rows, err := q.bookings.ListActiveWindows(ctx, roomID, date)
	if err != nil {
		// A lookup failure is surfaced, never treated as "no conflict".
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	windows := make([]booking.Window, 0, len(rows))
	for _, row := range rows {
		if excludeBookingID != nil && row.ID == *excludeBookingID {
			continue
		}
		windows = append(windows, row.Window)
	}
	return windows, nil
}
