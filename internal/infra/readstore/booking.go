package readstore

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/db"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

// ListActiveWindows returns the non-cancelled bookings for a room/date,
// sorted by start time. Cancelled bookings free their slot immediately and
// never appear here.
func (r *BookingReadStore) ListActiveWindows(ctx context.Context, roomID uuid.UUID, date time.Time) ([]queries.BookingWindowRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, start_min, end_min, title
		FROM bookings
		WHERE room_id = $1 AND date = $2 AND status <> 'cancelled'
		ORDER BY start_min`,
		roomID, booking.DateOf(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}
	defer rows.Close()

	var result []queries.BookingWindowRow
	for rows.Next() {
		var (
			id               uuid.UUID
			startMin, endMin int32
			title            string
		)
		if err := rows.Scan(&id, &startMin, &endMin, &title); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}

		w, err := booking.NewWindow(
			time.Duration(startMin)*time.Minute,
			time.Duration(endMin)*time.Minute,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking window in store", err)
		}

		result = append(result, queries.BookingWindowRow{ID: id, Window: w, Title: title})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

func (r *BookingReadStore) ListActiveRooms(ctx context.Context) ([]queries.RoomRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM rooms
		WHERE is_active = true
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active rooms", err)
	}
	defer rows.Close()

	var result []queries.RoomRow
	for rows.Next() {
		var row queries.RoomRow
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}
