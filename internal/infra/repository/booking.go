package repository

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

// Windows are stored as minutes from midnight; the exclusion constraint on
// (room_id, date, int4range(start_min, end_min)) rejects overlapping rows for
// non-cancelled bookings.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

func (r *BookingRepository) ListWindows(ctx context.Context, tx db.DBTX, roomID uuid.UUID, date time.Time) ([]booking.Window, error) {
	rows, err := tx.Query(ctx, `
		SELECT start_min, end_min
		FROM bookings
		WHERE room_id = $1 AND date = $2 AND status <> 'cancelled'
		ORDER BY start_min`,
		roomID, booking.DateOf(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking windows", err)
	}
	defer rows.Close()

	var windows []booking.Window
	for rows.Next() {
		var startMin, endMin int32
		if err := rows.Scan(&startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking window", err)
		}
		w, err := windowFromMinutes(startMin, endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking window in store", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking windows", err)
	}

	return windows, nil
}

func (r *BookingRepository) Insert(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO bookings (id, room_id, date, start_min, end_min, title, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		b.ID(), b.RoomID(), b.Date(),
		minutesOf(b.Window().Start()), minutesOf(b.Window().End()),
		b.Title(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		roomID               uuid.UUID
		date                 time.Time
		startMin, endMin     int32
		title, status        string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT room_id, date, start_min, end_min, title, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(&roomID, &date, &startMin, &endMin, &title, &status, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	w, err := windowFromMinutes(startMin, endMin)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking window in store", err)
	}

	return booking.ReconstructBooking(id, roomID, date, w, title, booking.Status(status), createdAt, updatedAt), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = now()
		WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func minutesOf(d time.Duration) int32 {
	return int32(d / time.Minute)
}

func windowFromMinutes(startMin, endMin int32) (booking.Window, error) {
	return booking.NewWindow(
		time.Duration(startMin)*time.Minute,
		time.Duration(endMin)*time.Minute,
	)
}
