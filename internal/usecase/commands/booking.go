package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/db"
	"meeting-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingTxRetries = 3

type CreateBookingParams struct {
	RoomID uuid.UUID
	Date   time.Time
	Window booking.Window
	Title  string
}

type BookingCommands interface {
	// CreateBooking checks the room for conflicts and inserts the booking in
	// one serializable transaction, so two concurrent requests for the same
	// slot cannot both commit. An exclusion constraint on the bookings table
	// backs this up at the storage level.
	CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	pool        *pgxpool.Pool
	logger      *slog.Logger
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	pool *pgxpool.Pool,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		pool:        pool,
		logger:      logger,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	entity, err := booking.NewBooking(params.RoomID, params.Date, params.Window, params.Title)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidWindow)
	}

	id, err := db.RunSerializableTx(ctx, u.pool, bookingTxRetries, func(tx db.DBTX) (uuid.UUID, error) {
		windows, err := u.bookingRepo.ListWindows(ctx, tx, entity.RoomID(), entity.Date())
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}

		if booking.HasConflict(windows, entity.Window()) {
			return uuid.Nil, conflictError(entity)
		}

		return u.bookingRepo.Insert(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, conflictError(entity)
		}
		return uuid.Nil, err
	}

	u.logger.Info("booking created",
		"booking_id", id,
		"room_id", entity.RoomID(),
		"date", entity.Date().Format(time.DateOnly),
		"window", entity.Window().String())
	return id, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	entity, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := entity.Cancel(); err != nil {
		// Already cancelled; cancelling twice is a no-op success.
		return nil
	}

	if err := u.bookingRepo.UpdateStatus(ctx, id, booking.StatusCancelled); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	u.logger.Info("booking cancelled", "booking_id", id, "room_id", entity.RoomID())
	return nil
}

// conflictError carries room, date and window so the caller can offer
// alternative slots.
func conflictError(b *booking.Booking) error {
	detail := fmt.Sprintf("room %s is booked on %s during %s",
		b.RoomID(), b.Date().Format(time.DateOnly), b.Window().String())
	return errs.Mark(errs.New(detail), errs.ErrRoomConflict)
}
