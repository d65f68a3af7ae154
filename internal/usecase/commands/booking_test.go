//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/commands"
	commandsmock "meeting-scheduler/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingFixture(t *testing.T) (*commandsmock.MockBookingRepository, commands.BookingCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockBookingRepository(ctrl)
	uc := commands.NewBookingUseCase(repo, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return repo, uc
}

func confirmedBooking(t *testing.T, id uuid.UUID) *booking.Booking {
	t.Helper()
	w, err := booking.NewWindow(9*time.Hour, 10*time.Hour)
	require.NoError(t, err)
	return booking.ReconstructBooking(
		id, uuid.New(),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		w, "Planning", booking.StatusConfirmed,
		time.Now(), time.Now(),
	)
}

func TestCreateBooking_Validation(t *testing.T) {
	_, uc := newBookingFixture(t)

	w, err := booking.NewWindow(9*time.Hour, 10*time.Hour)
	require.NoError(t, err)

	// Rejected before any storage work, so the nil pool is never touched.
	_, err = uc.CreateBooking(context.Background(), commands.CreateBookingParams{
		RoomID: uuid.New(),
		Date:   time.Now(),
		Window: w,
		Title:  "   ",
	})
	require.ErrorIs(t, err, errs.ErrInvalidWindow)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed booking is cancelled", func(t *testing.T) {
		repo, uc := newBookingFixture(t)
		id := uuid.New()

		repo.EXPECT().FindByID(ctx, id).Return(confirmedBooking(t, id), nil)
		repo.EXPECT().UpdateStatus(ctx, id, booking.StatusCancelled).Return(nil)

		require.NoError(t, uc.CancelBooking(ctx, id))
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		repo, uc := newBookingFixture(t)
		id := uuid.New()

		cancelled := confirmedBooking(t, id)
		require.NoError(t, cancelled.Cancel())
		repo.EXPECT().FindByID(ctx, id).Return(cancelled, nil)

		require.NoError(t, uc.CancelBooking(ctx, id))
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo, uc := newBookingFixture(t)
		id := uuid.New()

		notFound := infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound)
		repo.EXPECT().FindByID(ctx, id).Return(nil, notFound)

		require.ErrorIs(t, uc.CancelBooking(ctx, id), errs.ErrBookingNotFound)
	})

	t.Run("update failure is surfaced", func(t *testing.T) {
		repo, uc := newBookingFixture(t)
		id := uuid.New()

		repo.EXPECT().FindByID(ctx, id).Return(confirmedBooking(t, id), nil)
		repo.EXPECT().UpdateStatus(ctx, id, booking.StatusCancelled).Return(errors.New("connection refused"))

		require.ErrorIs(t, uc.CancelBooking(ctx, id), errs.ErrStoreUnavailable)
	})
}
