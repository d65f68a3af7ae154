//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/queries"
	queriesmock "meeting-scheduler/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testDate  = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	testHours = booking.WorkingHours{Start: 8 * time.Hour, End: 18 * time.Hour}
)

func newAvailabilityFixture(t *testing.T) (*queriesmock.MockBookingReadStore, queries.AvailabilityQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	return store, queries.NewAvailabilityQueries(store, testHours)
}

func window(t *testing.T, start, end time.Duration) booking.Window {
	t.Helper()
	w, err := booking.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func windowRow(t *testing.T, start, end time.Duration) queries.BookingWindowRow {
	t.Helper()
	return queries.BookingWindowRow{
		ID:     uuid.New(),
		Window: window(t, start, end),
		Title:  "Existing",
	}
}

func TestCheckRoomAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("nil room never conflicts", func(t *testing.T) {
		_, q := newAvailabilityFixture(t)

		available, err := q.CheckRoomAvailability(ctx, nil, testDate, window(t, 9*time.Hour, 10*time.Hour), nil)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("free window", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)
		roomID := uuid.New()

		store.EXPECT().ListActiveWindows(ctx, roomID, testDate).Return([]queries.BookingWindowRow{
			windowRow(t, 14*time.Hour, 15*time.Hour),
		}, nil)

		available, err := q.CheckRoomAvailability(ctx, &roomID, testDate, window(t, 9*time.Hour, 10*time.Hour), nil)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("overlapping window", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)
		roomID := uuid.New()

		store.EXPECT().ListActiveWindows(ctx, roomID, testDate).Return([]queries.BookingWindowRow{
			windowRow(t, 9*time.Hour+30*time.Minute, 10*time.Hour+30*time.Minute),
		}, nil)

		available, err := q.CheckRoomAvailability(ctx, &roomID, testDate, window(t, 9*time.Hour, 10*time.Hour), nil)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("excluded booking is ignored", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)
		roomID := uuid.New()

		row := windowRow(t, 9*time.Hour, 10*time.Hour)
		store.EXPECT().ListActiveWindows(ctx, roomID, testDate).Return([]queries.BookingWindowRow{row}, nil)

		available, err := q.CheckRoomAvailability(ctx, &roomID, testDate, window(t, 9*time.Hour, 10*time.Hour), &row.ID)
		require.NoError(t, err)
		assert.True(t, available, "a booking may be re-saved over its own slot")
	})

	t.Run("store failure is surfaced, not treated as free", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)
		roomID := uuid.New()

		store.EXPECT().ListActiveWindows(ctx, roomID, testDate).Return(nil, errors.New("connection refused"))

		_, err := q.CheckRoomAvailability(ctx, &roomID, testDate, window(t, 9*time.Hour, 10*time.Hour), nil)
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestFindAlternativeSlots_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("slots around existing bookings", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)
		roomID := uuid.New()

		store.EXPECT().ListActiveWindows(ctx, roomID, testDate).Return([]queries.BookingWindowRow{
			windowRow(t, 9*time.Hour, 10*time.Hour),
			windowRow(t, 14*time.Hour, 15*time.Hour),
		}, nil)

		slots, err := q.FindAlternativeSlots(ctx, roomID, testDate, window(t, 9*time.Hour, 10*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, []queries.SlotView{
			{Start: "08:00", End: "09:00"},
			{Start: "10:00", End: "11:00"},
			{Start: "15:00", End: "16:00"},
		}, slots)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)
		roomID := uuid.New()

		store.EXPECT().ListActiveWindows(ctx, roomID, testDate).Return(nil, errors.New("connection refused"))

		_, err := q.FindAlternativeSlots(ctx, roomID, testDate, window(t, 9*time.Hour, 10*time.Hour))
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestRoomAvailabilityDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("mixed availability across rooms", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)

		roomA := queries.RoomRow{ID: uuid.New(), Name: "Room A"}
		roomB := queries.RoomRow{ID: uuid.New(), Name: "Room B"}

		store.EXPECT().ListActiveRooms(ctx).Return([]queries.RoomRow{roomA, roomB}, nil)
		store.EXPECT().ListActiveWindows(ctx, roomA.ID, testDate).Return([]queries.BookingWindowRow{
			windowRow(t, 9*time.Hour, 10*time.Hour),
		}, nil)
		store.EXPECT().ListActiveWindows(ctx, roomB.ID, testDate).Return(nil, nil)

		views, err := q.RoomAvailabilityDetails(ctx, testDate, window(t, 9*time.Hour+30*time.Minute, 10*time.Hour+30*time.Minute))
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.False(t, views[0].Available)
		assert.Equal(t, []queries.SlotView{{Start: "09:00", End: "10:00"}}, views[0].Conflicts)
		assert.True(t, views[1].Available)
		assert.Empty(t, views[1].Conflicts)
	})

	t.Run("room listing failure is surfaced", func(t *testing.T) {
		store, q := newAvailabilityFixture(t)

		store.EXPECT().ListActiveRooms(ctx).Return(nil, errors.New("connection refused"))

		_, err := q.RoomAvailabilityDetails(ctx, testDate, window(t, 9*time.Hour, 10*time.Hour))
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestListRoomBookings(t *testing.T) {
	ctx := context.Background()
	store, q := newAvailabilityFixture(t)
	roomID := uuid.New()

	row := windowRow(t, 9*time.Hour, 10*time.Hour)
	store.EXPECT().ListActiveWindows(ctx, roomID, testDate).Return([]queries.BookingWindowRow{row}, nil)

	views, err := q.ListRoomBookings(ctx, roomID, testDate)
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, row.ID, views[0].ID)
	assert.Equal(t, roomID, views[0].RoomID)
	assert.Equal(t, "2025-03-10", views[0].Date)
	assert.Equal(t, "09:00", views[0].Start)
	assert.Equal(t, "10:00", views[0].End)
	assert.Equal(t, "Existing", views[0].Title)
}
