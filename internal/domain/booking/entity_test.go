//go:build unit

package booking_test

import (
	"testing"
	"time"

	"meeting-scheduler/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	roomID := uuid.New()
	window := mustWindow(t, "09:00", "10:00")

	t.Run("basic success case", func(t *testing.T) {
		b, err := booking.NewBooking(roomID, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), window, "Sprint planning")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, roomID, b.RoomID())
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), b.Date(), "date is truncated to midnight")
		assert.Equal(t, "Sprint planning", b.Title())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsActive())
	})

	t.Run("title is trimmed", func(t *testing.T) {
		b, err := booking.NewBooking(roomID, time.Now(), window, "  Standup  ")
		require.NoError(t, err)
		assert.Equal(t, "Standup", b.Title())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := booking.NewBooking(roomID, time.Now(), window, "   ")
		require.ErrorIs(t, err, booking.ErrEmptyTitle)
	})

	t.Run("distinct IDs", func(t *testing.T) {
		b1, err := booking.NewBooking(roomID, time.Now(), window, "A")
		require.NoError(t, err)
		b2, err := booking.NewBooking(roomID, time.Now(), window, "A")
		require.NoError(t, err)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestBooking_Cancel(t *testing.T) {
	roomID := uuid.New()
	window := mustWindow(t, "09:00", "10:00")

	b, err := booking.NewBooking(roomID, time.Now(), window, "Review")
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.False(t, b.IsActive())

	// Second cancel reports the state, callers treat it as a no-op.
	assert.ErrorIs(t, b.Cancel(), booking.ErrBookingCancelled)
}
