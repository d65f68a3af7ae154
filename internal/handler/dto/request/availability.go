package request

import (
	"time"

	"meeting-scheduler/internal/domain/booking"
)

// Availability endpoints take the date as YYYY-MM-DD and the window bounds
// as HH:MM clock values.
type AvailabilityQuery struct {
	Date    string  `form:"date" binding:"required"`
	Start   string  `form:"start" binding:"required"`
	End     string  `form:"end" binding:"required"`
	Exclude *string `form:"exclude,omitempty"`
}

type RoomBookingsQuery struct {
	Date string `form:"date" binding:"required"`
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func ParseWindow(start, end string) (booking.Window, error) {
	startOffset, err := booking.ParseClock(start)
	if err != nil {
		return booking.Window{}, err
	}
	endOffset, err := booking.ParseClock(end)
	if err != nil {
		return booking.Window{}, err
	}
	return booking.NewWindow(startOffset, endOffset)
}
