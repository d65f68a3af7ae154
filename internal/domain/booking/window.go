package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow = errors.New("window start must be before end")
	ErrOutsideDay    = errors.New("window must fit within a single day")
)

const dayLength = 24 * time.Hour

// Window is a half-open [Start, End) interval on a single calendar day,
// expressed as offsets from midnight. Windows never span midnight.
type Window struct {
	start time.Duration
	end   time.Duration
}

func NewWindow(start, end time.Duration) (Window, error) {
	if start >= end {
		return Window{}, ErrInvalidWindow
	}
	if start < 0 || end > dayLength {
		return Window{}, ErrOutsideDay
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Duration {
	return w.start
}

func (w Window) End() time.Duration {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end - w.start
}

// Overlaps reports whether two half-open windows share any instant.
// Touching windows (a.end == b.start) do not overlap, so back-to-back
// bookings are legal.
func (w Window) Overlaps(other Window) bool {
	return w.start < other.end && other.start < w.end
}

func (w Window) String() string {
	return fmt.Sprintf("%s-%s", FormatClock(w.start), FormatClock(w.end))
}

// ParseClock converts an HH:MM string into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func FormatClock(d time.Duration) string {
	mins := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
