package booking

import (
	"sort"
	"time"
)

// WorkingHours is the daily window within which alternative slots are
// searched (08:00-18:00 by default, see config).
type WorkingHours struct {
	Start time.Duration
	End   time.Duration
}

// HasConflict applies the overlap rule between a proposed window and each
// existing window. Callers filter cancelled bookings (and the booking being
// edited, if any) before calling.
func HasConflict(existing []Window, proposed Window) bool {
	for _, w := range existing {
		if w.Overlaps(proposed) {
			return true
		}
	}
	return false
}

// FindAlternativeSlots walks the gaps between the given bookings and emits
// candidate windows of the desired duration, in generation order: before the
// first booking, between consecutive bookings, after the last. This is a
// first-fit listing, not a closest-to-desired match.
func FindAlternativeSlots(existing []Window, duration time.Duration, hours WorkingHours) []Window {
	if duration <= 0 || duration > hours.End-hours.Start {
		return nil
	}

	if len(existing) == 0 {
		return []Window{{start: hours.Start, end: hours.Start + duration}}
	}

	sorted := make([]Window, len(existing))
	copy(sorted, existing)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	var slots []Window

	if first := sorted[0]; first.start > hours.Start && first.start-hours.Start >= duration {
		slots = append(slots, Window{start: hours.Start, end: hours.Start + duration})
	}

	for i := 0; i < len(sorted)-1; i++ {
		gapStart := sorted[i].end
		gapEnd := sorted[i+1].start
		if gapEnd-gapStart >= duration {
			slots = append(slots, Window{start: gapStart, end: gapStart + duration})
		}
	}

	if last := sorted[len(sorted)-1]; last.end < hours.End && hours.End-last.end >= duration {
		slots = append(slots, Window{start: last.end, end: last.end + duration})
	}

	return slots
}
