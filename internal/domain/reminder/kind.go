package reminder

import "time"

// Kind enumerates the reminder categories and carries their fixed offset
// before the target event.
type Kind string

const (
	KindMeeting24h    Kind = "meeting-24h"
	KindMeeting1h     Kind = "meeting-1h"
	KindActionItem48h Kind = "action-item-48h"
	KindActionItem24h Kind = "action-item-24h"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMeeting24h, KindMeeting1h, KindActionItem48h, KindActionItem24h:
		return true
	default:
		return false
	}
}

// Offset is how long before the event the reminder fires.
func (k Kind) Offset() time.Duration {
	switch k {
	case KindMeeting24h, KindActionItem24h:
		return 24 * time.Hour
	case KindMeeting1h:
		return time.Hour
	case KindActionItem48h:
		return 48 * time.Hour
	default:
		return 0
	}
}

func (k Kind) IsMeeting() bool {
	return k == KindMeeting24h || k == KindMeeting1h
}
