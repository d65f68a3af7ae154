package reminder

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending     = errors.New("reminder is not pending")
	ErrFireTimeInPast = errors.New("reminder fire time is not in the future")
)

// MaxRetries is the delivery attempt cap. A reminder that fails this many
// times is Dead: never retried, never auto-purged, kept for inspection.
const MaxRetries = 3

type State string

const (
	StatePending State = "pending"
	StateSent    State = "sent"
	StateDead    State = "dead"
)

// Reminder is one scheduled notification tied to a meeting or action item.
// It is mutated only by the processor: Pending -> Sent on delivery,
// Pending -> Pending(retry+1) on failure, Pending -> Dead at the retry cap.
type Reminder struct {
	id          uuid.UUID
	target      Target
	kind        Kind
	scheduledAt time.Time
	sent        bool
	sentAt      *time.Time
	retryCount  int32
	lastError   *string
	createdAt   time.Time
}

// newReminder enforces the future-only rule: a reminder whose fire time has
// already passed at creation time is silently never scheduled, so creating a
// meeting inside the offset window does not spam participants.
func newReminder(target Target, kind Kind, scheduledAt, now time.Time) (*Reminder, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if !scheduledAt.After(now) {
		return nil, ErrFireTimeInPast
	}

	return &Reminder{
		id:          uuid.New(),
		target:      target,
		kind:        kind,
		scheduledAt: scheduledAt,
		createdAt:   now,
	}, nil
}

func ReconstructReminder(
	id uuid.UUID,
	target Target,
	kind Kind,
	scheduledAt time.Time,
	sent bool,
	sentAt *time.Time,
	retryCount int32,
	lastError *string,
	createdAt time.Time,
) *Reminder {
	return &Reminder{
		id:          id,
		target:      target,
		kind:        kind,
		scheduledAt: scheduledAt,
		sent:        sent,
		sentAt:      sentAt,
		retryCount:  retryCount,
		lastError:   lastError,
		createdAt:   createdAt,
	}
}

func (r *Reminder) State() State {
	switch {
	case r.sent:
		return StateSent
	case r.retryCount >= MaxRetries:
		return StateDead
	default:
		return StatePending
	}
}

// IsDue implements the processor selection predicate.
func (r *Reminder) IsDue(now time.Time) bool {
	return r.State() == StatePending && !r.scheduledAt.After(now)
}

// MarkSent moves the reminder to its terminal Sent state and clears any
// previous delivery error.
func (r *Reminder) MarkSent(now time.Time) error {
	if r.State() != StatePending {
		return ErrNotPending
	}
	r.sent = true
	r.sentAt = &now
	r.lastError = nil
	return nil
}

// RecordFailure increments the retry count and keeps the failure description.
// Hitting the cap leaves the reminder Dead.
func (r *Reminder) RecordFailure(reason string) error {
	if r.State() != StatePending {
		return ErrNotPending
	}
	r.retryCount++
	r.lastError = &reason
	return nil
}

// MarkDead is the orphan path: the target vanished before the reminder fired,
// so delivery is abandoned immediately without burning through retries.
func (r *Reminder) MarkDead(reason string) error {
	if r.State() != StatePending {
		return ErrNotPending
	}
	r.retryCount = MaxRetries
	r.lastError = &reason
	return nil
}

func (r *Reminder) ID() uuid.UUID          { return r.id }
func (r *Reminder) Target() Target         { return r.target }
func (r *Reminder) Kind() Kind             { return r.kind }
func (r *Reminder) ScheduledAt() time.Time { return r.scheduledAt }
func (r *Reminder) Sent() bool             { return r.sent }
func (r *Reminder) SentAt() *time.Time     { return r.sentAt }
func (r *Reminder) RetryCount() int32      { return r.retryCount }
func (r *Reminder) LastError() *string     { return r.lastError }
func (r *Reminder) CreatedAt() time.Time   { return r.createdAt }
