package queries

import (
	"context"

	"meeting-scheduler/internal/pkg/errs"
)

// ReminderQueries exposes the operator views: what is waiting to fire, and
// what exhausted its retry budget.
type ReminderQueries interface {
	ListPending(ctx context.Context) ([]*ReminderView, error)
	ListDead(ctx context.Context) ([]*ReminderView, error)
}

type reminderQueriesImpl struct {
	reminders ReminderReadStore
}

func NewReminderQueries(reminders ReminderReadStore) ReminderQueries {
	return &reminderQueriesImpl{reminders: reminders}
}

func (q *reminderQueriesImpl) ListPending(ctx context.Context) ([]*ReminderView, error) {
	views, err := q.reminders.ListPending(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return views, nil
}

func (q *reminderQueriesImpl) ListDead(ctx context.Context) ([]*ReminderView, error) {
	views, err := q.reminders.ListDead(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return views, nil
}
