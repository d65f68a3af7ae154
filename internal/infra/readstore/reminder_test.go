//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/reminder"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/readstore"
	"meeting-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewColumns = []string{
	"id", "meeting_id", "action_item_id", "kind", "scheduled_at",
	"sent", "sent_at", "retry_count", "last_error", "created_at",
}

func newReminderReadStore(t *testing.T) (pgxmock.PgxPoolIface, *readstore.ReminderReadStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, readstore.NewReminderReadStore(mock)
}

func TestReminderReadStore_ListPending(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("views materialized", func(t *testing.T) {
		mock, store := newReminderReadStore(t)

		id := uuid.New()
		meetingID := uuid.New()
		mock.ExpectQuery("FROM scheduled_reminders").
			WithArgs(reminder.MaxRetries).
			WillReturnRows(pgxmock.NewRows(viewColumns).AddRow(
				id,
				pgconv.UUIDToPgtype(meetingID),
				pgtype.UUID{},
				"meeting-1h",
				now.Add(time.Hour),
				false,
				pgtype.Timestamptz{},
				int32(0),
				pgtype.Text{},
				now,
			))

		views, err := store.ListPending(ctx)
		require.NoError(t, err)

		require.Len(t, views, 1)
		v := views[0]
		assert.Equal(t, id, v.ID)
		require.NotNil(t, v.MeetingID)
		assert.Equal(t, meetingID, *v.MeetingID)
		assert.Nil(t, v.ActionItemID)
		assert.Equal(t, "meeting-1h", v.Kind)
		assert.False(t, v.Sent)
		assert.Nil(t, v.SentAt)
		assert.Nil(t, v.LastError)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		mock, store := newReminderReadStore(t)

		mock.ExpectQuery("FROM scheduled_reminders").
			WithArgs(reminder.MaxRetries).
			WillReturnError(errors.New("connection refused"))

		_, err := store.ListPending(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReminderReadStore_ListDead(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	mock, store := newReminderReadStore(t)

	id := uuid.New()
	actionItemID := uuid.New()
	mock.ExpectQuery("FROM scheduled_reminders").
		WithArgs(reminder.MaxRetries).
		WillReturnRows(pgxmock.NewRows(viewColumns).AddRow(
			id,
			pgtype.UUID{},
			pgconv.UUIDToPgtype(actionItemID),
			"action-item-24h",
			now.Add(-2*time.Hour),
			false,
			pgtype.Timestamptz{},
			int32(reminder.MaxRetries),
			pgtype.Text{String: "target missing", Valid: true},
			now.Add(-26*time.Hour),
		))

	views, err := store.ListDead(ctx)
	require.NoError(t, err)

	require.Len(t, views, 1)
	v := views[0]
	assert.Equal(t, id, v.ID)
	require.NotNil(t, v.ActionItemID)
	assert.Equal(t, actionItemID, *v.ActionItemID)
	assert.Equal(t, int32(reminder.MaxRetries), v.RetryCount)
	require.NotNil(t, v.LastError)
	assert.Equal(t, "target missing", *v.LastError)
}
