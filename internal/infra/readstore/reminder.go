package readstore

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/reminder"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/db"
	"meeting-scheduler/internal/pkg/pgconv"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReminderReadStore struct {
	db db.DBTX
}

func NewReminderReadStore(pool db.DBTX) *ReminderReadStore {
	return &ReminderReadStore{db: pool}
}

const reminderViewColumns = `
	id, meeting_id, action_item_id, kind, scheduled_at, sent, sent_at, retry_count, last_error, created_at`

func (r *ReminderReadStore) ListPending(ctx context.Context) ([]*queries.ReminderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+reminderViewColumns+`
		FROM scheduled_reminders
		WHERE sent = false AND retry_count < $1
		ORDER BY scheduled_at`,
		reminder.MaxRetries)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reminders", err)
	}

	return collectReminderViews(rows)
}

// ListDead surfaces exhausted reminders for operator inspection; they are
// never auto-purged.
func (r *ReminderReadStore) ListDead(ctx context.Context) ([]*queries.ReminderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+reminderViewColumns+`
		FROM scheduled_reminders
		WHERE sent = false AND retry_count >= $1
		ORDER BY scheduled_at`,
		reminder.MaxRetries)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dead reminders", err)
	}

	return collectReminderViews(rows)
}

func collectReminderViews(rows pgx.Rows) ([]*queries.ReminderView, error) {
	defer rows.Close()

	var views []*queries.ReminderView
	for rows.Next() {
		var (
			id                      uuid.UUID
			meetingID, actionItemID pgtype.UUID
			kind                    string
			scheduledAt             time.Time
			sent                    bool
			sentAt                  pgtype.Timestamptz
			retryCount              int32
			lastError               pgtype.Text
			createdAt               time.Time
		)
		if err := rows.Scan(&id, &meetingID, &actionItemID, &kind, &scheduledAt, &sent, &sentAt, &retryCount, &lastError, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder view", err)
		}

		views = append(views, &queries.ReminderView{
			ID:           id,
			MeetingID:    pgconv.UUIDPtrFromPgtype(meetingID),
			ActionItemID: pgconv.UUIDPtrFromPgtype(actionItemID),
			Kind:         kind,
			ScheduledAt:  scheduledAt,
			Sent:         sent,
			SentAt:       pgconv.TimePtrFromPgtype(sentAt),
			RetryCount:   retryCount,
			LastError:    pgconv.StringPtrFromPgtype(lastError),
			CreatedAt:    createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminder views", err)
	}

	return views, nil
}
