package repository

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/reminder"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/db"
	"meeting-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReminderRepository struct {
	db db.DBTX
}

func NewReminderRepository(pool db.DBTX) *ReminderRepository {
	return &ReminderRepository{db: pool}
}

func (r *ReminderRepository) InsertBatch(ctx context.Context, reminders []*reminder.Reminder) error {
	// Drafts are independent rows; a partial write only loses later drafts.
	for _, rem := range reminders {
		_, err := r.db.Exec(ctx, `
			INSERT INTO scheduled_reminders
				(id, meeting_id, action_item_id, kind, scheduled_at, sent, retry_count, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rem.ID(),
			pgconv.UUIDPtrToPgtype(rem.Target().MeetingID()),
			pgconv.UUIDPtrToPgtype(rem.Target().ActionItemID()),
			rem.Kind().String(),
			rem.ScheduledAt(),
			rem.Sent(),
			rem.RetryCount(),
			rem.CreatedAt(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert reminder", err)
		}
	}
	return nil
}

// FindDue applies the selection predicate:
// sent = false AND scheduled_at <= now AND retry_count < cap.
func (r *ReminderRepository) FindDue(ctx context.Context, now time.Time, limit int32) ([]*reminder.Reminder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, meeting_id, action_item_id, kind, scheduled_at, sent, sent_at, retry_count, last_error, created_at
		FROM scheduled_reminders
		WHERE sent = false AND scheduled_at <= $1 AND retry_count < $2
		ORDER BY scheduled_at
		LIMIT $3`,
		now, reminder.MaxRetries, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query due reminders", err)
	}
	defer rows.Close()

	var due []*reminder.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		due = append(due, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate due reminders", err)
	}

	return due, nil
}

// MarkSent guards on sent = false so a concurrent pass cannot flip the same
// row twice.
func (r *ReminderRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE scheduled_reminders
		SET sent = true, sent_at = $2, last_error = NULL
		WHERE id = $1 AND sent = false`,
		id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder not pending", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReminderRepository) RecordFailure(ctx context.Context, id uuid.UUID, reason string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE scheduled_reminders
		SET retry_count = retry_count + 1, last_error = $2
		WHERE id = $1 AND sent = false`,
		id, reason)
	if err != nil {
		return infra.WrapRepoErr("failed to record reminder failure", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder not pending", nil, infra.KindNotFound)
	}

	return nil
}

// MarkDead forces the retry count to the cap so the due predicate never
// selects the row again.
func (r *ReminderRepository) MarkDead(ctx context.Context, id uuid.UUID, reason string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE scheduled_reminders
		SET retry_count = $2, last_error = $3
		WHERE id = $1 AND sent = false`,
		id, reminder.MaxRetries, reason)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder dead", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder not pending", nil, infra.KindNotFound)
	}

	return nil
}

// DeleteUnsentByMeeting removes pending and dead rows for the meeting; sent
// rows stay as history. Zero deletions is a success.
func (r *ReminderRepository) DeleteUnsentByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM scheduled_reminders
		WHERE meeting_id = $1 AND sent = false`,
		meetingID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reminders for meeting", err)
	}

	return tag.RowsAffected(), nil
}

type reminderRow interface {
	Scan(dest ...any) error
}

func scanReminder(row reminderRow) (*reminder.Reminder, error) {
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
	if err := row.Scan(&id, &meetingID, &actionItemID, &kind, &scheduledAt, &sent, &sentAt, &retryCount, &lastError, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan reminder", err)
	}

	target, err := reminder.ReconstructTarget(
		pgconv.UUIDPtrFromPgtype(meetingID),
		pgconv.UUIDPtrFromPgtype(actionItemID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reminder target in store", err)
	}

	return reminder.ReconstructReminder(
		id,
		target,
		reminder.Kind(kind),
		scheduledAt,
		sent,
		pgconv.TimePtrFromPgtype(sentAt),
		retryCount,
		pgconv.StringPtrFromPgtype(lastError),
		createdAt,
	), nil
}
