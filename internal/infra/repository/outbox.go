package repository

import (
	"context"
	"encoding/json"

	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/db"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

// OutboxSender is the bundled ReminderSender: it enqueues the rendered notice
// as a notification job row. An external mailer drains the table; email
// transport itself stays outside this core.
type OutboxSender struct {
	db    db.DBTX
	clock clock.Clock
}

func NewOutboxSender(pool db.DBTX, clk clock.Clock) *OutboxSender {
	return &OutboxSender{db: pool, clock: clk}
}

type outboxPayload struct {
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
}

func (s *OutboxSender) SendReminder(ctx context.Context, notice commands.Notice) error {
	payload, err := json.Marshal(outboxPayload{
		Subject:    notice.Subject,
		Body:       notice.Body,
		Recipients: notice.Recipients,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to marshal notification payload", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), "email", notice.Kind.String(), payload, s.clock.Now(), "queued")
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}

	return nil
}
