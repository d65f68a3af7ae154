package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"meeting-scheduler/internal/domain/reminder"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// ProcessResult summarizes one processor pass.
type ProcessResult struct {
	Selected int `json:"selected"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
	Orphaned int `json:"orphaned"`
}

type ReminderCommands interface {
	// ScheduleMeetingReminders persists the -24h/-1h drafts whose fire time
	// is still in the future and returns how many were accepted.
	ScheduleMeetingReminders(ctx context.Context, meetingID uuid.UUID, startsAt time.Time) (int, error)
	// ScheduleActionItemReminders is the -48h/-24h analogue for action items.
	ScheduleActionItemReminders(ctx context.Context, actionItemID uuid.UUID, dueAt time.Time) (int, error)
	// ProcessDueReminders selects unsent, due, under-retry-limit reminders and
	// dispatches each independently; one failure never aborts the batch.
	ProcessDueReminders(ctx context.Context, now time.Time) (ProcessResult, error)
	// CancelMeetingReminders deletes the unsent reminders of a meeting.
	// Sent reminders are historical records and stay. Idempotent.
	CancelMeetingReminders(ctx context.Context, meetingID uuid.UUID) error
}

type reminderUseCaseImpl struct {
	reminderRepo ReminderRepository
	meetings     MeetingDirectory
	actionItems  ActionItemDirectory
	sender       ReminderSender
	cfg          config.ReminderConfig
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReminderUseCase(
	reminderRepo ReminderRepository,
	meetings MeetingDirectory,
	actionItems ActionItemDirectory,
	sender ReminderSender,
	cfg config.ReminderConfig,
	clk clock.Clock,
	logger *slog.Logger,
) ReminderCommands {
	return &reminderUseCaseImpl{
		reminderRepo: reminderRepo,
		meetings:     meetings,
		actionItems:  actionItems,
		sender:       sender,
		cfg:          cfg,
		clock:        clk,
		logger:       logger,
	}
}

func (u *reminderUseCaseImpl) ScheduleMeetingReminders(
	ctx context.Context,
	meetingID uuid.UUID,
	startsAt time.Time,
) (int, error) {
	drafts := reminder.PlanMeetingReminders(meetingID, startsAt, u.clock.Now())
	return u.persistDrafts(ctx, drafts, "meeting", meetingID)
}

func (u *reminderUseCaseImpl) ScheduleActionItemReminders(
	ctx context.Context,
	actionItemID uuid.UUID,
	dueAt time.Time,
) (int, error) {
	drafts := reminder.PlanActionItemReminders(actionItemID, dueAt, u.clock.Now())
	return u.persistDrafts(ctx, drafts, "action_item", actionItemID)
}

func (u *reminderUseCaseImpl) persistDrafts(
	ctx context.Context,
	drafts []*reminder.Reminder,
	targetKind string,
	targetID uuid.UUID,
) (int, error) {
	if len(drafts) == 0 {
		u.logger.Info("no reminders scheduled, all fire times already passed",
			"target_kind", targetKind, "target_id", targetID)
		return 0, nil
	}

	if err := u.reminderRepo.InsertBatch(ctx, drafts); err != nil {
		return 0, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	for _, d := range drafts {
		u.logger.Info("scheduled reminder",
			"reminder_id", d.ID(),
			"kind", d.Kind().String(),
			"scheduled_at", d.ScheduledAt(),
			"target_kind", targetKind,
			"target_id", targetID)
	}
	return len(drafts), nil
}

func (u *reminderUseCaseImpl) ProcessDueReminders(ctx context.Context, now time.Time) (ProcessResult, error) {
	due, err := u.reminderRepo.FindDue(ctx, now, u.cfg.BatchLimit)
	if err != nil {
		return ProcessResult{}, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	result := ProcessResult{Selected: len(due)}
	u.logger.Info("processing pending reminders", "count", len(due))

	for _, r := range due {
		u.processOne(ctx, r, now, &result)
	}

	return result, nil
}

func (u *reminderUseCaseImpl) processOne(
	ctx context.Context,
	r *reminder.Reminder,
	now time.Time,
	result *ProcessResult,
) {
	notice, err := u.buildNotice(ctx, r)
	if err != nil {
		if isTargetMissing(err) {
			// Target deleted before the reminder fired: dead immediately,
			// without burning retries.
			if deadErr := u.reminderRepo.MarkDead(ctx, r.ID(), "target missing"); deadErr != nil {
				u.logger.Error("failed to mark orphaned reminder dead",
					"reminder_id", r.ID(), "error", deadErr)
			}
			result.Orphaned++
			u.logger.Warn("reminder target missing, marked dead", "reminder_id", r.ID(), "kind", r.Kind().String())
			return
		}
		u.recordFailure(ctx, r, err, result)
		return
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, u.cfg.DispatchTimeout)
	err = u.sender.SendReminder(dispatchCtx, *notice)
	cancel()
	if err != nil {
		// A timeout counts as any other delivery failure.
		u.recordFailure(ctx, r, err, result)
		return
	}

	if err := u.reminderRepo.MarkSent(ctx, r.ID(), now); err != nil {
		u.logger.Error("failed to mark reminder sent", "reminder_id", r.ID(), "error", err)
		result.Failed++
		return
	}

	result.Sent++
	u.logger.Info("reminder sent", "reminder_id", r.ID(), "kind", r.Kind().String())
}

func (u *reminderUseCaseImpl) recordFailure(
	ctx context.Context,
	r *reminder.Reminder,
	cause error,
	result *ProcessResult,
) {
	if err := u.reminderRepo.RecordFailure(ctx, r.ID(), cause.Error()); err != nil {
		u.logger.Error("failed to record reminder failure", "reminder_id", r.ID(), "error", err)
	}
	result.Failed++
	u.logger.Error("failed to process reminder",
		"reminder_id", r.ID(),
		"kind", r.Kind().String(),
		"attempt", r.RetryCount()+1,
		"max_retries", reminder.MaxRetries,
		"error", cause)
}

func (u *reminderUseCaseImpl) buildNotice(ctx context.Context, r *reminder.Reminder) (*Notice, error) {
	if r.Target().IsMeeting() {
		meeting, err := u.meetings.FindByID(ctx, *r.Target().MeetingID())
		if err != nil {
			return nil, err
		}
		return meetingNotice(r.Kind(), meeting), nil
	}

	item, err := u.actionItems.FindByID(ctx, *r.Target().ActionItemID())
	if err != nil {
		return nil, err
	}
	return actionItemNotice(r.Kind(), item), nil
}

func (u *reminderUseCaseImpl) CancelMeetingReminders(ctx context.Context, meetingID uuid.UUID) error {
	deleted, err := u.reminderRepo.DeleteUnsentByMeeting(ctx, meetingID)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	u.logger.Info("cancelled reminders for meeting", "meeting_id", meetingID, "count", deleted)
	return nil
}

// The -24h and -1h notices differ only in offset wording; recipient
// resolution is identical.
func meetingNotice(kind reminder.Kind, m *MeetingInfo) *Notice {
	offsetText := "in 24 hours"
	if kind == reminder.KindMeeting1h {
		offsetText = "in 1 hour"
	}

	room := "no room assigned"
	if m.RoomName != nil {
		room = *m.RoomName
	}

	recipients := make([]string, 0, len(m.ParticipantEmails)+1)
	recipients = append(recipients, m.OrganizerEmail)
	recipients = append(recipients, m.ParticipantEmails...)

	return &Notice{
		Kind:    kind,
		Subject: fmt.Sprintf("Meeting Reminder: %s", m.Title),
		Body: fmt.Sprintf("Your meeting %q starts %s (%s, room: %s).",
			m.Title, offsetText, m.StartsAt.Format(time.RFC3339), room),
		Recipients: recipients,
	}
}

func actionItemNotice(kind reminder.Kind, item *ActionItemInfo) *Notice {
	offsetText := "in 48 hours"
	if kind == reminder.KindActionItem24h {
		offsetText = "in 24 hours"
	}

	return &Notice{
		Kind:    kind,
		Subject: fmt.Sprintf("Action Item Reminder: Due %s", item.DueAt.Format(time.DateOnly)),
		Body: fmt.Sprintf("Your action item %q is due %s.",
			item.Description, offsetText),
		Recipients: []string{item.AssigneeEmail},
	}
}

func isTargetMissing(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
