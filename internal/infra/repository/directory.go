package repository

import (
	"context"
	"time"

	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/db"
	"meeting-scheduler/internal/pkg/pgconv"
	"meeting-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// MeetingDirectory and ActionItemDirectory are the read-only lookups the
// processor uses to resolve recipients. The owning tables belong to the
// surrounding system; this core never writes them.
type MeetingDirectory struct {
	db db.DBTX
}

func NewMeetingDirectory(pool db.DBTX) *MeetingDirectory {
	return &MeetingDirectory{db: pool}
}

func (d *MeetingDirectory) FindByID(ctx context.Context, id uuid.UUID) (*commands.MeetingInfo, error) {
	var (
		title          string
		startsAt       time.Time
		roomName       pgtype.Text
		organizerEmail string
	)
	err := d.db.QueryRow(ctx, `
		SELECT title, starts_at, room_name, organizer_email
		FROM meetings
		WHERE id = $1`,
		id,
	).Scan(&title, &startsAt, &roomName, &organizerEmail)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("meeting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meeting", err)
	}

	participants, err := d.listParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &commands.MeetingInfo{
		ID:                id,
		Title:             title,
		StartsAt:          startsAt,
		RoomName:          pgconv.StringPtrFromPgtype(roomName),
		OrganizerEmail:    organizerEmail,
		ParticipantEmails: participants,
	}, nil
}

func (d *MeetingDirectory) listParticipants(ctx context.Context, meetingID uuid.UUID) ([]string, error) {
	rows, err := d.db.Query(ctx, `
		SELECT email
		FROM meeting_participants
		WHERE meeting_id = $1
		ORDER BY email`,
		meetingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meeting participants", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan participant", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate participants", err)
	}

	return emails, nil
}

type ActionItemDirectory struct {
	db db.DBTX
}

func NewActionItemDirectory(pool db.DBTX) *ActionItemDirectory {
	return &ActionItemDirectory{db: pool}
}

func (d *ActionItemDirectory) FindByID(ctx context.Context, id uuid.UUID) (*commands.ActionItemInfo, error) {
	var (
		description   string
		dueAt         time.Time
		assigneeEmail string
	)
	err := d.db.QueryRow(ctx, `
		SELECT description, due_at, assignee_email
		FROM action_items
		WHERE id = $1`,
		id,
	).Scan(&description, &dueAt, &assigneeEmail)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("action item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find action item", err)
	}

	return &commands.ActionItemInfo{
		ID:            id,
		Description:   description,
		DueAt:         dueAt,
		AssigneeEmail: assigneeEmail,
	}, nil
}
