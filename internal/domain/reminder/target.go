package reminder

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidTarget = errors.New("reminder target must reference exactly one of meeting or action item")

// Target references the owning entity: either a meeting or an action item,
// never both, never neither.
type Target struct {
	meetingID    *uuid.UUID
	actionItemID *uuid.UUID
}

func MeetingTarget(meetingID uuid.UUID) Target {
	return Target{meetingID: &meetingID}
}

func ActionItemTarget(actionItemID uuid.UUID) Target {
	return Target{actionItemID: &actionItemID}
}

func ReconstructTarget(meetingID, actionItemID *uuid.UUID) (Target, error) {
	t := Target{meetingID: meetingID, actionItemID: actionItemID}
	if err := t.Validate(); err != nil {
		return Target{}, err
	}
	return t, nil
}

func (t Target) Validate() error {
	if (t.meetingID == nil) == (t.actionItemID == nil) {
		return ErrInvalidTarget
	}
	return nil
}

func (t Target) MeetingID() *uuid.UUID {
	return t.meetingID
}

func (t Target) ActionItemID() *uuid.UUID {
	return t.actionItemID
}

func (t Target) IsMeeting() bool {
	return t.meetingID != nil
}
