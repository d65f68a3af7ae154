package response

import (
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

type RoomAvailabilityResponse struct {
	RoomID    uuid.UUID      `json:"room_id"`
	RoomName  string         `json:"room_name"`
	Available bool           `json:"available"`
	Conflicts []SlotResponse `json:"conflicts,omitempty"`
}

func FromSlotViews(views []queries.SlotView) []SlotResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{Start: v.Start, End: v.End}
	}
	return slots
}

func FromRoomAvailabilityViews(views []*queries.RoomAvailabilityView) []*RoomAvailabilityResponse {
	result := make([]*RoomAvailabilityResponse, len(views))
	for i, v := range views {
		result[i] = &RoomAvailabilityResponse{
			RoomID:    v.RoomID,
			RoomName:  v.RoomName,
			Available: v.Available,
			Conflicts: FromSlotViews(v.Conflicts),
		}
	}
	return result
}
