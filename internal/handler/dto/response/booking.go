package response

import (
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookingResponse struct {
	ID     uuid.UUID `json:"id"`
	RoomID uuid.UUID `json:"room_id"`
	Date   string    `json:"date"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Title  string    `json:"title"`
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = &BookingResponse{
			ID:     v.ID,
			RoomID: v.RoomID,
			Date:   v.Date,
			Start:  v.Start,
			End:    v.End,
			Title:  v.Title,
		}
	}
	return result
}
