package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID uuid.UUID `json:"room_id" binding:"required"`
	Date   string    `json:"date" binding:"required"`
	Start  string    `json:"start" binding:"required"`
	End    string    `json:"end" binding:"required"`
	Title  string    `json:"title" binding:"required"`
}
