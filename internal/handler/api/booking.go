package api

import (
	"errors"
	"net/http"
	"time"

	"meeting-scheduler/internal/domain/booking"
	reqdto "meeting-scheduler/internal/handler/dto/request"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands     commands.BookingCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	availabilityQueries queries.AvailabilityQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:     bookingCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Create booking
// @Description Book a room for a window, rejecting overlaps with existing bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	window, err := reqdto.ParseWindow(req.Start, req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time window",
		})
		return
	}

	params := commands.CreateBookingParams{
		RoomID: req.RoomID,
		Date:   date,
		Window: window,
		Title:  req.Title,
	}

	id, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomConflict):
			h.respondConflict(c, req.RoomID, date, window)
		case errors.Is(err, errs.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time window",
			})
		case errors.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Storage temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: id})
}

// @Summary Cancel booking
// @Description Cancel a booking; cancelling twice is a no-op
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Storage temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// A conflict response includes alternative slots so the client can retry
// without a second round trip. Slot lookup failures degrade to a plain 409.
func (h *BookingHandler) respondConflict(c *gin.Context, roomID uuid.UUID, date time.Time, desired booking.Window) {
	slots, err := h.availabilityQueries.FindAlternativeSlots(c.Request.Context(), roomID, date, desired)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is already booked for the requested window",
		})
		return
	}

	c.JSON(http.StatusConflict, gin.H{
		"error":             "Room is already booked for the requested window",
		"alternative_slots": resdto.FromSlotViews(slots),
	})
}
