package api

import (
	"errors"
	"net/http"

	reqdto "meeting-scheduler/internal/handler/dto/request"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Check room availability
// @Description Check whether a room is free for the given window
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Window start (HH:MM)"
// @Param end query string true "Window end (HH:MM)"
// @Param exclude query string false "Booking ID to exclude from the check"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var query reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := reqdto.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	window, err := reqdto.ParseWindow(query.Start, query.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time window",
		})
		return
	}

	var exclude *uuid.UUID
	if query.Exclude != nil {
		id, err := uuid.Parse(*query.Exclude)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid exclude booking ID format",
			})
			return
		}
		exclude = &id
	}

	available, err := h.availabilityQueries.CheckRoomAvailability(c.Request.Context(), &roomID, date, window, exclude)
	if err != nil {
		h.handleQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: available})
}

// @Summary Find alternative slots
// @Description List free slots of the desired duration within working hours
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Desired start (HH:MM)"
// @Param end query string true "Desired end (HH:MM)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/{id}/alternative-slots [get]
func (h *AvailabilityHandler) FindAlternativeSlots(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var query reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := reqdto.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	window, err := reqdto.ParseWindow(query.Start, query.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time window",
		})
		return
	}

	slots, err := h.availabilityQueries.FindAlternativeSlots(c.Request.Context(), roomID, date, window)
	if err != nil {
		h.handleQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SlotsResponse{Slots: resdto.FromSlotViews(slots)})
}

// @Summary Room availability overview
// @Description Availability of every active room for the given window
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Window start (HH:MM)"
// @Param end query string true "Window end (HH:MM)"
// @Success 200 {array} resdto.RoomAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/availability [get]
func (h *AvailabilityHandler) RoomAvailabilityDetails(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := reqdto.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	window, err := reqdto.ParseWindow(query.Start, query.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time window",
		})
		return
	}

	views, err := h.availabilityQueries.RoomAvailabilityDetails(c.Request.Context(), date, window)
	if err != nil {
		h.handleQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomAvailabilityViews(views))
}

// @Summary List room bookings
// @Description Active bookings of a room on a given date
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/{id}/bookings [get]
func (h *AvailabilityHandler) ListRoomBookings(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var query reqdto.RoomBookingsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := reqdto.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	views, err := h.availabilityQueries.ListRoomBookings(c.Request.Context(), roomID, date)
	if err != nil {
		h.handleQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *AvailabilityHandler) handleQueryError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Storage temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
