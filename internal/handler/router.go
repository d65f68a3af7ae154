package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meeting-scheduler/internal/handler/api"
	"meeting-scheduler/internal/handler/middleware"
	"meeting-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	reminderHandler *api.ReminderHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, availabilityHandler, reminderHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	reminderHandler *api.ReminderHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.RoomAvailabilityDetails},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/alternative-slots", Handler: availabilityHandler.FindAlternativeSlots},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: availabilityHandler.ListRoomBookings},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}

		meetings := apiGroup.Group("/meetings")
		{
			addRoutes(meetings, []route{
				{Method: http.MethodPost, Path: "/:id/reminders", Handler: reminderHandler.ScheduleMeetingReminders},
				{Method: http.MethodDelete, Path: "/:id/reminders", Handler: reminderHandler.CancelMeetingReminders},
			})
		}

		actionItems := apiGroup.Group("/action-items")
		{
			addRoutes(actionItems, []route{
				{Method: http.MethodPost, Path: "/:id/reminders", Handler: reminderHandler.ScheduleActionItemReminders},
			})
		}

		reminders := apiGroup.Group("/reminders")
		{
			addRoutes(reminders, []route{
				{Method: http.MethodPost, Path: "/process", Handler: reminderHandler.ProcessDueReminders},
				{Method: http.MethodGet, Path: "/pending", Handler: reminderHandler.ListPendingReminders},
				{Method: http.MethodGet, Path: "/dead", Handler: reminderHandler.ListDeadReminders},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
