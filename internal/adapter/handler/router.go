package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ross7390/meeting-maestro/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	emailHandler   *Email
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, emailHandler *Email) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		emailHandler:   emailHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
}

// setupMeetingRoutes configures meeting and email routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("", rt.meetingHandler.Upload)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.PUT("/:id/participants/:index/email", rt.meetingHandler.UpdateParticipantEmail)
	meetings.POST("/:id/actions", rt.meetingHandler.AddActionItem)
	meetings.PUT("/:id/actions/:index", rt.meetingHandler.UpdateActionItem)
	meetings.PUT("/:id/actions/:index/status", rt.meetingHandler.SetActionItemStatus)

	meetings.POST("/:id/email/preview", rt.emailHandler.Preview)
	meetings.POST("/:id/email/send", rt.emailHandler.Send)
	meetings.POST("/:id/email/test", rt.emailHandler.SendTest)
	meetings.POST("/:id/email/broadcast", rt.emailHandler.Broadcast)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
