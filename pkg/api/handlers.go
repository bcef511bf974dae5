package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-notif/pkg/clients/slack"
	"contact-notif/pkg/logging"
	"contact-notif/pkg/models"
	"contact-notif/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	notificationService services.ContactNotificationService
	logger              *slog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(notificationService services.ContactNotificationService, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Register mounts the routes on router.
func (h *Handlers) Register(router gin.IRouter) {
	router.POST("/webhook/hubspot-contact", h.HandleContactEvent)
	router.GET("/health", h.HealthCheck)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleContactEvent runs the notification pipeline for a workflow action call
// and responds with the output fields.
func (h *Handlers) HandleContactEvent(c *gin.Context) {
	logger := logging.FromContext(c.Request.Context(), h.logger)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Warn("error reading request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request"})
		return
	}

	event, err := models.ParseInboundEvent(body)
	if err != nil {
		logger.Warn("invalid workflow event", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	result, err := h.notificationService.Notify(c.Request.Context(), event)
	if err != nil {
		status := http.StatusInternalServerError
		var delivery *slack.DeliveryError
		if errors.As(err, &delivery) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
