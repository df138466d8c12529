package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/notification"
)

// NotificationHandler handles HTTP requests for the mailing list
type NotificationHandler struct {
	notificationUC notification.NotificationUC
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// Subscribe registers a mailing-list member
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	var req models.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	sub, err := h.notificationUC.Subscribe(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, notification.ErrInvalidEmail) {
			return utils.BadRequestResponse(c, "Invalid email address")
		}
		if errors.Is(err, notification.ErrDuplicateEmail) {
			return utils.ConflictResponse(c, "Email already subscribed")
		}
		return utils.InternalServerErrorResponse(c, "Failed to subscribe")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Subscribed", sub)
}

// RegisterRoutes registers the notification routes
func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/subscribe", h.Subscribe)
}
