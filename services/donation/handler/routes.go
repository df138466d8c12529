package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/middleware"
	"github.com/irakoze/inanga/internal/pkg/models"
)

// RegisterRoutes registers the donation routes
func (h *DonationHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	// Public donation surface
	e.POST("/api/donate", h.Donate)
	e.GET("/api/donate/:transactionId", h.GetStatus)

	// Provider callback; authenticated by nothing but the transaction id,
	// which is why the transition itself is guarded.
	e.POST("/api/webhook/mtn", h.Webhook)

	// Admin surface
	admin := e.Group("/api/admin", middleware.JWTAuthMiddleware(jwtConfig))
	admin.GET("/donations", h.ListDonations)
	admin.PUT("/donations/:id/status", h.OverrideStatus)
}
