package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/donation"
)

// Webhook receives the asynchronous settlement notification from the
// mobile-money provider. Delivery is at-least-once and unordered, so the
// transition is applied idempotently; only recognized provider codes are
// accepted.
func (h *DonationHandler) Webhook(c echo.Context) error {
	var payload models.WebhookPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid webhook payload"})
	}

	transactionID := payload.TransactionKey()
	if transactionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing transaction id"})
	}

	target, ok := models.MapProviderStatus(payload.StatusCode())
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Unrecognized payment status"})
	}

	err := h.donationUC.ApplyTransition(c.Request().Context(), transactionID, target)
	if err != nil {
		if errors.Is(err, donation.ErrNotFound) {
			return utils.NotFoundResponse(c, "Unknown transaction id")
		}
		var tErr *donation.TerminalStateError
		if errors.As(err, &tErr) {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"message":       "Donation already settled",
				"currentStatus": tErr.Current,
			})
		}
		return utils.InternalServerErrorResponse(c, "Failed to process webhook")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Webhook processed"})
}
