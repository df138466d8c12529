package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/donation"
)

type overrideStatusRequest struct {
	Status models.DonationStatus `json:"status"`
}

// ListDonations returns every donation for the admin dashboard
func (h *DonationHandler) ListDonations(c echo.Context) error {
	donations, err := h.donationUC.ListDonations(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list donations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Donations retrieved", donations)
}

// OverrideStatus applies an admin status override. It goes through the same
// transition function as the webhook, so the state machine holds regardless
// of caller.
func (h *DonationHandler) OverrideStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid donation id")
	}

	var req overrideStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err = h.donationUC.ApplyTransitionByID(c.Request().Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, donation.ErrNotFound) {
			return utils.NotFoundResponse(c, "Donation not found")
		}
		var vErr *donation.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": vErr.Fields})
		}
		var tErr *donation.TerminalStateError
		if errors.As(err, &tErr) {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"message":       "Donation already settled",
				"currentStatus": tErr.Current,
			})
		}
		return utils.InternalServerErrorResponse(c, "Failed to update donation status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Donation status updated", nil)
}
