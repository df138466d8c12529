package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/donation"
)

// DonationHandler handles HTTP requests for the donation workflow
type DonationHandler struct {
	donationUC donation.DonationUC
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationUC donation.DonationUC) *DonationHandler {
	return &DonationHandler{donationUC: donationUC}
}

// Donate handles donation initiation requests
func (h *DonationHandler) Donate(c echo.Context) error {
	var req models.DonateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.donationUC.InitiateDonation(c.Request().Context(), &req)
	if err != nil {
		var vErr *donation.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"errors": vErr.Fields,
			})
		}
		if errors.Is(err, donation.ErrGatewayUnavailable) {
			return utils.BadGatewayResponse(c, "Payment provider unavailable, try again later")
		}
		return utils.InternalServerErrorResponse(c, "Failed to initiate donation")
	}

	return c.JSON(http.StatusCreated, resp)
}

// GetStatus lets a donor poll the outcome of a donation
func (h *DonationHandler) GetStatus(c echo.Context) error {
	transactionID := c.Param("transactionId")

	d, err := h.donationUC.GetStatus(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, donation.ErrNotFound) {
			return utils.NotFoundResponse(c, "Donation not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to load donation")
	}

	return c.JSON(http.StatusOK, models.DonationStatusResponse{
		TransactionID: d.TransactionID,
		Status:        d.Status,
		Amount:        d.Amount,
		CreatedAt:     d.CreatedAt,
	})
}
