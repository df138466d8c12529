package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/content"
)

// Login authenticates an admin and returns a JWT
func (h *ContentHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.contentUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, content.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid username or password")
		}
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return c.JSON(http.StatusOK, resp)
}
