package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/content"
)

// adminError maps usecase errors to HTTP responses shared by the CRUD
// endpoints
func adminError(c echo.Context, err error, fallback string) error {
	if errors.Is(err, content.ErrNotFound) {
		return utils.NotFoundResponse(c, "Not found")
	}
	if errors.Is(err, content.ErrInvalidInput) {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, fallback)
}

// CreateMusic stores a new track
func (h *ContentHandler) CreateMusic(c echo.Context) error {
	var m models.Music
	if err := c.Bind(&m); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := h.contentUC.CreateMusic(c.Request().Context(), &m); err != nil {
		return adminError(c, err, "Failed to create music")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Music created", m)
}

// UpdateMusic updates an existing track
func (h *ContentHandler) UpdateMusic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid music id")
	}

	var m models.Music
	if err := c.Bind(&m); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	m.ID = id

	if err := h.contentUC.UpdateMusic(c.Request().Context(), &m); err != nil {
		return adminError(c, err, "Failed to update music")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Music updated", m)
}

// DeleteMusic removes a track
func (h *ContentHandler) DeleteMusic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid music id")
	}
	if err := h.contentUC.DeleteMusic(c.Request().Context(), id); err != nil {
		return adminError(c, err, "Failed to delete music")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Music deleted", nil)
}

// CreatePhoto stores a new gallery entry
func (h *ContentHandler) CreatePhoto(c echo.Context) error {
	var p models.Photo
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := h.contentUC.CreatePhoto(c.Request().Context(), &p); err != nil {
		return adminError(c, err, "Failed to create photo")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Photo created", p)
}

// DeletePhoto removes a gallery entry
func (h *ContentHandler) DeletePhoto(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo id")
	}
	if err := h.contentUC.DeletePhoto(c.Request().Context(), id); err != nil {
		return adminError(c, err, "Failed to delete photo")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Photo deleted", nil)
}

// CreateBlog stores a new post
func (h *ContentHandler) CreateBlog(c echo.Context) error {
	var b models.Blog
	if err := c.Bind(&b); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := h.contentUC.CreateBlog(c.Request().Context(), &b); err != nil {
		return adminError(c, err, "Failed to create blog")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Blog created", b)
}

// UpdateBlog updates an existing post
func (h *ContentHandler) UpdateBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid blog id")
	}

	var b models.Blog
	if err := c.Bind(&b); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	b.ID = id

	if err := h.contentUC.UpdateBlog(c.Request().Context(), &b); err != nil {
		return adminError(c, err, "Failed to update blog")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Blog updated", b)
}

// DeleteBlog removes a post
func (h *ContentHandler) DeleteBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid blog id")
	}
	if err := h.contentUC.DeleteBlog(c.Request().Context(), id); err != nil {
		return adminError(c, err, "Failed to delete blog")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Blog deleted", nil)
}

// CreateEvent stores a new event
func (h *ContentHandler) CreateEvent(c echo.Context) error {
	var e models.Event
	if err := c.Bind(&e); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := h.contentUC.CreateEvent(c.Request().Context(), &e); err != nil {
		return adminError(c, err, "Failed to create event")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Event created", e)
}

// UpdateEvent updates an event's details
func (h *ContentHandler) UpdateEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event id")
	}

	var e models.Event
	if err := c.Bind(&e); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	e.ID = id

	if err := h.contentUC.UpdateEvent(c.Request().Context(), &e); err != nil {
		return adminError(c, err, "Failed to update event")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Event updated", e)
}

type eventStatusRequest struct {
	Status models.EventStatus `json:"status"`
}

// UpdateEventStatus sets an event's lifecycle status
func (h *ContentHandler) UpdateEventStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event id")
	}

	var req eventStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.contentUC.UpdateEventStatus(c.Request().Context(), id, req.Status); err != nil {
		return adminError(c, err, "Failed to update event status")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Event status updated", nil)
}

// DeleteEvent removes an event
func (h *ContentHandler) DeleteEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event id")
	}
	if err := h.contentUC.DeleteEvent(c.Request().Context(), id); err != nil {
		return adminError(c, err, "Failed to delete event")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Event deleted", nil)
}

// UpdateAbout replaces the about page
func (h *ContentHandler) UpdateAbout(c echo.Context) error {
	var a models.About
	if err := c.Bind(&a); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := h.contentUC.UpdateAbout(c.Request().Context(), &a); err != nil {
		return adminError(c, err, "Failed to update about page")
	}
	return utils.SuccessResponse(c, http.StatusOK, "About updated", a)
}

// ListContactMessages returns the contact-form inbox
func (h *ContentHandler) ListContactMessages(c echo.Context) error {
	messages, err := h.contentUC.ListContactMessages(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list messages")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved", messages)
}
