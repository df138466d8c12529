package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
	"github.com/irakoze/inanga/services/content"
)

// ContentHandler handles HTTP requests for the CMS surface
type ContentHandler struct {
	contentUC content.ContentUC
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentUC content.ContentUC) *ContentHandler {
	return &ContentHandler{contentUC: contentUC}
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// ListMusic returns the published tracks
func (h *ContentHandler) ListMusic(c echo.Context) error {
	music, err := h.contentUC.ListMusic(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list music")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Music retrieved", music)
}

// ListPhotos returns the gallery
func (h *ContentHandler) ListPhotos(c echo.Context) error {
	photos, err := h.contentUC.ListPhotos(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list photos")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Photos retrieved", photos)
}

// ListBlogs returns all posts
func (h *ContentHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.contentUC.ListBlogs(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list blogs")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Blogs retrieved", blogs)
}

// GetBlog returns a single post
func (h *ContentHandler) GetBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid blog id")
	}

	blog, err := h.contentUC.GetBlog(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return utils.NotFoundResponse(c, "Blog not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to load blog")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Blog retrieved", blog)
}

// ListEvents returns all scheduled events
func (h *ContentHandler) ListEvents(c echo.Context) error {
	events, err := h.contentUC.ListEvents(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list events")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Events retrieved", events)
}

// GetAbout returns the about page
func (h *ContentHandler) GetAbout(c echo.Context) error {
	about, err := h.contentUC.GetAbout(c.Request().Context())
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return utils.NotFoundResponse(c, "About page not set")
		}
		return utils.InternalServerErrorResponse(c, "Failed to load about page")
	}
	return utils.SuccessResponse(c, http.StatusOK, "About retrieved", about)
}

// SubmitContact stores a contact-form submission
func (h *ContentHandler) SubmitContact(c echo.Context) error {
	var msg models.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.contentUC.SubmitContactMessage(c.Request().Context(), &msg); err != nil {
		if errors.Is(err, content.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to submit message")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message received", nil)
}
