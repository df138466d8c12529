package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/content"
)

func TestUpdateEventStatus_Handler(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().
		UpdateEventStatus(gomock.Any(), int64(7), models.EventConfirmed).
		Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/admin/events/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.UpdateEventStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateEventStatus_InvalidStatus(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().
		UpdateEventStatus(gomock.Any(), int64(7), models.EventStatus("archived")).
		Return(content.ErrInvalidInput)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/admin/events/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.UpdateEventStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMusic_Handler(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().CreateMusic(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"title":"Inanga Lament","file_url":"/uploads/track.mp3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/music", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateMusic(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteBlog_NotFound(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().DeleteBlog(gomock.Any(), int64(99)).Return(content.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/admin/blogs/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.DeleteBlog(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
