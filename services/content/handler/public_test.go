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
	"github.com/irakoze/inanga/services/content/mocks"
)

func setupHandlerTest(t *testing.T) (*echo.Echo, *mocks.MockContentUC, *ContentHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockContentUC(ctrl)
	return echo.New(), mockUC, NewContentHandler(mockUC)
}

func TestListEvents(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().ListEvents(gomock.Any()).Return([]models.Event{
		{ID: 1, Title: "Kigali Jazz Junction", Status: models.EventConfirmed},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListEvents(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kigali Jazz Junction")
}

func TestGetBlog_NotFound(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().GetBlog(gomock.Any(), int64(99)).Return(nil, content.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/blogs/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.GetBlog(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitContact(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().SubmitContactMessage(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"name":"Aline","email":"aline@example.com","message":"Booking inquiry"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SubmitContact(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, content.ErrInvalidCredentials)

	body := `{"username":"manager","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_ReturnsToken(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(&models.LoginResponse{Token: "jwt-token", ExpiresAt: 1234}, nil)

	body := `{"username":"manager","password":"right"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt-token")
}
