package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/donation"
	"github.com/irakoze/inanga/services/donation/mocks"
)

func setupHandlerTest(t *testing.T) (*echo.Echo, *mocks.MockDonationUC, *DonationHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockDonationUC(ctrl)
	return echo.New(), mockUC, NewDonationHandler(mockUC)
}

func TestDonate_Success(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().
		InitiateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.DonateRequest) (*models.DonateResponse, error) {
			assert.Equal(t, "Aline Uwase", req.DonorName)
			return &models.DonateResponse{
				Message:       "Donation initiated",
				TransactionID: "DON-1700000000000-abc123",
				MTNResp: &models.GatewayAck{
					Acknowledged: true,
					Reference:    "ref-1",
				},
			}, nil
		})

	body := `{"donor_name":"Aline Uwase","phone":"0781234567","amount":5000}`
	req := httptest.NewRequest(http.MethodPost, "/api/donate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Donate(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.DonateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "DON-1700000000000-abc123", resp.TransactionID)
	assert.NotNil(t, resp.MTNResp)
	assert.True(t, resp.MTNResp.Acknowledged)
}

func TestDonate_ValidationErrorsItemized(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().
		InitiateDonation(gomock.Any(), gomock.Any()).
		Return(nil, &donation.ValidationError{Fields: []donation.FieldError{
			{Field: "donor_name", Message: "donor name is required"},
			{Field: "phone", Message: "invalid Rwandan mobile number"},
			{Field: "amount", Message: "amount must be greater than zero"},
		}})

	req := httptest.NewRequest(http.MethodPost, "/api/donate", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Donate(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors []donation.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 3)
}

func TestDonate_GatewayUnavailable(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().
		InitiateDonation(gomock.Any(), gomock.Any()).
		Return(nil, donation.ErrGatewayUnavailable)

	body := `{"donor_name":"Eric","phone":"0781234567","amount":1000}`
	req := httptest.NewRequest(http.MethodPost, "/api/donate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Donate(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetStatus_Found(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockUC.EXPECT().
		GetStatus(gomock.Any(), "DON-1-abc").
		Return(&models.Donation{
			TransactionID: "DON-1-abc",
			Status:        models.DonationConfirmed,
			Amount:        2500,
			CreatedAt:     created,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/donate/:transactionId")
	c.SetParamNames("transactionId")
	c.SetParamValues("DON-1-abc")

	err := h.GetStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.DonationStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.DonationConfirmed, resp.Status)
	assert.Equal(t, float64(2500), resp.Amount)
}

func TestGetStatus_NotFound(t *testing.T) {
	e, mockUC, h := setupHandlerTest(t)

	mockUC.EXPECT().
		GetStatus(gomock.Any(), "DON-missing").
		Return(nil, donation.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/donate/:transactionId")
	c.SetParamNames("transactionId")
	c.SetParamValues("DON-missing")

	err := h.GetStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
