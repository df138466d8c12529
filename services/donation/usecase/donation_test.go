package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/donation"
	"github.com/irakoze/inanga/services/donation/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Donation: models.DonationConfig{
			Currency:         "RWF",
			PendingExpiryMin: 30,
		},
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestInitiateDonation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	var createdTxnID string
	mockRepo.EXPECT().
		CreateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Donation) error {
			assert.Equal(t, models.DonationPending, d.Status)
			assert.Equal(t, "Alice", d.DonorName)
			assert.Equal(t, "250781234567", d.Phone)
			assert.True(t, strings.HasPrefix(d.TransactionID, "DON-"))
			createdTxnID = d.TransactionID
			return nil
		})

	mockGW.EXPECT().
		RequestToPay(gomock.Any(), 1000.0, "250781234567", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ float64, _ string, txnID string) (*models.GatewayAck, error) {
			assert.Equal(t, createdTxnID, txnID)
			return &models.GatewayAck{Acknowledged: true, Reference: "ref-1"}, nil
		})

	uc := NewDonationUC(testConfig(), mockRepo, mockGW, testLogger())

	resp, err := uc.InitiateDonation(context.Background(), &models.DonateRequest{
		DonorName: "Alice",
		Phone:     "0781234567",
		Amount:    1000,
	})

	require.NoError(t, err)
	assert.Equal(t, createdTxnID, resp.TransactionID)
	require.NotNil(t, resp.MTNResp)
	assert.True(t, resp.MTNResp.Acknowledged)
}

func TestInitiateDonation_TransactionIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newTransactionID()
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}

func TestInitiateDonation_ValidationItemizesAllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewDonationUC(testConfig(), mockRepo, mockGW, testLogger())

	_, err := uc.InitiateDonation(context.Background(), &models.DonateRequest{
		DonorName: "",
		Phone:     "12345",
		Amount:    -5,
	})

	var vErr *donation.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 3)

	fields := map[string]bool{}
	for _, f := range vErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["donor_name"])
	assert.True(t, fields["phone"])
	assert.True(t, fields["amount"])
}

func TestInitiateDonation_EmptyDonorNameOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDonationUC(testConfig(), mocks.NewMockDonationRepo(ctrl), mocks.NewMockPaymentGW(ctrl), testLogger())

	_, err := uc.InitiateDonation(context.Background(), &models.DonateRequest{
		DonorName: "  ",
		Phone:     "0781234567",
		Amount:    1000,
	})

	var vErr *donation.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "donor_name", vErr.Fields[0].Field)
}

func TestInitiateDonation_PersistenceFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	mockRepo.EXPECT().
		CreateDonation(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	uc := NewDonationUC(testConfig(), mockRepo, mockGW, testLogger())

	_, err := uc.InitiateDonation(context.Background(), &models.DonateRequest{
		DonorName: "Alice",
		Phone:     "0781234567",
		Amount:    1000,
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, donation.ErrGatewayUnavailable)
}

func TestInitiateDonation_GatewayFailureAfterPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	mockRepo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		RequestToPay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("gateway timeout"))

	uc := NewDonationUC(testConfig(), mockRepo, mockGW, testLogger())

	_, err := uc.InitiateDonation(context.Background(), &models.DonateRequest{
		DonorName: "Alice",
		Phone:     "0781234567",
		Amount:    1000,
	})

	assert.ErrorIs(t, err, donation.ErrGatewayUnavailable)
}

func TestApplyTransition_PendingToConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		UpdateStatusFromPending(gomock.Any(), "DON-1", models.DonationConfirmed).
		Return(true, nil)

	uc := NewDonationUC(testConfig(), mockRepo, mocks.NewMockPaymentGW(ctrl), testLogger())

	err := uc.ApplyTransition(context.Background(), "DON-1", models.DonationConfirmed)
	assert.NoError(t, err)
}

func TestApplyTransition_PendingRedeliveryIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	// Only an existence check, never an update.
	mockRepo.EXPECT().
		GetByTransactionID(gomock.Any(), "DON-1").
		Return(&models.Donation{TransactionID: "DON-1", Status: models.DonationPending}, nil)

	uc := NewDonationUC(testConfig(), mockRepo, mocks.NewMockPaymentGW(ctrl), testLogger())

	err := uc.ApplyTransition(context.Background(), "DON-1", models.DonationPending)
	assert.NoError(t, err)
}

func TestApplyTransition_IdempotentDuplicateDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		UpdateStatusFromPending(gomock.Any(), "DON-1", models.DonationConfirmed).
		Return(false, nil)
	mockRepo.EXPECT().
		GetByTransactionID(gomock.Any(), "DON-1").
		Return(&models.Donation{TransactionID: "DON-1", Status: models.DonationConfirmed}, nil)

	uc := NewDonationUC(testConfig(), mockRepo, mocks.NewMockPaymentGW(ctrl), testLogger())

	err := uc.ApplyTransition(context.Background(), "DON-1", models.DonationConfirmed)
	assert.NoError(t, err)
}

func TestApplyTransition_TerminalConflictReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		UpdateStatusFromPending(gomock.Any(), "DON-1", models.DonationFailed).
		Return(false, nil)
	mockRepo.EXPECT().
		GetByTransactionID(gomock.Any(), "DON-1").
		Return(&models.Donation{TransactionID: "DON-1", Status: models.DonationConfirmed}, nil)

	uc := NewDonationUC(testConfig(), mockRepo, mocks.NewMockPaymentGW(ctrl), testLogger())

	err := uc.ApplyTransition(context.Background(), "DON-1", models.DonationFailed)

	var tErr *donation.TerminalStateError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, models.DonationConfirmed, tErr.Current)
	assert.Equal(t, models.DonationFailed, tErr.Target)
}

func TestApplyTransition_UnknownRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		UpdateStatusFromPending(gomock.Any(), "DON-missing", models.DonationConfirmed).
		Return(false, nil)
	mockRepo.EXPECT().
		GetByTransactionID(gomock.Any(), "DON-missing").
		Return(nil, donation.ErrNotFound)

	uc := NewDonationUC(testConfig(), mockRepo, mocks.NewMockPaymentGW(ctrl), testLogger())

	err := uc.ApplyTransition(context.Background(), "DON-missing", models.DonationConfirmed)
	assert.ErrorIs(t, err, donation.ErrNotFound)
}

func TestApplyTransition_InvalidTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDonationUC(testConfig(), mocks.NewMockDonationRepo(ctrl), mocks.NewMockPaymentGW(ctrl), testLogger())

	err := uc.ApplyTransition(context.Background(), "DON-1", models.DonationStatus("refunded"))

	var vErr *donation.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestApplyTransitionByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		GetByID(gomock.Any(), int64(7)).
		Return(&models.Donation{ID: 7, TransactionID: "DON-7", Status: models.DonationPending}, nil)
	mockRepo.EXPECT().
		UpdateStatusFromPending(gomock.Any(), "DON-7", models.DonationConfirmed).
		Return(true, nil)

	uc := NewDonationUC(testConfig(), mockRepo, mocks.NewMockPaymentGW(ctrl), testLogger())

	err := uc.ApplyTransitionByID(context.Background(), 7, models.DonationConfirmed)
	assert.NoError(t, err)
}

func TestExpireStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		ExpirePending(gomock.Any(), gomock.Any()).
		Return(int64(2), nil)

	uc := NewDonationUC(testConfig(), mockRepo, mocks.NewMockPaymentGW(ctrl), testLogger())

	swept, err := uc.ExpireStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), swept)
}
