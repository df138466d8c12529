package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/content"
)

func TestLogin_Success(t *testing.T) {
	repo, _, uc := setupUsecaseTest(t)

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	repo.EXPECT().
		GetAdminByUsername(gomock.Any(), "manager").
		Return(&models.Admin{ID: 1, Username: "manager", PasswordHash: hash}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "manager",
		Password: "correct horse battery staple",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, _, uc := setupUsecaseTest(t)

	hash, err := HashPassword("the real password")
	require.NoError(t, err)

	repo.EXPECT().
		GetAdminByUsername(gomock.Any(), "manager").
		Return(&models.Admin{ID: 1, Username: "manager", PasswordHash: hash}, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Username: "manager",
		Password: "a guess",
	})

	assert.ErrorIs(t, err, content.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	repo, _, uc := setupUsecaseTest(t)

	repo.EXPECT().
		GetAdminByUsername(gomock.Any(), "ghost").
		Return(nil, content.ErrNotFound)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "ghost",
		Password: "anything",
	})

	// Same error as a wrong password: no username probing.
	assert.ErrorIs(t, err, content.ErrInvalidCredentials)
}

func TestSubmitContactMessage_Validation(t *testing.T) {
	_, _, uc := setupUsecaseTest(t)

	err := uc.SubmitContactMessage(context.Background(), &models.ContactMessage{
		Name:  "Aline",
		Email: "aline@example.com",
	})
	assert.ErrorIs(t, err, content.ErrInvalidInput)
}

func TestSubmitContactMessage_Stored(t *testing.T) {
	repo, _, uc := setupUsecaseTest(t)

	msg := &models.ContactMessage{Name: "Aline", Email: "aline@example.com", Message: "Booking inquiry"}
	repo.EXPECT().CreateContactMessage(gomock.Any(), msg).Return(nil)

	assert.NoError(t, uc.SubmitContactMessage(context.Background(), msg))
}

func TestCreateMusic_Validation(t *testing.T) {
	_, _, uc := setupUsecaseTest(t)

	err := uc.CreateMusic(context.Background(), &models.Music{Title: "Untitled"})
	assert.ErrorIs(t, err, content.ErrInvalidInput)
}
