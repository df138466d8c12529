package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/jwt"
	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/content"
)

// ContentUC implements the CMS workflows
type ContentUC struct {
	cfg       *models.Config
	repo      content.ContentRepo
	publisher content.Publisher
	log       *logrus.Logger
}

// NewContentUC creates a new content usecase
func NewContentUC(cfg *models.Config, repo content.ContentRepo, publisher content.Publisher, log *logrus.Logger) *ContentUC {
	return &ContentUC{
		cfg:       cfg,
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

func requireField(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", content.ErrInvalidInput, name)
	}
	return nil
}

// CreateMusic validates and stores a new track
func (uc *ContentUC) CreateMusic(ctx context.Context, m *models.Music) error {
	if err := requireField(m.Title, "title"); err != nil {
		return err
	}
	if err := requireField(m.FileURL, "file_url"); err != nil {
		return err
	}
	return uc.repo.CreateMusic(ctx, m)
}

// ListMusic returns all tracks
func (uc *ContentUC) ListMusic(ctx context.Context) ([]models.Music, error) {
	return uc.repo.ListMusic(ctx)
}

// UpdateMusic validates and updates an existing track
func (uc *ContentUC) UpdateMusic(ctx context.Context, m *models.Music) error {
	if err := requireField(m.Title, "title"); err != nil {
		return err
	}
	return uc.repo.UpdateMusic(ctx, m)
}

// DeleteMusic removes a track
func (uc *ContentUC) DeleteMusic(ctx context.Context, id int64) error {
	return uc.repo.DeleteMusic(ctx, id)
}

// CreatePhoto validates and stores a new gallery entry
func (uc *ContentUC) CreatePhoto(ctx context.Context, p *models.Photo) error {
	if err := requireField(p.ImageURL, "image_url"); err != nil {
		return err
	}
	return uc.repo.CreatePhoto(ctx, p)
}

// ListPhotos returns all gallery entries
func (uc *ContentUC) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	return uc.repo.ListPhotos(ctx)
}

// DeletePhoto removes a gallery entry
func (uc *ContentUC) DeletePhoto(ctx context.Context, id int64) error {
	return uc.repo.DeletePhoto(ctx, id)
}

// CreateBlog validates and stores a new post
func (uc *ContentUC) CreateBlog(ctx context.Context, b *models.Blog) error {
	if err := requireField(b.Title, "title"); err != nil {
		return err
	}
	if err := requireField(b.Body, "body"); err != nil {
		return err
	}
	return uc.repo.CreateBlog(ctx, b)
}

// GetBlog retrieves a single post
func (uc *ContentUC) GetBlog(ctx context.Context, id int64) (*models.Blog, error) {
	return uc.repo.GetBlog(ctx, id)
}

// ListBlogs returns all posts
func (uc *ContentUC) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return uc.repo.ListBlogs(ctx)
}

// UpdateBlog validates and updates an existing post
func (uc *ContentUC) UpdateBlog(ctx context.Context, b *models.Blog) error {
	if err := requireField(b.Title, "title"); err != nil {
		return err
	}
	return uc.repo.UpdateBlog(ctx, b)
}

// DeleteBlog removes a post
func (uc *ContentUC) DeleteBlog(ctx context.Context, id int64) error {
	return uc.repo.DeleteBlog(ctx, id)
}

// GetAbout retrieves the about page
func (uc *ContentUC) GetAbout(ctx context.Context) (*models.About, error) {
	return uc.repo.GetAbout(ctx)
}

// UpdateAbout replaces the about page
func (uc *ContentUC) UpdateAbout(ctx context.Context, a *models.About) error {
	if err := requireField(a.Body, "body"); err != nil {
		return err
	}
	return uc.repo.UpdateAbout(ctx, a)
}

// SubmitContactMessage validates and stores a contact-form submission
func (uc *ContentUC) SubmitContactMessage(ctx context.Context, m *models.ContactMessage) error {
	if err := requireField(m.Name, "name"); err != nil {
		return err
	}
	if err := requireField(m.Email, "email"); err != nil {
		return err
	}
	if err := requireField(m.Message, "message"); err != nil {
		return err
	}
	return uc.repo.CreateContactMessage(ctx, m)
}

// ListContactMessages returns all contact-form submissions
func (uc *ContentUC) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return uc.repo.ListContactMessages(ctx)
}

// Login authenticates an admin and issues a JWT
func (uc *ContentUC) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := uc.repo.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		// Unknown username reads the same as a wrong password.
		return nil, content.ErrInvalidCredentials
	}

	if !checkPassword(admin.PasswordHash, req.Password) {
		return nil, content.ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(admin.ID, admin.Username, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.log.WithField("username", admin.Username).Info("Admin logged in")

	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
