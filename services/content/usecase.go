package content

import (
	"context"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// ContentUC is the CMS boundary: public reads, the contact form, admin
// authentication, and admin content management.
type ContentUC interface {
	// Auth
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)

	// Music
	CreateMusic(ctx context.Context, m *models.Music) error
	ListMusic(ctx context.Context) ([]models.Music, error)
	UpdateMusic(ctx context.Context, m *models.Music) error
	DeleteMusic(ctx context.Context, id int64) error

	// Photos
	CreatePhoto(ctx context.Context, p *models.Photo) error
	ListPhotos(ctx context.Context) ([]models.Photo, error)
	DeletePhoto(ctx context.Context, id int64) error

	// Blogs
	CreateBlog(ctx context.Context, b *models.Blog) error
	GetBlog(ctx context.Context, id int64) (*models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, b *models.Blog) error
	DeleteBlog(ctx context.Context, id int64) error

	// Events
	CreateEvent(ctx context.Context, e *models.Event) error
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, e *models.Event) error
	UpdateEventStatus(ctx context.Context, id int64, status models.EventStatus) error
	DeleteEvent(ctx context.Context, id int64) error

	// About page
	GetAbout(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, a *models.About) error

	// Contact form
	SubmitContactMessage(ctx context.Context, m *models.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// Publisher emits messages to the notification side-channel. Satisfied by the
// NSQ producer.
type Publisher interface {
	Publish(topic string, message interface{}) error
}
