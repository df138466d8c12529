package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/services/content"
)

// ContentRepo implements content.ContentRepo over Postgres
type ContentRepo struct {
	db *sqlx.DB
}

// NewContentRepo creates a new content repository
func NewContentRepo(db *sqlx.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// checkAffected maps a zero-row update or delete to ErrNotFound
func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return content.ErrNotFound
	}
	return nil
}

// CreateMusic inserts a new track
func (r *ContentRepo) CreateMusic(ctx context.Context, m *models.Music) error {
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `
		INSERT INTO music (title, description, file_url, cover_url, created_at, updated_at)
		VALUES (:title, :description, :file_url, :cover_url, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to insert music: %w", err)
	}
	return nil
}

// ListMusic returns all tracks, newest first
func (r *ContentRepo) ListMusic(ctx context.Context) ([]models.Music, error) {
	query := `
		SELECT id, title, description, file_url, cover_url, created_at, updated_at
		FROM music
		ORDER BY created_at DESC
	`

	music := []models.Music{}
	if err := r.db.SelectContext(ctx, &music, query); err != nil {
		return nil, fmt.Errorf("failed to list music: %w", err)
	}
	return music, nil
}

// UpdateMusic updates an existing track
func (r *ContentRepo) UpdateMusic(ctx context.Context, m *models.Music) error {
	m.UpdatedAt = time.Now()

	query := `
		UPDATE music
		SET title = :title, description = :description, file_url = :file_url,
		    cover_url = :cover_url, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update music: %w", err)
	}
	return checkAffected(result)
}

// DeleteMusic removes a track
func (r *ContentRepo) DeleteMusic(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM music WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete music: %w", err)
	}
	return checkAffected(result)
}

// CreatePhoto inserts a new gallery entry
func (r *ContentRepo) CreatePhoto(ctx context.Context, p *models.Photo) error {
	p.CreatedAt = time.Now()

	query := `
		INSERT INTO photos (title, image_url, created_at)
		VALUES (:title, :image_url, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to insert photo: %w", err)
	}
	return nil
}

// ListPhotos returns all gallery entries, newest first
func (r *ContentRepo) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	query := `
		SELECT id, title, image_url, created_at
		FROM photos
		ORDER BY created_at DESC
	`

	photos := []models.Photo{}
	if err := r.db.SelectContext(ctx, &photos, query); err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// DeletePhoto removes a gallery entry
func (r *ContentRepo) DeletePhoto(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return checkAffected(result)
}

// CreateBlog inserts a new post
func (r *ContentRepo) CreateBlog(ctx context.Context, b *models.Blog) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	query := `
		INSERT INTO blogs (title, body, cover_url, created_at, updated_at)
		VALUES (:title, :body, :cover_url, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, b)
	if err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

// GetBlog retrieves a single post
func (r *ContentRepo) GetBlog(ctx context.Context, id int64) (*models.Blog, error) {
	query := `
		SELECT id, title, body, cover_url, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var b models.Blog
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &b, nil
}

// ListBlogs returns all posts, newest first
func (r *ContentRepo) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	query := `
		SELECT id, title, body, cover_url, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC
	`

	blogs := []models.Blog{}
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// UpdateBlog updates an existing post
func (r *ContentRepo) UpdateBlog(ctx context.Context, b *models.Blog) error {
	b.UpdatedAt = time.Now()

	query := `
		UPDATE blogs
		SET title = :title, body = :body, cover_url = :cover_url, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, b)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	return checkAffected(result)
}

// DeleteBlog removes a post
func (r *ContentRepo) DeleteBlog(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	return checkAffected(result)
}
