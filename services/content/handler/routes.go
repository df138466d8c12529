package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/middleware"
	"github.com/irakoze/inanga/internal/pkg/models"
)

// RegisterRoutes registers the CMS routes
func (h *ContentHandler) RegisterRoutes(e *echo.Echo, upload *UploadHandler, cfg *models.Config) {
	// Public surface
	e.GET("/api/music", h.ListMusic)
	e.GET("/api/photos", h.ListPhotos)
	e.GET("/api/blogs", h.ListBlogs)
	e.GET("/api/blogs/:id", h.GetBlog)
	e.GET("/api/events", h.ListEvents)
	e.GET("/api/about", h.GetAbout)
	e.POST("/api/contact", h.SubmitContact)

	e.POST("/api/admin/login", h.Login)

	// Admin surface
	admin := e.Group("/api/admin", middleware.JWTAuthMiddleware(cfg.JWT))

	admin.POST("/music", h.CreateMusic)
	admin.PUT("/music/:id", h.UpdateMusic)
	admin.DELETE("/music/:id", h.DeleteMusic)

	admin.POST("/photos", h.CreatePhoto)
	admin.DELETE("/photos/:id", h.DeletePhoto)

	admin.POST("/blogs", h.CreateBlog)
	admin.PUT("/blogs/:id", h.UpdateBlog)
	admin.DELETE("/blogs/:id", h.DeleteBlog)

	admin.POST("/events", h.CreateEvent)
	admin.PUT("/events/:id", h.UpdateEvent)
	admin.PUT("/events/:id/status", h.UpdateEventStatus)
	admin.DELETE("/events/:id", h.DeleteEvent)

	admin.PUT("/about", h.UpdateAbout)
	admin.GET("/messages", h.ListContactMessages)

	admin.POST("/upload", upload.Upload)

	// Uploaded media is served straight off disk
	e.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)
}
