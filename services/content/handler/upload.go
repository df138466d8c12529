package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
)

// UploadHandler stores media files for the CMS
type UploadHandler struct {
	cfg models.UploadConfig
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(cfg models.UploadConfig) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
}

// Upload accepts a multipart file, stores it under a collision-free name, and
// returns its public URL
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file")
	}

	if h.cfg.MaxSizeMB > 0 && fileHeader.Size > h.cfg.MaxSizeMB*1024*1024 {
		return utils.BadRequestResponse(c, fmt.Sprintf("File exceeds %dMB limit", h.cfg.MaxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return utils.BadRequestResponse(c, "Unsupported file type")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to read upload")
	}
	defer src.Close()

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to store upload")
	}

	// uuid prefix keeps same-named uploads from clobbering each other
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.cfg.Dir, name))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to store upload")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to store upload")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "File uploaded", map[string]string{
		"url": strings.TrimRight(h.cfg.PublicPath, "/") + "/" + name,
	})
}
