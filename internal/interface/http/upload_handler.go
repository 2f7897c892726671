package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/pkg/response"
)

// Upload kinds map to object-name prefixes in the bucket.
var uploadKinds = map[string]bool{
	"hero":           true,
	"projects":       true,
	"certifications": true,
	"blog":           true,
}

const maxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler accepts multipart image uploads and returns the public URL.
// The client uploads first, then submits the entity with the returned URL.
type UploadHandler struct {
	Svc    *application.ContentService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *application.ContentService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Upload POST /api/admin/uploads (multipart: kind, file)
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := strings.TrimSpace(c.PostForm("kind"))
	if !uploadKinds[kind] {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			map[string]string{"kind": "must be one of: hero, projects, certifications, blog"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			map[string]string{"file": "is required"})
		return
	}
	if fh.Size > maxUploadBytes {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			map[string]string{"file": "exceeds the 10MB limit"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "upload failed", err.Error())
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			map[string]string{"file": "must be an image"})
		return
	}

	url, err := h.Svc.UploadImage(c.Request.Context(), kind, f, fh.Filename, contentType)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "upload failed", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "file uploaded", nil)
}
