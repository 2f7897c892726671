package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/pkg/response"
	"github.com/yudhapratama/portfolio-api/pkg/validation"
)

// BlogHandler serves blog posts and the search endpoint.
type BlogHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

// ListPosts GET /api/blog
func (h *BlogHandler) ListPosts(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "blog posts", nil)
}

type addPostRequest struct {
	Title         string `json:"title" binding:"required"`
	Excerpt       string `json:"excerpt" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Category      string `json:"category"`
	ReadTime      string `json:"read_time"`
	ImageURL      string `json:"image_url"`
	PublishedDate string `json:"published_date" binding:"omitempty,datetime=2006-01-02"`
}

// AddPost POST /api/admin/blog
func (h *BlogHandler) AddPost(c *gin.Context) {
	var req addPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.AddPost(c.Request.Context(), application.AddPostInput{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		ReadTime:      req.ReadTime,
		ImageURL:      req.ImageURL,
		PublishedDate: req.PublishedDate,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "post added", nil)
}

// DeletePost DELETE /api/admin/blog/:id
func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.Svc.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "post deleted", nil)
}

// SearchPosts GET /api/blog/search?q=...&size=...
func (h *BlogHandler) SearchPosts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", err.Error())
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
