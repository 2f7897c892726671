package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/pkg/response"
	"github.com/yudhapratama/portfolio-api/pkg/validation"
)

// PortfolioHandler serves the project and service collections.
type PortfolioHandler struct {
	Svc    *application.ContentService
	Logger *logrus.Logger
}

func NewPortfolioHandler(svc *application.ContentService, logger *logrus.Logger) *PortfolioHandler {
	return &PortfolioHandler{Svc: svc, Logger: logger}
}

// ListProjects GET /api/projects
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	items, err := h.Svc.ListProjects(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "projects", nil)
}

type addProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	LiveURL     string `json:"live_url" binding:"omitempty,url"`
	GithubURL   string `json:"github_url" binding:"omitempty,url"`
	Tags        string `json:"tags"`
}

// AddProject POST /api/admin/projects
func (h *PortfolioHandler) AddProject(c *gin.Context) {
	var req addProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.AddProject(c.Request.Context(), application.AddProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		Tags:        req.Tags,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "project added", nil)
}

// DeleteProject DELETE /api/admin/projects/:id
func (h *PortfolioHandler) DeleteProject(c *gin.Context) {
	if err := h.Svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "project deleted", nil)
}

// ListServices GET /api/services
func (h *PortfolioHandler) ListServices(c *gin.Context) {
	items, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "services", nil)
}

type addServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required,icon"`
}

// AddService POST /api/admin/services
func (h *PortfolioHandler) AddService(c *gin.Context) {
	var req addServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sv, err := h.Svc.AddService(c.Request.Context(), application.AddServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sv, "service added", nil)
}

// DeleteService DELETE /api/admin/services/:id
func (h *PortfolioHandler) DeleteService(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "service deleted", nil)
}
