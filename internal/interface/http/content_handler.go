package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/pkg/response"
	"github.com/yudhapratama/portfolio-api/pkg/validation"
)

// ContentHandler serves the hero/contact singletons and the resume lists.
// GET endpoints are public; mutations sit behind the auth middleware.
type ContentHandler struct {
	Svc    *application.ContentService
	Logger *logrus.Logger
}

func NewContentHandler(svc *application.ContentService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{Svc: svc, Logger: logger}
}

func storeError(c *gin.Context, err error) {
	if errors.Is(err, application.ErrNotFound) {
		response.Error[any](c, http.StatusNotFound, "not found", nil)
		return
	}
	response.Error[any](c, http.StatusInternalServerError, "store operation failed", err.Error())
}

// GetHero GET /api/hero
func (h *ContentHandler) GetHero(c *gin.Context) {
	hero, err := h.Svc.GetHero(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hero, "hero content", nil)
}

type updateHeroRequest struct {
	Subtitle    string `json:"subtitle" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url"`
}

// UpdateHero PUT /api/admin/hero
func (h *ContentHandler) UpdateHero(c *gin.Context) {
	var req updateHeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	hero, err := h.Svc.UpdateHero(c.Request.Context(), application.UpdateHeroInput{
		Subtitle:    req.Subtitle,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hero, "hero updated", nil)
}

// GetContact GET /api/contact
func (h *ContentHandler) GetContact(c *gin.Context) {
	ci, err := h.Svc.GetContact(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ci, "contact info", nil)
}

type updateContactRequest struct {
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	MapLatitude  *float64 `json:"map_latitude" binding:"omitempty,latitude"`
	MapLongitude *float64 `json:"map_longitude" binding:"omitempty,longitude"`
}

// UpdateContact PUT /api/admin/contact
func (h *ContentHandler) UpdateContact(c *gin.Context) {
	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	// Coordinates are a pair: one without the other is rejected here rather
	// than stored half-set.
	if (req.MapLatitude == nil) != (req.MapLongitude == nil) {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			map[string]string{"map_latitude": "latitude and longitude must be set together"})
		return
	}
	ci, err := h.Svc.UpdateContact(c.Request.Context(), application.UpdateContactInput{
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		MapLatitude:  req.MapLatitude,
		MapLongitude: req.MapLongitude,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ci, "contact info updated", nil)
}

// ListEducation GET /api/education
func (h *ContentHandler) ListEducation(c *gin.Context) {
	items, err := h.Svc.ListEducation(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "education entries", nil)
}

type addEducationRequest struct {
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Description string `json:"description"`
}

// AddEducation POST /api/admin/education
func (h *ContentHandler) AddEducation(c *gin.Context) {
	var req addEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.AddEducation(c.Request.Context(), application.AddEducationInput{
		Degree:      req.Degree,
		Institution: req.Institution,
		Year:        req.Year,
		Description: req.Description,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e, "education entry added", nil)
}

// DeleteEducation DELETE /api/admin/education/:id
func (h *ContentHandler) DeleteEducation(c *gin.Context) {
	if err := h.Svc.DeleteEducation(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "education entry deleted", nil)
}

// ListCertifications GET /api/certifications
func (h *ContentHandler) ListCertifications(c *gin.Context) {
	items, err := h.Svc.ListCertifications(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "certifications", nil)
}

type addCertificationRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

// AddCertification POST /api/admin/certifications
func (h *ContentHandler) AddCertification(c *gin.Context) {
	var req addCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cert, err := h.Svc.AddCertification(c.Request.Context(), application.AddCertificationInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, application.ErrMissingImage) {
			response.Error[any](c, http.StatusBadRequest, "invalid payload",
				map[string]string{"image_url": "is required"})
			return
		}
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cert, "certification added", nil)
}

// DeleteCertification DELETE /api/admin/certifications/:id
func (h *ContentHandler) DeleteCertification(c *gin.Context) {
	if err := h.Svc.DeleteCertification(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "certification deleted", nil)
}
