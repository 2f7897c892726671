package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/portfolio-api/internal/container"
	handlers "github.com/yudhapratama/portfolio-api/internal/interface/http"
	"github.com/yudhapratama/portfolio-api/internal/interface/middleware"
	"github.com/yudhapratama/portfolio-api/pkg/helpers"
)

// ContentModule wires the public read endpoints for every portfolio section
// and the protected admin mutations, including image uploads.

type ContentModule struct {
	Content   *handlers.ContentHandler
	Portfolio *handlers.PortfolioHandler
	Upload    *handlers.UploadHandler
	JWT       *helpers.JWTManager
}

func NewContentModule(c *handlers.ContentHandler, p *handlers.PortfolioHandler, u *handlers.UploadHandler, jwt *helpers.JWTManager) *ContentModule {
	return &ContentModule{Content: c, Portfolio: p, Upload: u, JWT: jwt}
}

func (m *ContentModule) Register(rg *gin.RouterGroup) {
	// Public reads
	rg.GET("/hero", m.Content.GetHero)
	rg.GET("/contact", m.Content.GetContact)
	rg.GET("/education", m.Content.ListEducation)
	rg.GET("/certifications", m.Content.ListCertifications)
	rg.GET("/projects", m.Portfolio.ListProjects)
	rg.GET("/services", m.Portfolio.ListServices)

	// Protected admin mutations
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		admin.PUT("/hero", m.Content.UpdateHero)
		admin.PUT("/contact", m.Content.UpdateContact)

		admin.POST("/education", m.Content.AddEducation)
		admin.DELETE("/education/:id", m.Content.DeleteEducation)

		admin.POST("/certifications", m.Content.AddCertification)
		admin.DELETE("/certifications/:id", m.Content.DeleteCertification)

		admin.POST("/projects", m.Portfolio.AddProject)
		admin.DELETE("/projects/:id", m.Portfolio.DeleteProject)

		admin.POST("/services", m.Portfolio.AddService)
		admin.DELETE("/services/:id", m.Portfolio.DeleteService)

		admin.POST("/uploads", m.Upload.Upload)
	}
}
