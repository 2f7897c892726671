package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/portfolio-api/internal/container"
	handlers "github.com/yudhapratama/portfolio-api/internal/interface/http"
	"github.com/yudhapratama/portfolio-api/internal/interface/middleware"
	"github.com/yudhapratama/portfolio-api/pkg/helpers"
)

// BlogModule wires blog post reads, search and admin mutations.

type BlogModule struct {
	Handler *handlers.BlogHandler
	JWT     *helpers.JWTManager
}

func NewBlogModule(h *handlers.BlogHandler, jwt *helpers.JWTManager) *BlogModule {
	return &BlogModule{Handler: h, JWT: jwt}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/blog", m.Handler.ListPosts)
	rg.GET("/blog/search", searchLimiter, m.Handler.SearchPosts)

	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		admin.POST("/blog", m.Handler.AddPost)
		admin.DELETE("/blog/:id", m.Handler.DeletePost)
	}
}
