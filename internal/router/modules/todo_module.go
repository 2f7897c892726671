package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/portfolio-api/internal/container"
	handlers "github.com/yudhapratama/portfolio-api/internal/interface/http"
	"github.com/yudhapratama/portfolio-api/internal/interface/middleware"
	"github.com/yudhapratama/portfolio-api/pkg/helpers"
)

// TodoModule wires the visitor todo list (public, rate limited per IP) and
// the protected reminder sweep.

type TodoModule struct {
	Handler *handlers.TodoHandler
	JWT     *helpers.JWTManager
}

func NewTodoModule(h *handlers.TodoHandler, jwt *helpers.JWTManager) *TodoModule {
	return &TodoModule{Handler: h, JWT: jwt}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())

	rg.GET("/todos", m.Handler.List)
	rg.POST("/todos", writeLimiter, m.Handler.Add)
	rg.PATCH("/todos/:id/toggle", writeLimiter, m.Handler.Toggle)
	rg.DELETE("/todos/:id", writeLimiter, m.Handler.Delete)

	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		admin.POST("/todos/reminder-sweep", m.Handler.ReminderSweep)
	}
}
