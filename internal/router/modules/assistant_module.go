package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/portfolio-api/internal/container"
	handlers "github.com/yudhapratama/portfolio-api/internal/interface/http"
	"github.com/yudhapratama/portfolio-api/internal/interface/middleware"
)

// AssistantModule mounts the integration proxy at the engine root. The
// endpoint sets its own CORS headers and body shapes; it is not part of the
// /api envelope surface.

type AssistantModule struct {
	Handler *handlers.AssistantHandler
}

func NewAssistantModule(h *handlers.AssistantHandler) *AssistantModule {
	return &AssistantModule{Handler: h}
}

func (m *AssistantModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIP())

	rg.OPTIONS("/ai-todo", m.Handler.Preflight)
	rg.POST("/ai-todo", limiter, m.Handler.Handle)
}
