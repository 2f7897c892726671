package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/application"
)

// AssistantHandler serves POST /ai-todo, the stateless proxy between the
// browser and the generative-text / email providers. It deliberately does
// NOT use the /api response envelope: the endpoint is consumed cross-origin
// by the public site and its body shape is part of the wire contract.
type AssistantHandler struct {
	Svc    *application.AssistantService
	Logger *logrus.Logger
}

func NewAssistantHandler(svc *application.AssistantService, logger *logrus.Logger) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Logger: logger}
}

func assistantCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// Preflight OPTIONS /ai-todo
func (h *AssistantHandler) Preflight(c *gin.Context) {
	assistantCORS(c)
	c.Status(http.StatusOK)
}

type assistantRequest struct {
	Action          string `json:"action"`
	TodoDescription string `json:"todoDescription"`
	UserEmail       string `json:"userEmail"`
	Title           string `json:"title"`
	Priority        string `json:"priority"`
	DueDate         string `json:"dueDate"`
}

// Handle POST /ai-todo
func (h *AssistantHandler) Handle(c *gin.Context) {
	assistantCORS(c)

	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch req.Action {
	case "generate":
		suggestions, err := h.Svc.GenerateSuggestions(c.Request.Context(), req.TodoDescription)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})

	case "notify":
		if err := h.Svc.SendReminder(c.Request.Context(), req.UserEmail, req.Title, req.Priority, req.DueDate); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}
